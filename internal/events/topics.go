package events

// Task list topics.
const (
	TopicTasksChanged = "tasks.changed"
)

// Undo window topics.
const (
	TopicUndoOffered = "undo.offered"
	TopicUndoClosed  = "undo.closed"
)

// Change reasons carried by TasksChanged.
const (
	ReasonAdded     = "added"
	ReasonDeleted   = "deleted"
	ReasonRestored  = "restored"
	ReasonCompleted = "completed"
	ReasonStarred   = "starred"
)

// TasksChanged is published after every mutation of the task list.
type TasksChanged struct {
	Reason string
	ID     int
}

// UndoOffered is published when a deleted task can be restored.
type UndoOffered struct {
	Seq  uint64
	ID   int
	Name string // display name of the deleted task
}

// UndoClosed is published when an undo window ends. Restored is true when
// the task went back into the list, false when it was discarded.
type UndoClosed struct {
	Seq      uint64
	ID       int
	Restored bool
}
