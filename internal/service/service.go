// Package service defines the in-process boundary between UI hosts and the
// task list core.
package service

import (
	"context"

	"todo/internal/task"
)

// Service defines the operations a UI host drives.
// Hosts re-read SortedView after every mutation; implementations also
// publish change notifications for hosts that prefer to listen.
type Service interface {
	// AddTask creates a task. Blank names fail with task.ErrInvalidName.
	AddTask(ctx context.Context, name string) (task.Task, error)

	// DeleteTask removes a task and opens an undo window for it.
	// A window already open for another task is closed without restoring.
	DeleteTask(ctx context.Context, id int) (Undo, error)

	// ToggleComplete flips the completed flag of a task.
	ToggleComplete(ctx context.Context, id int) (task.Task, error)

	// ToggleStar flips the starred flag of a task.
	ToggleStar(ctx context.Context, id int) (task.Task, error)

	// ConfirmUndo restores the task held by the open undo window.
	// Fails with undo.ErrNothingToUndo when no window is open.
	ConfirmUndo(ctx context.Context) (task.Task, error)

	// DismissUndo closes the open undo window without restoring and returns
	// the window it closed. Reports false when no window was open.
	DismissUndo(ctx context.Context) (Undo, bool, error)

	// ExpireUndo closes the undo window only if it belongs to deletion seq.
	ExpireUndo(ctx context.Context, seq uint64) (Undo, bool, error)

	// PendingUndo returns the open undo window, if any.
	PendingUndo(ctx context.Context) (Undo, bool, error)

	// SortedView returns the tasks in display order.
	SortedView(ctx context.Context) ([]task.Task, error)
}
