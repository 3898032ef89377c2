package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"todo/internal/events"
	"todo/internal/task"
	"todo/internal/undo"
)

var _ Service = (*Local)(nil)

// Local implements Service over an in-memory store.
// All calls are serialised through one mutex so the store and the undo
// coordinator always change together.
type Local struct {
	mu        sync.Mutex
	store     *task.Store
	undo      *undo.Coordinator
	offeredAt time.Time

	bus    *events.Bus
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Local service.
type Option func(*Local)

// WithBus publishes change notifications on b.
func WithBus(b *events.Bus) Option {
	return func(l *Local) { l.bus = b }
}

// WithLogger sets the logger. The default discards.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Local) { l.logger = logger }
}

// WithClock overrides time.Now (for testing).
func WithClock(now func() time.Time) Option {
	return func(l *Local) { l.now = now }
}

// NewLocal creates an empty in-memory service.
func NewLocal(opts ...Option) *Local {
	store := task.NewStore()
	l := &Local{
		store:  store,
		undo:   undo.New(store),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// AddTask implements Service.
func (l *Local) AddTask(ctx context.Context, name string) (task.Task, error) {
	if err := ctx.Err(); err != nil {
		return task.Task{}, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	t, err := l.store.Add(name)
	if err != nil {
		return task.Task{}, err
	}
	l.logger.Debug("task added", "id", t.ID, "name", t.Name)
	l.publish(events.TopicTasksChanged, events.TasksChanged{Reason: events.ReasonAdded, ID: t.ID})
	return t, nil
}

// DeleteTask implements Service.
func (l *Local) DeleteTask(ctx context.Context, id int) (Undo, error) {
	if err := ctx.Err(); err != nil {
		return Undo{}, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	prev, hadPrev := l.undo.Pending()
	p, err := l.undo.RequestDelete(id)
	if err != nil {
		return Undo{}, fmt.Errorf("delete task: %w", err)
	}
	if hadPrev {
		l.logger.Debug("undo window superseded", "seq", prev.Seq, "id", prev.Task.ID)
		l.publish(events.TopicUndoClosed, events.UndoClosed{Seq: prev.Seq, ID: prev.Task.ID})
	}
	l.offeredAt = l.now()

	l.logger.Debug("task deleted", "id", id, "seq", p.Seq)
	l.publish(events.TopicTasksChanged, events.TasksChanged{Reason: events.ReasonDeleted, ID: id})
	l.publish(events.TopicUndoOffered, events.UndoOffered{Seq: p.Seq, ID: id, Name: p.Task.Name})
	return l.undoView(p), nil
}

// ToggleComplete implements Service.
func (l *Local) ToggleComplete(ctx context.Context, id int) (task.Task, error) {
	if err := ctx.Err(); err != nil {
		return task.Task{}, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	t, err := l.store.ToggleCompleted(id)
	if err != nil {
		return task.Task{}, fmt.Errorf("toggle complete: %w", err)
	}
	l.logger.Debug("task completion toggled", "id", id, "completed", t.Completed)
	l.publish(events.TopicTasksChanged, events.TasksChanged{Reason: events.ReasonCompleted, ID: id})
	return t, nil
}

// ToggleStar implements Service.
func (l *Local) ToggleStar(ctx context.Context, id int) (task.Task, error) {
	if err := ctx.Err(); err != nil {
		return task.Task{}, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	t, err := l.store.ToggleStarred(id)
	if err != nil {
		return task.Task{}, fmt.Errorf("toggle star: %w", err)
	}
	l.logger.Debug("task star toggled", "id", id, "starred", t.Starred)
	l.publish(events.TopicTasksChanged, events.TasksChanged{Reason: events.ReasonStarred, ID: id})
	return t, nil
}

// ConfirmUndo implements Service.
func (l *Local) ConfirmUndo(ctx context.Context) (task.Task, error) {
	if err := ctx.Err(); err != nil {
		return task.Task{}, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.undo.Pending()
	t, err := l.undo.Undo()
	if err != nil {
		return task.Task{}, err
	}
	l.logger.Debug("task restored", "id", t.ID, "seq", p.Seq)
	if ok {
		l.publish(events.TopicUndoClosed, events.UndoClosed{Seq: p.Seq, ID: t.ID, Restored: true})
	}
	l.publish(events.TopicTasksChanged, events.TasksChanged{Reason: events.ReasonRestored, ID: t.ID})
	return t, nil
}

// DismissUndo implements Service.
func (l *Local) DismissUndo(ctx context.Context) (Undo, bool, error) {
	if err := ctx.Err(); err != nil {
		return Undo{}, false, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.undo.Expire()
	if !ok {
		return Undo{}, false, nil
	}
	return l.closed(p), true, nil
}

// ExpireUndo implements Service.
func (l *Local) ExpireUndo(ctx context.Context, seq uint64) (Undo, bool, error) {
	if err := ctx.Err(); err != nil {
		return Undo{}, false, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.undo.ExpireSeq(seq)
	if !ok {
		return Undo{}, false, nil
	}
	return l.closed(p), true, nil
}

// PendingUndo implements Service.
func (l *Local) PendingUndo(ctx context.Context) (Undo, bool, error) {
	if err := ctx.Err(); err != nil {
		return Undo{}, false, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.undo.Pending()
	if !ok {
		return Undo{}, false, nil
	}
	return l.undoView(p), true, nil
}

// SortedView implements Service.
func (l *Local) SortedView(ctx context.Context) ([]task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.SortedView(), nil
}

// closed reports a window that ended without a restore.
func (l *Local) closed(p undo.Pending) Undo {
	l.logger.Debug("undo window closed", "seq", p.Seq, "id", p.Task.ID)
	l.publish(events.TopicUndoClosed, events.UndoClosed{Seq: p.Seq, ID: p.Task.ID})
	return l.undoView(p)
}

func (l *Local) undoView(p undo.Pending) Undo {
	return Undo{
		Seq:       p.Seq,
		TaskID:    p.Task.ID,
		Name:      p.Task.Name,
		OfferedAt: l.offeredAt,
	}
}

func (l *Local) publish(topic string, payload any) {
	if l.bus != nil {
		l.bus.Publish(topic, payload)
	}
}
