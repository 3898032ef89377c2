// Package testutil provides testing utilities.
package testutil

import (
	"context"

	"todo/internal/service"
	"todo/internal/task"
)

// FakeService wraps an in-memory service.Local and lets tests inject
// errors per operation.
type FakeService struct {
	*service.Local

	// Error injection for testing
	AddTaskErr        error
	DeleteTaskErr     error
	ToggleCompleteErr error
	ToggleStarErr     error
	ConfirmUndoErr    error
	DismissUndoErr    error
	PendingUndoErr    error
	SortedViewErr     error
}

// NewFakeService creates a FakeService holding one task per name, added in
// order, so ids match the position in names.
func NewFakeService(names ...string) *FakeService {
	f := &FakeService{Local: service.NewLocal()}
	for _, name := range names {
		f.MustAdd(name)
	}
	return f
}

// MustAdd adds a task and panics on failure.
func (f *FakeService) MustAdd(name string) task.Task {
	t, err := f.Local.AddTask(context.Background(), name)
	if err != nil {
		panic(err)
	}
	return t
}

// Names returns task names in display order.
func (f *FakeService) Names() []string {
	view, _ := f.Local.SortedView(context.Background())
	names := make([]string, 0, len(view))
	for _, t := range view {
		names = append(names, t.Name)
	}
	return names
}

// AddTask implements service.Service.
func (f *FakeService) AddTask(ctx context.Context, name string) (task.Task, error) {
	if f.AddTaskErr != nil {
		return task.Task{}, f.AddTaskErr
	}
	return f.Local.AddTask(ctx, name)
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id int) (service.Undo, error) {
	if f.DeleteTaskErr != nil {
		return service.Undo{}, f.DeleteTaskErr
	}
	return f.Local.DeleteTask(ctx, id)
}

// ToggleComplete implements service.Service.
func (f *FakeService) ToggleComplete(ctx context.Context, id int) (task.Task, error) {
	if f.ToggleCompleteErr != nil {
		return task.Task{}, f.ToggleCompleteErr
	}
	return f.Local.ToggleComplete(ctx, id)
}

// ToggleStar implements service.Service.
func (f *FakeService) ToggleStar(ctx context.Context, id int) (task.Task, error) {
	if f.ToggleStarErr != nil {
		return task.Task{}, f.ToggleStarErr
	}
	return f.Local.ToggleStar(ctx, id)
}

// ConfirmUndo implements service.Service.
func (f *FakeService) ConfirmUndo(ctx context.Context) (task.Task, error) {
	if f.ConfirmUndoErr != nil {
		return task.Task{}, f.ConfirmUndoErr
	}
	return f.Local.ConfirmUndo(ctx)
}

// DismissUndo implements service.Service.
func (f *FakeService) DismissUndo(ctx context.Context) (service.Undo, bool, error) {
	if f.DismissUndoErr != nil {
		return service.Undo{}, false, f.DismissUndoErr
	}
	return f.Local.DismissUndo(ctx)
}

// PendingUndo implements service.Service.
func (f *FakeService) PendingUndo(ctx context.Context) (service.Undo, bool, error) {
	if f.PendingUndoErr != nil {
		return service.Undo{}, false, f.PendingUndoErr
	}
	return f.Local.PendingUndo(ctx)
}

// SortedView implements service.Service.
func (f *FakeService) SortedView(ctx context.Context) ([]task.Task, error) {
	if f.SortedViewErr != nil {
		return nil, f.SortedViewErr
	}
	return f.Local.SortedView(ctx)
}
