package task

import (
	"fmt"
	"slices"
	"strings"
)

// Store owns the task collection and id allocation.
// Tasks are kept in insertion order; display order is derived by SortedView.
// Store is not safe for concurrent use; callers serialise access.
type Store struct {
	tasks  []Task
	nextID int
}

// NewStore creates an empty store whose first id is 0.
func NewStore() *Store {
	return &Store{}
}

// Add creates a task from a trimmed name and appends it.
// Ids advance on every successful add and are never reused.
func (s *Store) Add(name string) (Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Task{}, ErrInvalidName
	}

	t := Task{ID: s.nextID, Name: name}
	s.nextID++
	s.tasks = append(s.tasks, t)
	return t, nil
}

// Remove deletes a task by id and returns the removed snapshot.
func (s *Store) Remove(id int) (Task, error) {
	i := s.index(id)
	if i < 0 {
		return Task{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	t := s.tasks[i]
	s.tasks = slices.Delete(s.tasks, i, i+1)
	return t, nil
}

// Reinsert appends a previously removed task with its original id and flags.
// The task goes to the end of insertion order, not its old position.
func (s *Store) Reinsert(t Task) error {
	if s.index(t.ID) >= 0 {
		return fmt.Errorf("%w: %d", ErrDuplicate, t.ID)
	}
	if strings.TrimSpace(t.Name) == "" {
		return ErrInvalidName
	}
	s.tasks = append(s.tasks, t)
	if t.ID >= s.nextID {
		s.nextID = t.ID + 1
	}
	return nil
}

// ToggleCompleted flips the completed flag and returns the updated task.
func (s *Store) ToggleCompleted(id int) (Task, error) {
	i := s.index(id)
	if i < 0 {
		return Task{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	return s.tasks[i], nil
}

// ToggleStarred flips the starred flag and returns the updated task.
func (s *Store) ToggleStarred(id int) (Task, error) {
	i := s.index(id)
	if i < 0 {
		return Task{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	s.tasks[i].Starred = !s.tasks[i].Starred
	return s.tasks[i], nil
}

// Get returns a copy of the task with the given id.
func (s *Store) Get(id int) (Task, error) {
	i := s.index(id)
	if i < 0 {
		return Task{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return s.tasks[i], nil
}

// Len returns the number of stored tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// NextID returns the id the next Add will assign.
func (s *Store) NextID() int {
	return s.nextID
}

// Tasks returns a copy of the tasks in insertion order.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// SortedView returns the tasks in display order: starred before unstarred,
// then open before completed. Ties keep insertion order. The stored order
// is never changed.
func (s *Store) SortedView() []Task {
	view := s.Tasks()
	slices.SortStableFunc(view, func(a, b Task) int {
		return Rank(a) - Rank(b)
	})
	return view
}

func (s *Store) index(id int) int {
	return slices.IndexFunc(s.tasks, func(t Task) bool { return t.ID == id })
}
