// Package task holds the in-memory task collection and its display order.
package task

import "errors"

// Task represents a single to-do item.
type Task struct {
	ID        int
	Name      string
	Completed bool
	Starred   bool
}

var (
	// ErrInvalidName is returned when a task name is blank after trimming.
	ErrInvalidName = errors.New("task name required")

	// ErrNotFound is returned when an operation references an unknown id.
	ErrNotFound = errors.New("task not found")

	// ErrDuplicate is returned when reinserting an id that is already stored.
	ErrDuplicate = errors.New("task already present")
)

// Rank returns the display rank of a task. Lower ranks sort first:
// starred+open, starred+completed, open, completed.
func Rank(t Task) int {
	r := 0
	if !t.Starred {
		r += 2
	}
	if t.Completed {
		r++
	}
	return r
}

// Less reports whether a sorts strictly before b in the display order.
// Tasks of equal rank are unordered here; SortedView keeps them in
// insertion order.
func Less(a, b Task) bool {
	return Rank(a) < Rank(b)
}
