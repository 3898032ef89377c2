// Package undo holds a removed task for a short window so a delete can be
// reversed.
//
// The coordinator is a two-state machine:
//
//	Idle --RequestDelete--> Pending
//	Pending --Undo--> Idle          (task reinserted)
//	Pending --Expire--> Idle        (task discarded)
//	Pending --RequestDelete--> Pending  (previous task discarded)
//
// It knows nothing about timing. Hosts decide when a window ends and call
// Expire or ExpireSeq.
package undo

import (
	"errors"
	"fmt"

	"todo/internal/task"
)

// ErrNothingToUndo is returned by Undo when no deletion is pending.
var ErrNothingToUndo = errors.New("nothing to undo")

// Store is the subset of task.Store the coordinator needs.
type Store interface {
	Remove(id int) (task.Task, error)
	Reinsert(t task.Task) error
}

// Pending is a removed task awaiting restore or discard.
// Seq identifies the deletion; it increases with every accepted delete.
type Pending struct {
	Seq  uint64
	Task task.Task
}

// Coordinator holds at most one pending deletion.
// Not safe for concurrent use.
type Coordinator struct {
	store   Store
	pending *Pending
	seq     uint64
}

// New creates an idle coordinator over store.
func New(store Store) *Coordinator {
	return &Coordinator{store: store}
}

// RequestDelete removes the task from the store and holds the snapshot.
// Any previously pending deletion is discarded. If the remove fails the
// coordinator is left as it was.
func (c *Coordinator) RequestDelete(id int) (Pending, error) {
	removed, err := c.store.Remove(id)
	if err != nil {
		return Pending{}, err
	}
	c.seq++
	c.pending = &Pending{Seq: c.seq, Task: removed}
	return *c.pending, nil
}

// Undo reinserts the pending task and returns to idle.
func (c *Coordinator) Undo() (task.Task, error) {
	if c.pending == nil {
		return task.Task{}, ErrNothingToUndo
	}
	t := c.pending.Task
	if err := c.store.Reinsert(t); err != nil {
		return task.Task{}, fmt.Errorf("restore task %d: %w", t.ID, err)
	}
	c.pending = nil
	return t, nil
}

// Expire discards the pending task. Returns false when idle.
func (c *Coordinator) Expire() (Pending, bool) {
	if c.pending == nil {
		return Pending{}, false
	}
	p := *c.pending
	c.pending = nil
	return p, true
}

// ExpireSeq discards the pending task only if it belongs to deletion seq.
// Timers started for an earlier deletion use this so they cannot end a
// newer window.
func (c *Coordinator) ExpireSeq(seq uint64) (Pending, bool) {
	if c.pending == nil || c.pending.Seq != seq {
		return Pending{}, false
	}
	return c.Expire()
}

// Pending returns the pending deletion, if any.
func (c *Coordinator) Pending() (Pending, bool) {
	if c.pending == nil {
		return Pending{}, false
	}
	return *c.pending, true
}
