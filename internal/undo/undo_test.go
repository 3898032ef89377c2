package undo_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"todo/internal/task"
	"todo/internal/undo"
)

func newStore(t *testing.T, names ...string) *task.Store {
	t.Helper()
	s := task.NewStore()
	for _, name := range names {
		if _, err := s.Add(name); err != nil {
			t.Fatalf("Add(%q): %v", name, err)
		}
	}
	return s
}

func sortedByID(tasks []task.Task) []task.Task {
	out := slices.Clone(tasks)
	slices.SortFunc(out, func(a, b task.Task) int { return a.ID - b.ID })
	return out
}

func TestRequestDelete_RemovesAndHolds(t *testing.T) {
	s := newStore(t, "Buy milk", "Call mom")
	c := undo.New(s)

	p, err := c.RequestDelete(1)
	if err != nil {
		t.Fatalf("RequestDelete: %v", err)
	}
	if p.Task.Name != "Call mom" {
		t.Fatalf("expected pending Call mom, got %+v", p.Task)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 task in store, got %d", s.Len())
	}
	got, ok := c.Pending()
	if !ok || got != p {
		t.Fatalf("Pending() = %+v, %v; want %+v", got, ok, p)
	}
}

func TestUndo_RoundTrip(t *testing.T) {
	s := newStore(t, "a", "b", "c")
	s.ToggleStarred(1)
	s.ToggleCompleted(1)
	before := s.Tasks()
	c := undo.New(s)

	if _, err := c.RequestDelete(1); err != nil {
		t.Fatalf("RequestDelete: %v", err)
	}
	restored, err := c.Undo()
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}

	want := task.Task{ID: 1, Name: "b", Starred: true, Completed: true}
	if diff := cmp.Diff(want, restored); diff != "" {
		t.Fatalf("restored task mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(sortedByID(before), sortedByID(s.Tasks())); diff != "" {
		t.Fatalf("store differs after round trip (-want +got):\n%s", diff)
	}
	if _, ok := c.Pending(); ok {
		t.Fatal("coordinator should be idle after undo")
	}
}

func TestUndo_Idle(t *testing.T) {
	s := newStore(t, "a")
	c := undo.New(s)

	_, err := c.Undo()
	if !errors.Is(err, undo.ErrNothingToUndo) {
		t.Fatalf("expected ErrNothingToUndo, got %v", err)
	}
	if s.Len() != 1 {
		t.Fatal("store should be unchanged")
	}
}

func TestUndo_SecondUndoFails(t *testing.T) {
	s := newStore(t, "a")
	c := undo.New(s)
	c.RequestDelete(0)
	if _, err := c.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if _, err := c.Undo(); !errors.Is(err, undo.ErrNothingToUndo) {
		t.Fatalf("expected ErrNothingToUndo on second undo, got %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected exactly one task, got %d", s.Len())
	}
}

func TestRequestDelete_SupersedesPrevious(t *testing.T) {
	s := newStore(t, "a", "b", "c")
	c := undo.New(s)

	first, _ := c.RequestDelete(0)
	second, err := c.RequestDelete(1)
	if err != nil {
		t.Fatalf("RequestDelete: %v", err)
	}
	if second.Seq <= first.Seq {
		t.Fatalf("seq should increase: %d then %d", first.Seq, second.Seq)
	}

	restored, err := c.Undo()
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if restored.ID != 1 {
		t.Fatalf("expected b (id 1) restored, got %+v", restored)
	}
	if _, err := s.Get(0); !errors.Is(err, task.ErrNotFound) {
		t.Fatalf("a should be permanently gone, got %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 tasks, got %d", s.Len())
	}
}

func TestRequestDelete_NotFoundKeepsPending(t *testing.T) {
	s := newStore(t, "a", "b")
	c := undo.New(s)
	p, _ := c.RequestDelete(0)

	if _, err := c.RequestDelete(99); !errors.Is(err, task.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	got, ok := c.Pending()
	if !ok || got != p {
		t.Fatalf("failed delete should keep pending %+v, got %+v %v", p, got, ok)
	}
}

func TestExpire(t *testing.T) {
	s := newStore(t, "a")
	c := undo.New(s)

	if _, ok := c.Expire(); ok {
		t.Fatal("Expire when idle should report false")
	}

	c.RequestDelete(0)
	p, ok := c.Expire()
	if !ok || p.Task.Name != "a" {
		t.Fatalf("Expire() = %+v, %v", p, ok)
	}
	if _, err := c.Undo(); !errors.Is(err, undo.ErrNothingToUndo) {
		t.Fatalf("undo after expire should fail, got %v", err)
	}
	if s.Len() != 0 {
		t.Fatal("expired task must not return to the store")
	}
}

func TestExpireSeq_IgnoresStaleSeq(t *testing.T) {
	s := newStore(t, "a", "b")
	c := undo.New(s)

	first, _ := c.RequestDelete(0)
	second, _ := c.RequestDelete(1)

	if _, ok := c.ExpireSeq(first.Seq); ok {
		t.Fatal("stale seq must not expire the newer deletion")
	}
	if _, ok := c.Pending(); !ok {
		t.Fatal("newer deletion should still be pending")
	}
	if _, ok := c.ExpireSeq(second.Seq); !ok {
		t.Fatal("current seq should expire")
	}
}
