package events

import (
	"testing"
	"time"
)

func receive(t *testing.T, sub *Subscription) Event {
	t.Helper()
	select {
	case ev := <-sub.Ch():
		return ev
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}
	return Event{}
}

func TestBus_PublishSubscribe(t *testing.T) {
	b := New()
	sub := b.Subscribe(TopicTasksChanged)
	defer b.Unsubscribe(sub)

	b.Publish(TopicTasksChanged, TasksChanged{Reason: ReasonAdded, ID: 3})

	ev := receive(t, sub)
	payload, ok := ev.Payload.(TasksChanged)
	if !ok {
		t.Fatalf("payload type = %T, want TasksChanged", ev.Payload)
	}
	if payload.ID != 3 || payload.Reason != ReasonAdded {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestBus_PrefixMatching(t *testing.T) {
	b := New()
	undoSub := b.Subscribe("undo.")
	defer b.Unsubscribe(undoSub)
	allSub := b.Subscribe("")
	defer b.Unsubscribe(allSub)

	b.Publish(TopicTasksChanged, TasksChanged{})
	b.Publish(TopicUndoOffered, UndoOffered{Seq: 1})

	if ev := receive(t, undoSub); ev.Topic != TopicUndoOffered {
		t.Fatalf("undo subscriber got %q", ev.Topic)
	}
	select {
	case ev := <-undoSub.Ch():
		t.Fatalf("unexpected event on undo subscriber: %v", ev)
	case <-time.After(50 * time.Millisecond):
	}

	if ev := receive(t, allSub); ev.Topic != TopicTasksChanged {
		t.Fatalf("first event = %q, want %q", ev.Topic, TopicTasksChanged)
	}
	if ev := receive(t, allSub); ev.Topic != TopicUndoOffered {
		t.Fatalf("second event = %q, want %q", ev.Topic, TopicUndoOffered)
	}
}

func TestBus_FullBufferDrops(t *testing.T) {
	b := New()
	sub := b.Subscribe("")
	defer b.Unsubscribe(sub)

	for i := 0; i < defaultBufferSize+10; i++ {
		b.Publish(TopicTasksChanged, TasksChanged{ID: i})
	}
	if got := len(sub.Ch()); got != defaultBufferSize {
		t.Fatalf("buffered = %d, want %d", got, defaultBufferSize)
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	b := New()
	sub := b.Subscribe("")
	if b.SubscriberCount() != 1 {
		t.Fatalf("expected 1 subscriber, got %d", b.SubscriberCount())
	}
	b.Unsubscribe(sub)
	b.Unsubscribe(sub)
	b.Unsubscribe(nil)
	if b.SubscriberCount() != 0 {
		t.Fatalf("expected 0 subscribers, got %d", b.SubscriberCount())
	}
	if _, ok := <-sub.Ch(); ok {
		t.Fatal("channel should be closed")
	}
	b.Publish(TopicTasksChanged, nil)
}
