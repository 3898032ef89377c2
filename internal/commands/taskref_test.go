package commands

import (
	"context"
	"errors"
	"testing"

	"todo/internal/service"
	"todo/internal/task"
)

func TestParseTaskRef_Position(t *testing.T) {
	ref, err := ParseTaskRef([]string{"5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.ByID {
		t.Error("expected ByID to be false")
	}
	if ref.Num != 5 {
		t.Errorf("expected Num 5, got %d", ref.Num)
	}
}

func TestParseTaskRef_ID(t *testing.T) {
	ref, err := ParseTaskRef([]string{"#12"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ref.ByID {
		t.Error("expected ByID to be true")
	}
	if ref.ID != 12 {
		t.Errorf("expected ID 12, got %d", ref.ID)
	}
}

func TestParseTaskRef_Errors(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"abc"}, "invalid task reference: abc"},
		{[]string{"#"}, "invalid task reference: #"},
		{[]string{"#x1"}, "invalid task reference: #x1"},
		{[]string{"-1"}, "invalid task reference: -1"},
		{[]string{"1", "2"}, "too many arguments: 2"},
		{[]string{"٣"}, "invalid task reference: ٣"},
	}
	for _, tt := range tests {
		_, err := ParseTaskRef(tt.args)
		if err == nil {
			t.Errorf("ParseTaskRef(%q): expected error", tt.args)
			continue
		}
		if err.Error() != tt.want {
			t.Errorf("ParseTaskRef(%q): expected %q, got %q", tt.args, tt.want, err.Error())
		}
	}
}

func TestParseTaskRef_Required(t *testing.T) {
	_, err := ParseTaskRef(nil)
	if err != ErrTaskRefRequired {
		t.Fatalf("expected ErrTaskRefRequired, got %v", err)
	}
}

func TestResolveTaskRef(t *testing.T) {
	ctx := context.Background()
	svc := service.NewLocal()
	svc.AddTask(ctx, "a")
	svc.AddTask(ctx, "b")
	svc.ToggleStar(ctx, 1)

	// Positions follow the sorted view: b is starred so it comes first.
	got, err := ResolveTaskRef(ctx, svc, TaskRef{Num: 1})
	if err != nil || got.Name != "b" {
		t.Fatalf("position 1 = %+v, %v; want b", got, err)
	}
	got, err = ResolveTaskRef(ctx, svc, TaskRef{ID: 0, ByID: true})
	if err != nil || got.Name != "a" {
		t.Fatalf("#0 = %+v, %v; want a", got, err)
	}

	if _, err := ResolveTaskRef(ctx, svc, TaskRef{Num: 3}); err == nil || err.Error() != "task number out of range: 3" {
		t.Errorf("expected out of range error, got %v", err)
	}
	if _, err := ResolveTaskRef(ctx, svc, TaskRef{Num: 0}); err == nil {
		t.Error("expected error for position 0")
	}
	if _, err := ResolveTaskRef(ctx, svc, TaskRef{ID: 9, ByID: true}); !errors.Is(err, task.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
