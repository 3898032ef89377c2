package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"todo/internal/service"
	"todo/internal/task"
)

// TaskRef represents a parsed task reference.
type TaskRef struct {
	Num  int  // 1-based position in the sorted view
	ID   int  // task id, when ByID
	ByID bool // true if the reference was #<id>
}

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ParseTaskRef parses a task reference from args.
//
// Parsing rules:
// 1. "<digits>" → position in the current sorted view (1-based)
// 2. "#<digits>" → task id
// 3. No args → error: task reference required
// 4. More than one arg → error: too many arguments
// 5. Otherwise → error: invalid task reference: <ref>
func ParseTaskRef(args []string) (TaskRef, error) {
	if len(args) == 0 {
		return TaskRef{}, ErrTaskRefRequired
	}
	if len(args) > 1 {
		return TaskRef{}, fmt.Errorf("too many arguments: %s", strings.Join(args[1:], " "))
	}

	arg := args[0]
	if isAllDigits(arg) {
		num, err := strconv.Atoi(arg)
		if err != nil {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
		}
		return TaskRef{Num: num}, nil
	}

	if idPart, ok := strings.CutPrefix(arg, "#"); ok && isAllDigits(idPart) {
		id, err := strconv.Atoi(idPart)
		if err != nil {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
		}
		return TaskRef{ID: id, ByID: true}, nil
	}

	return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ResolveTaskRef finds the task a reference points at in the current
// sorted view.
func ResolveTaskRef(ctx context.Context, svc service.Service, ref TaskRef) (task.Task, error) {
	view, err := svc.SortedView(ctx)
	if err != nil {
		return task.Task{}, err
	}

	if ref.ByID {
		for _, t := range view {
			if t.ID == ref.ID {
				return t, nil
			}
		}
		return task.Task{}, fmt.Errorf("%w: #%d", task.ErrNotFound, ref.ID)
	}

	if ref.Num < 1 || ref.Num > len(view) {
		return task.Task{}, fmt.Errorf("task number out of range: %d", ref.Num)
	}
	return view[ref.Num-1], nil
}
