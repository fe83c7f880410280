package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"todo/internal/service"
	"todo/internal/task"
)

// TaskRef represents a parsed task reference.
type TaskRef struct {
	Num   int   // 1-based position in the full collection, 0 if HasID
	ID    int64 // explicit task id, valid if HasID
	HasID bool  // true for the #ID form
}

// String returns the reference as the user typed it.
func (r TaskRef) String() string {
	if r.HasID {
		return fmt.Sprintf("#%d", r.ID)
	}
	return strconv.Itoa(r.Num)
}

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ParseTaskRef parses the task reference in the first arg.
//
// Parsing rules:
// 1. All digits (e.g., 3) → position as printed by `todo list`
// 2. '#' followed by digits (e.g., #1700000000000) → explicit task id
// 3. Otherwise → error: invalid task reference: <ref>
func ParseTaskRef(args []string) (TaskRef, error) {
	if len(args) == 0 {
		return TaskRef{}, ErrTaskRefRequired
	}

	arg := args[0]

	if isAllDigits(arg) {
		num, err := strconv.Atoi(arg)
		if err != nil {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
		}
		return TaskRef{Num: num}, nil
	}

	if len(arg) > 1 && arg[0] == '#' && isAllDigits(arg[1:]) {
		id, err := strconv.ParseInt(arg[1:], 10, 64)
		if err != nil {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
		}
		return TaskRef{ID: id, HasID: true}, nil
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

// errRefNotFound is returned by ResolveTaskRef; its message is user-facing.
type errRefNotFound struct {
	ref TaskRef
}

func (e errRefNotFound) Error() string {
	if e.ref.HasID {
		return fmt.Sprintf("task not found: %s", e.ref)
	}
	return fmt.Sprintf("task number out of range: %d", e.ref.Num)
}

// ResolveTaskRef finds the task a reference points to.
func ResolveTaskRef(ctx context.Context, svc service.Service, ref TaskRef) (task.Task, error) {
	tasks := svc.Tasks(ctx)

	if ref.HasID {
		i, ok := task.Find(tasks, ref.ID)
		if !ok {
			return task.Task{}, errRefNotFound{ref}
		}
		return tasks[i], nil
	}

	if ref.Num < 1 || ref.Num > len(tasks) {
		return task.Task{}, errRefNotFound{ref}
	}
	return tasks[ref.Num-1], nil
}

// resolveArgs parses and resolves the reference in args[0].
// On failure it returns a message suitable for "error: <msg>".
func resolveArgs(ctx context.Context, svc service.Service, args []string) (task.Task, error) {
	ref, err := ParseTaskRef(args)
	if err != nil {
		return task.Task{}, err
	}
	return ResolveTaskRef(ctx, svc, ref)
}
