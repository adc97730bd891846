package map_reduce

import (
	"errors"
	"fmt"
)

var (
	ErrTaskPanicked = errors.New("task panicked")
	ErrTaskAborted  = errors.New("task exited without returning")
)

// TaskFailure records one map or reduce task that did not produce output.
// It is only ever logged; the run carries on without it.
type TaskFailure struct {
	Phase Phase
	Index int
	Item  string
	Cause error
	// Stack is set when the task panicked.
	Stack []byte
}

func (f *TaskFailure) Error() string {
	return fmt.Sprintf("%s task %d (%s) failed: %v", f.Phase, f.Index, f.Item, f.Cause)
}

func (f *TaskFailure) Unwrap() error {
	return f.Cause
}

// ItemError is returned by a mapper that rejects its input.
type ItemError struct {
	Item string
	Err  error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("malformed item %q: %v", e.Item, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}
