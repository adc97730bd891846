package map_reduce

import (
	"fmt"
	"runtime/debug"

	"golang.org/x/sync/errgroup"
)

type taskSlot[Y any] struct {
	out   Y
	err   error
	stack []byte
}

// Fanout calls f once per input, each call in its own goroutine, and waits
// for all of them. limit caps the number of goroutines in flight; zero or
// less launches everything at once.
//
// A call that returns an error, panics or exits its goroutine produces a
// TaskFailure instead of an output. Outputs come back in input order with
// the failed slots removed.
func Fanout[X, Y any](phase Phase, limit int, inputs []X, f func(X) (Y, error), describe func(X) string) ([]Y, []*TaskFailure) {
	slots := make([]taskSlot[Y], len(inputs))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i := range inputs {
		i := i
		g.Go(func() error {
			// each goroutine owns slots[i]; nothing else is shared
			runTask(&slots[i], inputs[i], f)
			return nil
		})
	}
	_ = g.Wait()

	outputs := make([]Y, 0, len(inputs))
	var failures []*TaskFailure
	for i, s := range slots {
		if s.err != nil {
			failures = append(failures, &TaskFailure{
				Phase: phase,
				Index: i,
				Item:  describeItem(inputs[i], describe),
				Cause: s.err,
				Stack: s.stack,
			})
			continue
		}
		outputs = append(outputs, s.out)
	}
	return outputs, failures
}

// runTask writes through slot so that a goroutine ended by runtime.Goexit
// still leaves a failure behind.
func runTask[X, Y any](slot *taskSlot[Y], in X, f func(X) (Y, error)) {
	returned := false
	defer func() {
		r := recover()
		switch {
		case r != nil:
			slot.err = fmt.Errorf("%w: %v", ErrTaskPanicked, r)
			slot.stack = debug.Stack()
		case !returned:
			slot.err = ErrTaskAborted
		}
	}()

	slot.out, slot.err = f(in)
	returned = true
}

func describeItem[X any](in X, describe func(X) string) string {
	if describe != nil {
		return describe(in)
	}
	return fmt.Sprintf("%v", in)
}
