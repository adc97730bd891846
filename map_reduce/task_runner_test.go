package map_reduce

import (
	"errors"
	"runtime"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFanout(t *testing.T) {
	double := func(v int) (int, error) { return v * 2, nil }

	got, failures := Fanout(MapPhase, 0, []int{1, 2, 3, 4}, double, nil)
	require.Empty(t, failures)
	require.Equal(t, []int{2, 4, 6, 8}, got)
}

func TestFanoutEmptyInput(t *testing.T) {
	called := false
	got, failures := Fanout(MapPhase, 0, nil, func(v int) (int, error) {
		called = true
		return v, nil
	}, nil)

	require.False(t, called)
	require.Empty(t, got)
	require.Empty(t, failures)
}

func TestFanoutIsolatesFailures(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name    string
		fail    func(v int) (int, error)
		wantErr error
		stack   bool
	}{
		{
			name:    "returned error",
			fail:    func(v int) (int, error) { return 0, errBoom },
			wantErr: errBoom,
		},
		{
			name:    "panic",
			fail:    func(v int) (int, error) { panic("bad item") },
			wantErr: ErrTaskPanicked,
			stack:   true,
		},
		{
			name: "goexit",
			fail: func(v int) (int, error) {
				runtime.Goexit()
				return 0, nil
			},
			wantErr: ErrTaskAborted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := func(v int) (int, error) {
				if v == 3 {
					return tt.fail(v)
				}
				return v, nil
			}

			got, failures := Fanout(ReducePhase, 0, []int{1, 2, 3, 4, 5}, f, func(v int) string {
				return "item-" + strconv.Itoa(v)
			})

			require.Equal(t, []int{1, 2, 4, 5}, got)
			require.Len(t, failures, 1)

			failure := failures[0]
			require.Equal(t, ReducePhase, failure.Phase)
			require.Equal(t, 2, failure.Index)
			require.Equal(t, "item-3", failure.Item)
			require.ErrorIs(t, failure, tt.wantErr)
			require.Equal(t, tt.stack, failure.Stack != nil)
			require.Contains(t, failure.Error(), "reduce task 2 (item-3) failed")
		})
	}
}

func TestFanoutAllFail(t *testing.T) {
	got, failures := Fanout(MapPhase, 2, []string{"a", "b", "c"}, func(s string) (string, error) {
		panic(s)
	}, nil)

	require.Empty(t, got)
	require.Len(t, failures, 3)
	for i, f := range failures {
		require.Equal(t, i, f.Index)
		require.ErrorIs(t, f, ErrTaskPanicked)
	}
}

func TestFanoutLimit(t *testing.T) {
	const limit = 3

	var inFlight, maxInFlight atomic.Int32
	f := func(v int) (int, error) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			cur := maxInFlight.Load()
			if n <= cur || maxInFlight.CompareAndSwap(cur, n) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		return v, nil
	}

	inputs := make([]int, 30)
	for i := range inputs {
		inputs[i] = i
	}

	got, failures := Fanout(MapPhase, limit, inputs, f, nil)
	require.Empty(t, failures)
	require.Equal(t, inputs, got)
	require.LessOrEqual(t, maxInFlight.Load(), int32(limit))
	require.Greater(t, maxInFlight.Load(), int32(0))
}
