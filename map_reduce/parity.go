package map_reduce

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"sync"
)

var ErrSumOverflow = errors.New("sum overflows int64")

// ParityMapper parses an integer and keys it by whether it is even.
type ParityMapper struct{}

func (m *ParityMapper) Map(token string) (bool, int64, error) {
	v, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return false, 0, &ItemError{Item: token, Err: err}
	}
	return v%2 == 0, v, nil
}

// SumReducer writes "<key>: <sum>" lines to Out. A group whose sum does not
// fit in an int64 fails with ErrSumOverflow and writes nothing.
type SumReducer struct {
	Out io.Writer
	mu  sync.Mutex
}

func (r *SumReducer) Reduce(even bool, values []int64) error {
	var sum int64
	for _, v := range values {
		if (v > 0 && sum > math.MaxInt64-v) || (v < 0 && sum < math.MinInt64-v) {
			return fmt.Errorf("summing values for %t: %w", even, ErrSumOverflow)
		}
		sum += v
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := fmt.Fprintf(r.Out, "%t: %d\n", even, sum); err != nil {
		return fmt.Errorf("writing sum for %t: %w", even, err)
	}
	return nil
}
