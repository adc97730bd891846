package map_reduce

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

var errEmptyWord = errors.New("no letters left after trimming punctuation")

type WordCountMapper struct{}

func (m *WordCountMapper) Map(word string) (string, int, error) {
	normalized := strings.ToLower(strings.Trim(word, ".,!?\"':;()"))
	if normalized == "" {
		return "", 0, &ItemError{Item: word, Err: errEmptyWord}
	}
	return normalized, 1, nil
}

// WordCountReducer writes "<word>: <count>" lines to Out.
type WordCountReducer struct {
	Out io.Writer
	mu  sync.Mutex
}

func (r *WordCountReducer) Reduce(key string, values []int) error {
	count := 0
	for _, v := range values {
		count += v
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := fmt.Fprintf(r.Out, "%s: %d\n", key, count); err != nil {
		return fmt.Errorf("writing count for %q: %w", key, err)
	}
	return nil
}
