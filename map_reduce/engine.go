package map_reduce

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Engine runs one map/reduce job over the input it was built with.
type Engine[I any, K comparable, O any] struct {
	input  []I
	clone  func(I) I
	config Config
}

// NewEngine takes ownership of input; the caller must not modify it while
// Run is in progress.
func NewEngine[I any, K comparable, O any](input []I, opts ...Option) *Engine[I, K, O] {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &Engine[I, K, O]{
		input:  input,
		config: config,
	}
}

// SetCloner sets the function that gives every map task its own copy of an
// input item. Needed only when I holds references (slices, maps, pointers).
func (e *Engine[I, K, O]) SetCloner(clone func(I) I) {
	e.clone = clone
}

// Run maps every input item, groups the results by key and reduces each
// group. It returns once every reduce task has finished. Failed tasks are
// logged and skipped; Run itself never fails.
func (e *Engine[I, K, O]) Run(mapper Mapper[I, K, O], reducer Reducer[K, O]) {
	runID := uuid.NewString()
	start := time.Now()
	e.config.Logger.Infof("[run %s] starting with %d input items", runID, len(e.input))

	pairs := e.mapPhase(runID, mapper)

	groups := Group(pairs)
	e.config.Logger.Debugf("[run %s] grouped %d pairs into %d keys", runID, len(pairs), groups.Len())

	e.reducePhase(runID, groups, reducer)

	e.config.Logger.Infof("[run %s] finished in %v", runID, time.Since(start))
}

func (e *Engine[I, K, O]) mapPhase(runID string, mapper Mapper[I, K, O]) []KeyValue[K, O] {
	task := func(item I) (KeyValue[K, O], error) {
		if e.clone != nil {
			item = e.clone(item)
		}
		key, value, err := mapper.Map(item)
		if err != nil {
			return KeyValue[K, O]{}, err
		}
		return KeyValue[K, O]{Key: key, Value: value}, nil
	}

	pairs, failures := Fanout(MapPhase, e.config.MaxConcurrentMapTasks, e.input, task, nil)
	e.logFailures(runID, failures)
	e.config.Logger.Debugf("[run %s] map phase done: %d succeeded, %d failed", runID, len(pairs), len(failures))

	return pairs
}

func (e *Engine[I, K, O]) reducePhase(runID string, groups GroupedValues[K, O], reducer Reducer[K, O]) {
	entries := make([]KeyValue[K, []O], 0, len(groups))
	for key, values := range groups {
		entries = append(entries, KeyValue[K, []O]{Key: key, Value: values})
	}

	task := func(entry KeyValue[K, []O]) (struct{}, error) {
		return struct{}{}, reducer.Reduce(entry.Key, entry.Value)
	}
	describe := func(entry KeyValue[K, []O]) string {
		return fmt.Sprintf("key %v", entry.Key)
	}

	done, failures := Fanout(ReducePhase, e.config.MaxConcurrentReduceTasks, entries, task, describe)
	e.logFailures(runID, failures)
	e.config.Logger.Debugf("[run %s] reduce phase done: %d succeeded, %d failed", runID, len(done), len(failures))
}

func (e *Engine[I, K, O]) logFailures(runID string, failures []*TaskFailure) {
	for _, f := range failures {
		e.config.Logger.Errorf("[run %s] %v", runID, f)
		if f.Stack != nil {
			e.config.Logger.Debugf("[run %s] %s task %d stack:\n%s", runID, f.Phase, f.Index, f.Stack)
		}
	}
}
