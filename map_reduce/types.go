package map_reduce

type KeyValue[K comparable, O any] struct {
	Key   K
	Value O
}

// Mapper turns one input item into exactly one key/value pair. A non-nil
// error drops the item from the run.
type Mapper[I any, K comparable, O any] interface {
	Map(item I) (K, O, error)
}

// Reducer receives every value mapped to key. It is called once per key.
type Reducer[K comparable, O any] interface {
	Reduce(key K, values []O) error
}

type MapperFunc[I any, K comparable, O any] func(item I) (K, O, error)

func (f MapperFunc[I, K, O]) Map(item I) (K, O, error) {
	return f(item)
}

type ReducerFunc[K comparable, O any] func(key K, values []O) error

func (f ReducerFunc[K, O]) Reduce(key K, values []O) error {
	return f(key, values)
}

type Phase int

const (
	MapPhase Phase = iota
	ReducePhase
)

func (p Phase) String() string {
	switch p {
	case MapPhase:
		return "map"
	case ReducePhase:
		return "reduce"
	default:
		return "unknown"
	}
}
