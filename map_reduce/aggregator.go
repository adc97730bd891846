package map_reduce

// GroupedValues maps each key to its values in the order they were grouped.
type GroupedValues[K comparable, O any] map[K][]O

// Group collects the values of pairs by key in a single sequential pass.
func Group[K comparable, O any](pairs []KeyValue[K, O]) GroupedValues[K, O] {
	groups := make(GroupedValues[K, O])
	for _, kv := range pairs {
		groups[kv.Key] = append(groups[kv.Key], kv.Value)
	}
	return groups
}

func (g GroupedValues[K, O]) Len() int {
	return len(g)
}

// Keys returns the grouped keys in no particular order.
func (g GroupedValues[K, O]) Keys() []K {
	keys := make([]K, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	return keys
}
