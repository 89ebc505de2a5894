package structure

// ordered is an insertion-ordered string-keyed map
type ordered[V any] struct {
	keys   []string
	values map[string]V
}

func (o *ordered[V]) get(key string) (V, bool) {
	v, ok := o.values[key]
	return v, ok
}

// set replaces the value in place for a known key and appends new keys
func (o *ordered[V]) set(key string, value V) {
	if o.values == nil {
		o.values = make(map[string]V)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

func (o *ordered[V]) len() int {
	return len(o.keys)
}

func (o *ordered[V]) keyList() []string {
	if len(o.keys) == 0 {
		return nil
	}
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}
