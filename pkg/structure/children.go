package structure

import "iter"

// Children maps sanitized child names to their values, in the order each
// name was first seen.
type Children struct {
	m ordered[Value]
}

// upsert applies the merge policy for one more occurrence of name
func (c *Children) upsert(name string, e *Element) {
	prev, seen := c.m.get(name)
	c.m.set(name, Merge(prev, seen, e))
}

// Get returns the value stored under name.
func (c *Children) Get(name string) (Value, bool) {
	if c == nil {
		return Value{}, false
	}
	return c.m.get(name)
}

// Keys returns child names in first-seen order.
func (c *Children) Keys() []string {
	if c == nil {
		return nil
	}
	return c.m.keyList()
}

func (c *Children) Len() int {
	if c == nil {
		return 0
	}
	return c.m.len()
}

// All iterates child values in first-seen order.
func (c *Children) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if c == nil {
			return
		}
		for _, k := range c.m.keys {
			if !yield(k, c.m.values[k]) {
				return
			}
		}
	}
}
