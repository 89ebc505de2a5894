package structure

import "iter"

// Attr is a sanitized attribute name with its literal value.
type Attr struct {
	Name  string
	Value string
}

// Attributes is an ordered mapping from sanitized attribute name to value.
// A nil *Attributes means the element had no attributes at all.
type Attributes struct {
	m ordered[string]
}

// NewAttributes builds an attribute map in the given order. It returns nil
// for an empty input. When two entries share a name the later value wins
// and keeps the first entry's position.
func NewAttributes(attrs []Attr) *Attributes {
	if len(attrs) == 0 {
		return nil
	}
	a := &Attributes{}
	for _, attr := range attrs {
		a.m.set(attr.Name, attr.Value)
	}
	return a
}

// Get returns the value stored under name.
func (a *Attributes) Get(name string) (string, bool) {
	if a == nil {
		return "", false
	}
	return a.m.get(name)
}

// Keys returns attribute names in document order.
func (a *Attributes) Keys() []string {
	if a == nil {
		return nil
	}
	return a.m.keyList()
}

func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return a.m.len()
}

// All iterates attributes in document order.
func (a *Attributes) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if a == nil {
			return
		}
		for _, k := range a.m.keys {
			if !yield(k, a.m.values[k]) {
				return
			}
		}
	}
}
