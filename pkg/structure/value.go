package structure

import "slices"

// Value is the result stored under a child name: either a single Element
// or an ordered list of Elements.
type Value struct {
	single *Element
	list   []*Element
}

// Single wraps one element.
func Single(e *Element) Value {
	return Value{single: e}
}

// List wraps an ordered sequence of elements.
func List(elems ...*Element) Value {
	return Value{list: slices.Clone(elems)}
}

// IsList reports whether the name was seen more than once.
func (v Value) IsList() bool {
	return v.list != nil
}

// Element returns the element of a single value.
func (v Value) Element() (*Element, bool) {
	if v.IsList() {
		return nil, false
	}
	return v.single, v.single != nil
}

// Elements returns every element in document order. A single value yields
// a one-element slice; callers that care must check IsList first.
func (v Value) Elements() []*Element {
	if v.IsList() {
		return slices.Clone(v.list)
	}
	if v.single == nil {
		return nil
	}
	return []*Element{v.single}
}

// Len is the number of occurrences the value represents.
func (v Value) Len() int {
	if v.IsList() {
		return len(v.list)
	}
	if v.single == nil {
		return 0
	}
	return 1
}

// Merge folds another occurrence of a name into the value already stored
// for it. An unseen name becomes Single, a Single becomes a two-element
// List with the earlier element first, and a List grows at the end.
// prev is never modified.
func Merge(prev Value, seen bool, next *Element) Value {
	switch {
	case !seen:
		return Single(next)
	case prev.IsList():
		return Value{list: append(slices.Clip(prev.list), next)}
	default:
		return Value{list: []*Element{prev.single, next}}
	}
}
