// Package structure holds the converted form of a document.
//
// An Element carries up to five independent parts: an attribute map, three
// text buckets (text, comment, CDATA) and a map of child values. A child
// value is either a single Element or an ordered list of Elements; a name
// seen once under a parent stays single, a name seen again becomes a list
// that keeps every occurrence in document order.
//
// Elements are assembled with a Builder and never change once built. The
// Project function turns a Document into plain ordered maps, lists and
// strings for serialization.
package structure
