// Package dom defines the read-only node capabilities the converter needs
// from a parsed document, and provides an implementation backed by
// github.com/beevik/etree.
//
// The converter never parses bytes itself. Any tree that can answer the
// questions in Node (kind, name, attributes, children, text payload) can be
// converted, which keeps the core independent of the parser in use.
package dom
