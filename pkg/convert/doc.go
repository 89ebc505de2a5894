// Package convert turns a parsed XML element tree into a structure.Document.
//
// Conversion is a single recursive pass over a read-only dom.Node tree:
//
//   - element and attribute names are sanitized (SanitizeName),
//   - each child is classified as element, text, comment, CDATA or other,
//   - child elements are folded into the parent's child map, where a name
//     seen once stays single and a repeated name becomes an ordered list,
//   - text, comment and CDATA fragments that are not whitespace only are
//     concatenated, in document order and without separators, into three
//     independent buckets on the parent.
//
// An element with neither child elements nor any bucket gets its raw text
// content (possibly empty) as its text bucket, so <e/> converts to an
// explicit empty text rather than to nothing.
//
// Converter adds the file-facing entry points: path resolution with a
// default extension, reading, and parsing through etree.
package convert
