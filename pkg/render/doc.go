// Package render writes converted documents in a chosen output format.
//
// Every format projects the document through structure.Project first, so
// a single child is always written as a mapping and a repeated child as a
// sequence. JSON and YAML keep document order; TOML sorts keys, as
// go-toml does for every map.
package render
