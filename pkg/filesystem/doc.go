// Package filesystem provides the read-only filesystem access the converter
// uses to locate and load input documents.
//
// Path resolution is written against FS so tests can substitute a mock or
// in-memory implementation for the OS filesystem.
package filesystem
