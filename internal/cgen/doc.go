// Package cgen builds C source and header text from a tree of nodes.
//
// Callers construct nodes bottom-up (declarations, blocks, aggregates,
// functions and control constructs), append them to a file's Code
// container and ask the file for its text or write it to disk. Rendering
// is deterministic: the same tree always produces the same bytes.
package cgen
