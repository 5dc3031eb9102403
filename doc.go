// Package replkit is a line-oriented command parser and dispatcher for
// embedding in REPLs. A raw text line is tokenized, matched against an
// immutable tree of named commands, bound into typed positional and
// named arguments, and dispatched to the registered handler of the
// deepest matched command.
//
// The tree is declared with spec structs and built once with New;
// after that it is read-only and safe for concurrent reads. Each call
// to Exec builds a fresh Context, so parsing never mutates shared
// state. The engine performs no I/O: line acquisition and result
// display belong to the surrounding read loop.
package replkit
