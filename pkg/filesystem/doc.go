// Package filesystem provides filesystem implementations for robe.
//
// This package contains implementations of the types.FS interface:
// the standard OS filesystem used by the command line, and an afero-backed
// filesystem whose in-memory variant serves as the fake in tests.
package filesystem
