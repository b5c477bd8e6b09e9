// Package errors provides the coded error type used throughout robe.
//
// Every failure a command can report carries an ErrorCode so callers and
// tests can branch on the kind of failure (usage, not found, already
// exists, filesystem, serialization) without matching message text.
package errors
