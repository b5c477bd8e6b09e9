// Package compare decides whether two paths hold identical content.
//
// Files are equal when their sizes match and every fixed-size chunk has the
// same XXH3 digest. Directories are equal when they list the same names and
// every pair of same-named entries is equal. Sibling pairs are compared in
// parallel, bounded by a worker budget shared across the whole walk; a pair
// that finds no free worker runs on the calling goroutine, so nested
// directories cannot starve each other. The first mismatch cancels the
// remaining siblings.
//
// Symlinks are followed.
package compare
