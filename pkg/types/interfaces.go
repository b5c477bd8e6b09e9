package types

import (
	"io"
	"io/fs"
)

// FS is the filesystem interface required for robe operations. The replace
// engine, the equality checker and the registry only ever touch the disk
// through it, so they can run against an in-memory filesystem in tests.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Open(name string) (fs.File, error)
	Create(name string, perm fs.FileMode) (io.WriteCloser, error)

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error
	Rename(oldpath, newpath string) error

	// Realpath returns the absolute, cleaned form of name with symlinks in
	// its parent components resolved where the implementation supports it.
	Realpath(name string) (string, error)
}
