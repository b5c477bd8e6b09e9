package testutil

import (
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/arthur-debert/robe/pkg/types"
)

// FaultyFS wraps a types.FS and fails chosen operations. A fault matches
// when the operation name is equal and the path contains the fragment.
type FaultyFS struct {
	types.FS

	mu     sync.Mutex
	faults []fault
}

type fault struct {
	op       string
	fragment string
	err      error
	once     bool
}

// NewFaultyFS wraps base
func NewFaultyFS(base types.FS) *FaultyFS {
	return &FaultyFS{FS: base}
}

// FailOn makes op fail with err for any path containing fragment
func (f *FaultyFS) FailOn(op, fragment string, err error) *FaultyFS {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.faults = append(f.faults, fault{op: op, fragment: fragment, err: err})
	return f
}

// FailOnce is like FailOn but the fault fires only the first time
func (f *FaultyFS) FailOnce(op, fragment string, err error) *FaultyFS {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.faults = append(f.faults, fault{op: op, fragment: fragment, err: err, once: true})
	return f
}

func (f *FaultyFS) check(op, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, flt := range f.faults {
		if flt.op == op && strings.Contains(path, flt.fragment) {
			if flt.once {
				f.faults = append(f.faults[:i], f.faults[i+1:]...)
			}
			return &fs.PathError{Op: op, Path: path, Err: flt.err}
		}
	}
	return nil
}

func (f *FaultyFS) Open(name string) (fs.File, error) {
	if err := f.check("open", name); err != nil {
		return nil, err
	}
	return f.FS.Open(name)
}

func (f *FaultyFS) Create(name string, perm fs.FileMode) (io.WriteCloser, error) {
	if err := f.check("create", name); err != nil {
		return nil, err
	}
	return f.FS.Create(name, perm)
}

func (f *FaultyFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := f.check("write", name); err != nil {
		return err
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *FaultyFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.check("readdir", name); err != nil {
		return nil, err
	}
	return f.FS.ReadDir(name)
}

func (f *FaultyFS) Rename(oldpath, newpath string) error {
	if err := f.check("rename", newpath); err != nil {
		return err
	}
	return f.FS.Rename(oldpath, newpath)
}
