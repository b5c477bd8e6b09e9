package compare

import (
	"context"
	stderrors "errors"
	"io"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/arthur-debert/robe/pkg/errors"
	"github.com/arthur-debert/robe/pkg/filesystem"
	"github.com/arthur-debert/robe/pkg/types"
	"github.com/zeebo/xxh3"
	"golang.org/x/sync/errgroup"
)

// DefaultChunkSize is the read size used for file comparison
const DefaultChunkSize = 8 * 1024

// errMismatch stops a directory's errgroup once a pair differs
var errMismatch = stderrors.New("entries differ")

// Checker compares files and directory trees
type Checker struct {
	// FS is the filesystem to read. Nil selects the OS filesystem.
	FS types.FS

	// Workers bounds the number of concurrent comparisons. Zero or less
	// means runtime.GOMAXPROCS(0).
	Workers int

	// ChunkSize is the file read size. Zero or less means DefaultChunkSize.
	ChunkSize int
}

// Equal compares a and b with a default Checker
func Equal(fsys types.FS, a, b string) (bool, error) {
	c := &Checker{FS: fsys}
	return c.Equal(context.Background(), a, b)
}

// walk holds the state shared by one Equal call
type walk struct {
	fs    types.FS
	sem   chan struct{}
	chunk int
}

// Equal reports whether a and b have identical content
func (c *Checker) Equal(ctx context.Context, a, b string) (bool, error) {
	w := &walk{fs: c.FS, chunk: c.ChunkSize}
	if w.fs == nil {
		w.fs = filesystem.NewOS()
	}
	if w.chunk <= 0 {
		w.chunk = DefaultChunkSize
	}
	workers := c.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	w.sem = make(chan struct{}, workers)

	infoA, err := w.stat(a)
	if err != nil {
		return false, err
	}
	infoB, err := w.stat(b)
	if err != nil {
		return false, err
	}

	return w.equal(ctx, a, infoA, b, infoB)
}

func (w *walk) stat(path string) (fs.FileInfo, error) {
	info, err := w.fs.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", path)
	}
	return info, nil
}

func (w *walk) equal(ctx context.Context, a string, infoA fs.FileInfo, b string, infoB fs.FileInfo) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	switch {
	case infoA.IsDir() && infoB.IsDir():
		return w.equalDirs(ctx, a, b)
	case !infoA.IsDir() && !infoB.IsDir():
		return w.equalFiles(ctx, a, infoA, b, infoB)
	default:
		return false, nil
	}
}

func (w *walk) readDir(path string) ([]fs.DirEntry, error) {
	entries, err := w.fs.ReadDir(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

func (w *walk) equalDirs(ctx context.Context, a, b string) (bool, error) {
	entriesA, err := w.readDir(a)
	if err != nil {
		return false, err
	}
	entriesB, err := w.readDir(b)
	if err != nil {
		return false, err
	}

	if len(entriesA) != len(entriesB) {
		return false, nil
	}
	for i := range entriesA {
		if entriesA[i].Name() != entriesB[i].Name() {
			return false, nil
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	results := make([]bool, len(entriesA))
	for i := range entriesA {
		if gctx.Err() != nil {
			break
		}
		pathA := filepath.Join(a, entriesA[i].Name())
		pathB := filepath.Join(b, entriesB[i].Name())

		pair := func() error {
			infoA, err := w.stat(pathA)
			if err != nil {
				return err
			}
			infoB, err := w.stat(pathB)
			if err != nil {
				return err
			}
			eq, err := w.equal(gctx, pathA, infoA, pathB, infoB)
			if err != nil {
				return err
			}
			results[i] = eq
			if !eq {
				return errMismatch
			}
			return nil
		}

		select {
		case w.sem <- struct{}{}:
			g.Go(func() error {
				defer func() { <-w.sem }()
				return pair()
			})
		default:
			if err := pair(); err != nil {
				cancel()
				if waitErr := g.Wait(); stderrors.Is(waitErr, errMismatch) {
					return false, nil
				}
				return mismatchOrError(err)
			}
		}
	}

	if err := g.Wait(); err != nil {
		return mismatchOrError(err)
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	for _, eq := range results {
		if !eq {
			return false, nil
		}
	}
	return true, nil
}

func mismatchOrError(err error) (bool, error) {
	if stderrors.Is(err, errMismatch) {
		return false, nil
	}
	return false, err
}

func (w *walk) equalFiles(ctx context.Context, a string, infoA fs.FileInfo, b string, infoB fs.FileInfo) (bool, error) {
	if infoA.Size() != infoB.Size() {
		return false, nil
	}

	fa, err := w.fs.Open(a)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "failed to open %s", a)
	}
	defer func() { _ = fa.Close() }()

	fb, err := w.fs.Open(b)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "failed to open %s", b)
	}
	defer func() { _ = fb.Close() }()

	bufA := make([]byte, w.chunk)
	bufB := make([]byte, w.chunk)

	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		nA, errA := readChunk(fa, bufA)
		if errA != nil {
			return false, errors.Wrapf(errA, errors.ErrFileAccess, "failed to read %s", a)
		}
		nB, errB := readChunk(fb, bufB)
		if errB != nil {
			return false, errors.Wrapf(errB, errors.ErrFileAccess, "failed to read %s", b)
		}

		if nA != nB {
			return false, nil
		}
		if nA == 0 {
			return true, nil
		}
		if xxh3.Hash(bufA[:nA]) != xxh3.Hash(bufB[:nB]) {
			return false, nil
		}
		if nA < w.chunk {
			return true, nil
		}
	}
}

// readChunk fills buf as far as the stream allows. A short or empty read
// at the end of the stream is not an error.
func readChunk(r io.Reader, buf []byte) (int, error) {
	n, err := io.ReadFull(r, buf)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return n, nil
	}
	return n, err
}
