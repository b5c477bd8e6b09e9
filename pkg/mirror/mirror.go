package mirror

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/robe/pkg/errors"
	"github.com/arthur-debert/robe/pkg/filesystem"
	"github.com/arthur-debert/robe/pkg/logging"
	"github.com/arthur-debert/robe/pkg/paths"
	"github.com/arthur-debert/robe/pkg/types"
	"github.com/rs/zerolog"
)

// Engine mirrors sources over destinations through a types.FS
type Engine struct {
	fs  types.FS
	log zerolog.Logger
}

// New creates an Engine. A nil fs selects the OS filesystem.
func New(fsys types.FS) *Engine {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	return &Engine{fs: fsys, log: logging.GetLogger("mirror")}
}

// Replace makes destination an exact copy of source using fsys
func Replace(fsys types.FS, source, destination string) error {
	return New(fsys).Replace(source, destination)
}

// Replace makes destination an exact copy of source. Entries present only
// in destination are gone afterwards.
func (e *Engine) Replace(source, destination string) error {
	source = filepath.Clean(source)
	destination = filepath.Clean(destination)
	defer logging.LogOperationStart(e.log, "replace")()

	info, err := e.fs.Lstat(source)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrFileNotFound, "%s does not exist", source)
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", source)
	}
	if info.Mode()&fs.ModeSymlink != 0 {
		return errors.Newf(errors.ErrSymlinkRejected, "%s is a symlink", source).
			WithDetail("path", source)
	}

	if err := e.fs.MkdirAll(filepath.Dir(destination), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(destination))
	}

	staging := paths.StagingPath(destination)
	backup := paths.BackupPath(destination)

	// Leftovers from an interrupted run
	if err := e.fs.RemoveAll(staging); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to clear %s", staging)
	}

	e.log.Debug().
		Str("source", source).
		Str("destination", destination).
		Bool("dir", info.IsDir()).
		Msg("Staging copy")

	if err := e.copyEntry(source, staging, info); err != nil {
		if cleanupErr := e.fs.RemoveAll(staging); cleanupErr != nil {
			e.log.Warn().Err(cleanupErr).Str("path", staging).Msg("Failed to remove staging path")
		}
		return err
	}

	return e.swap(staging, destination, backup)
}

func (e *Engine) swap(staging, destination, backup string) error {
	if err := e.fs.RemoveAll(backup); err != nil {
		_ = e.fs.RemoveAll(staging)
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to clear %s", backup)
	}

	hadDestination := false
	if _, err := e.fs.Lstat(destination); err == nil {
		hadDestination = true
		if err := e.fs.Rename(destination, backup); err != nil {
			_ = e.fs.RemoveAll(staging)
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to move %s aside", destination)
		}
	}

	if err := e.fs.Rename(staging, destination); err != nil {
		if hadDestination {
			if restoreErr := e.fs.Rename(backup, destination); restoreErr != nil {
				e.log.Error().Err(restoreErr).
					Str("backup", backup).
					Str("destination", destination).
					Msg("Failed to restore destination, previous content left at backup path")
			}
		}
		_ = e.fs.RemoveAll(staging)
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to move staged copy to %s", destination)
	}

	if hadDestination {
		if err := e.fs.RemoveAll(backup); err != nil {
			e.log.Warn().Err(err).Str("path", backup).Msg("Failed to remove backup")
		}
	}

	e.log.Debug().Str("destination", destination).Msg("Replaced")
	return nil
}

func (e *Engine) copyEntry(src, dst string, info fs.FileInfo) error {
	if info.IsDir() {
		return e.copyDir(src, dst, info)
	}
	return e.copyFile(src, dst, info)
}

func (e *Engine) copyDir(src, dst string, info fs.FileInfo) error {
	// Owner write is kept so the children can be created
	if err := e.fs.MkdirAll(dst, info.Mode().Perm()|0700); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", dst)
	}

	entries, err := e.fs.ReadDir(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", src)
	}

	for _, entry := range entries {
		childSrc := filepath.Join(src, entry.Name())
		childDst := filepath.Join(dst, entry.Name())

		// Stat follows nested symlinks so their content is copied
		childInfo, err := e.fs.Stat(childSrc)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", childSrc)
		}

		if err := e.copyEntry(childSrc, childDst, childInfo); err != nil {
			return err
		}
	}

	return nil
}

func (e *Engine) copyFile(src, dst string, info fs.FileInfo) (err error) {
	in, err := e.fs.Open(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to open %s", src)
	}
	defer func() { _ = in.Close() }()

	out, err := e.fs.Create(dst, info.Mode().Perm())
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate, "failed to create %s", dst)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = errors.Wrapf(closeErr, errors.ErrFileWrite, "failed to close %s", dst)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to copy %s to %s", src, dst)
	}

	return nil
}
