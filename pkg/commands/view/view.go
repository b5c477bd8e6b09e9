package view

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/robe/pkg/commands/internal"
	"github.com/arthur-debert/robe/pkg/errors"
	"github.com/arthur-debert/robe/pkg/logging"
	"github.com/arthur-debert/robe/pkg/types"
)

// ViewOptions holds options for the view command
type ViewOptions struct {
	StorageRoot string
	Target      string
	Profile     string   // Empty views the live real path
	Raw         bool     // Print content verbatim, without header or frame
	FileSystem  types.FS // Allow injecting a filesystem for testing
}

// View reads the file content, or the directory listing, of a target's real
// path or of one of its stored profiles
func View(opts ViewOptions) (*types.ViewResult, error) {
	logger := logging.GetLogger("commands.view")
	ref := types.Ref{Target: opts.Target, Profile: opts.Profile}

	w, err := internal.Open(opts.StorageRoot, opts.FileSystem)
	if err != nil {
		return nil, err
	}

	_, path, err := w.Resolve(ref)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("ref", ref.String()).Str("path", path).Msg("Viewing")

	info, err := w.FS.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrFileNotFound, "%s does not exist", path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", path)
	}

	result := &types.ViewResult{Ref: ref, Raw: opts.Raw, Path: path}

	if info.IsDir() {
		result.Kind = types.KindDir
		result.Entries, err = listTree(w.FS, path)
		if err != nil {
			return nil, err
		}
		return result, nil
	}

	result.Kind = types.KindFile
	result.Content, err = w.FS.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path)
	}
	return result, nil
}

// listTree returns every entry below root as a slash-separated relative
// path, sorted, with directories suffixed by "/"
func listTree(fsys types.FS, root string) ([]string, error) {
	var entries []string
	if err := walk(fsys, root, "", &entries); err != nil {
		return nil, err
	}
	sort.Strings(entries)
	return entries, nil
}

func walk(fsys types.FS, root, rel string, out *[]string) error {
	dir := filepath.Join(root, rel)
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", dir)
	}

	for _, entry := range entries {
		childRel := filepath.Join(rel, entry.Name())
		if entry.IsDir() {
			*out = append(*out, filepath.ToSlash(childRel)+"/")
			if err := walk(fsys, root, childRel, out); err != nil {
				return err
			}
			continue
		}
		*out = append(*out, filepath.ToSlash(childRel))
	}
	return nil
}
