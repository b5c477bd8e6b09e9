package add

import (
	"io/fs"
	"os"

	"github.com/arthur-debert/robe/pkg/commands/internal"
	"github.com/arthur-debert/robe/pkg/errors"
	"github.com/arthur-debert/robe/pkg/logging"
	"github.com/arthur-debert/robe/pkg/mirror"
	"github.com/arthur-debert/robe/pkg/paths"
	"github.com/arthur-debert/robe/pkg/types"
)

// AddOptions holds options for the add command
type AddOptions struct {
	StorageRoot  string
	Target       string
	Profile      string
	RegisterPath string   // Registers (or with Force re-registers) the target at this path
	Force        bool     // Overwrite an existing profile or registration
	FileSystem   types.FS // Allow injecting a filesystem for testing
}

// Add saves the content of a target's real path as a profile. With a
// RegisterPath the target is registered first.
func Add(opts AddOptions) (*types.AddResult, error) {
	logger := logging.GetLogger("commands.add")
	logger.Debug().
		Str("target", opts.Target).
		Str("profile", opts.Profile).
		Str("register_path", opts.RegisterPath).
		Bool("force", opts.Force).
		Msg("Adding profile")

	if err := paths.ValidateTargetName(opts.Target); err != nil {
		return nil, err
	}
	if err := paths.ValidateProfileName(opts.Profile); err != nil {
		return nil, err
	}

	w, err := internal.Open(opts.StorageRoot, opts.FileSystem)
	if err != nil {
		return nil, err
	}

	ref := types.Ref{Target: opts.Target, Profile: opts.Profile}
	target, registered := w.Registry.Get(opts.Target)
	result := &types.AddResult{Ref: ref}

	var realPath string
	switch {
	case opts.RegisterPath == "":
		if !registered {
			return nil, errors.Newf(errors.ErrNotRegistered,
				"Target %s not registered. Use -r <file> to register.", opts.Target).
				WithDetail("target", opts.Target)
		}
		if target.HasProfile(opts.Profile) {
			if !opts.Force {
				return nil, errors.Newf(errors.ErrAlreadyExists,
					"Profile %s already exists. Use `-f` to update.", ref).
					WithDetail("target", opts.Target).
					WithDetail("profile", opts.Profile)
			}
			result.Overwrote = true
		}
		realPath = target.RealPath

	default:
		if registered && !opts.Force {
			return nil, errors.Newf(errors.ErrAlreadyExists,
				"Target %s already registered. Use -f to re-register.", opts.Target).
				WithDetail("target", opts.Target)
		}

		realPath, err = canonicalRegisterPath(w.FS, opts.RegisterPath, w.Registry.StorageRoot())
		if err != nil {
			return nil, err
		}

		if err := w.FS.MkdirAll(w.Registry.TargetDir(opts.Target), 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create storage for %s", opts.Target)
		}

		result.Registered = true
		result.Overwrote = registered && target.HasProfile(opts.Profile)
	}

	if err := mirror.Replace(w.FS, realPath, w.Registry.ProfilePath(opts.Target, opts.Profile)); err != nil {
		if result.Registered && !registered {
			if rmErr := w.FS.RemoveAll(w.Registry.TargetDir(opts.Target)); rmErr != nil {
				logger.Warn().Err(rmErr).Str("target", opts.Target).Msg("Failed to clean up storage of unregistered target")
			}
		}
		return nil, err
	}

	// Writing the metadata registers the target
	if err := w.SetLastActivated(opts.Target, realPath, opts.Profile); err != nil {
		return nil, err
	}
	if result.Registered {
		logger.Info().Str("target", opts.Target).Str("real_path", realPath).Msg("Target registered")
	}

	result.RealPath = realPath
	logger.Info().
		Str("profile", ref.String()).
		Bool("overwrote", result.Overwrote).
		Msg("Profile saved")
	return result, nil
}

// canonicalRegisterPath checks that path can be tracked and returns its
// canonical form
func canonicalRegisterPath(fsys types.FS, path, storageRoot string) (string, error) {
	path = paths.ExpandHome(path)

	info, err := fsys.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrapf(err, errors.ErrFileNotFound, "%s does not exist", path)
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", path)
	}
	if info.Mode()&fs.ModeSymlink != 0 {
		return "", errors.Newf(errors.ErrSymlinkRejected,
			"%s is a symlink. Register the path it points to instead.", path).
			WithDetail("path", path)
	}

	realPath, err := fsys.Realpath(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to resolve %s", path)
	}

	storageRoot = paths.ResolvePath(storageRoot)
	if paths.Contains(storageRoot, realPath) {
		return "", errors.Newf(errors.ErrInvalidInput, "%s is inside the storage directory", realPath)
	}
	if paths.Contains(realPath, storageRoot) {
		return "", errors.Newf(errors.ErrInvalidInput, "%s contains the storage directory %s", realPath, storageRoot)
	}

	return realPath, nil
}
