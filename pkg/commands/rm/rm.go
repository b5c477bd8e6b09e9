package rm

import (
	"github.com/arthur-debert/robe/pkg/commands/internal"
	"github.com/arthur-debert/robe/pkg/errors"
	"github.com/arthur-debert/robe/pkg/logging"
	"github.com/arthur-debert/robe/pkg/types"
)

// Confirmer asks whether a whole target may be deleted
type Confirmer func(ref types.Ref) (bool, error)

// RemoveOptions holds options for the rm command
type RemoveOptions struct {
	StorageRoot string
	Target      string
	Profile     string    // Empty removes the whole target
	Confirm     Confirmer // Consulted before removing a whole target; nil skips it
	FileSystem  types.FS  // Allow injecting a filesystem for testing
}

// Remove deletes a stored profile, or the target with all its profiles when
// no profile is named. The real path is never touched.
func Remove(opts RemoveOptions) (*types.RemoveResult, error) {
	logger := logging.GetLogger("commands.rm")
	ref := types.Ref{Target: opts.Target, Profile: opts.Profile}

	w, err := internal.Open(opts.StorageRoot, opts.FileSystem)
	if err != nil {
		return nil, err
	}

	target, path, err := w.Resolve(ref)
	if err != nil {
		return nil, err
	}

	if !ref.HasProfile() {
		path = w.Registry.TargetDir(target.Name)

		if opts.Confirm != nil {
			ok, err := opts.Confirm(ref)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, errors.Newf(errors.ErrCancelled, "Removal of %s cancelled.", target.Name)
			}
		}
	}

	logger.Debug().Str("ref", ref.String()).Str("path", path).Msg("Removing")
	if err := w.FS.RemoveAll(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to remove %s", path)
	}

	if ref.HasProfile() && target.LastActivatedProfile == ref.Profile {
		if err := w.SetLastActivated(target.Name, target.RealPath, ""); err != nil {
			return nil, err
		}
	}

	logger.Info().Str("ref", ref.String()).Msg("Removed")
	return &types.RemoveResult{Ref: ref, Removed: path}, nil
}
