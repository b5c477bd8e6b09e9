package use

import (
	"github.com/arthur-debert/robe/pkg/commands/internal"
	"github.com/arthur-debert/robe/pkg/errors"
	"github.com/arthur-debert/robe/pkg/logging"
	"github.com/arthur-debert/robe/pkg/mirror"
	"github.com/arthur-debert/robe/pkg/types"
)

// UseOptions holds options for the use command
type UseOptions struct {
	StorageRoot string
	Target      string
	Profile     string
	FileSystem  types.FS // Allow injecting a filesystem for testing
}

// Use mirrors a stored profile over the target's real path and records it
// as the last activated profile
func Use(opts UseOptions) (*types.UseResult, error) {
	logger := logging.GetLogger("commands.use")
	ref := types.Ref{Target: opts.Target, Profile: opts.Profile}
	logger.Debug().Str("profile", ref.String()).Msg("Activating profile")

	if !ref.HasProfile() {
		return nil, errors.Newf(errors.ErrUsage, "use needs a profile: %s/<profile>", opts.Target)
	}

	w, err := internal.Open(opts.StorageRoot, opts.FileSystem)
	if err != nil {
		return nil, err
	}

	target, source, err := w.Resolve(ref)
	if err != nil {
		return nil, err
	}

	if err := mirror.Replace(w.FS, source, target.RealPath); err != nil {
		return nil, err
	}

	if err := w.SetLastActivated(target.Name, target.RealPath, opts.Profile); err != nil {
		return nil, err
	}

	logger.Info().Str("profile", ref.String()).Str("real_path", target.RealPath).Msg("Profile activated")
	return &types.UseResult{Ref: ref, RealPath: target.RealPath}, nil
}
