package status

import (
	"context"
	"os"

	"github.com/arthur-debert/robe/pkg/commands/internal"
	"github.com/arthur-debert/robe/pkg/compare"
	"github.com/arthur-debert/robe/pkg/errors"
	"github.com/arthur-debert/robe/pkg/logging"
	"github.com/arthur-debert/robe/pkg/registry"
	"github.com/arthur-debert/robe/pkg/types"
)

// StatusOptions holds options for the status command
type StatusOptions struct {
	StorageRoot string
	Target      string   // Empty reports every target
	Workers     int      // Equality checker worker budget; 0 means GOMAXPROCS
	FileSystem  types.FS // Allow injecting a filesystem for testing
}

// Status reports, for each target, whether its real path still matches the
// last activated profile
func Status(ctx context.Context, opts StatusOptions) (*types.StatusResult, error) {
	logger := logging.GetLogger("commands.status")
	defer logging.LogOperationStart(logger, "status")()

	w, err := internal.Open(opts.StorageRoot, opts.FileSystem)
	if err != nil {
		return nil, err
	}

	names := w.Registry.Names()
	if opts.Target != "" {
		if _, err := w.Registry.Target(opts.Target); err != nil {
			return nil, err
		}
		names = []string{opts.Target}
	}

	checker := &compare.Checker{FS: w.FS, Workers: opts.Workers}
	result := &types.StatusResult{Targets: make([]types.TargetStatus, 0, len(names))}

	for _, name := range names {
		target, _ := w.Registry.Get(name)
		state, err := targetState(ctx, w, checker, target)
		if err != nil {
			return nil, err
		}

		logger.Debug().Str("target", name).Str("state", string(state)).Msg("Target checked")
		result.Targets = append(result.Targets, types.TargetStatus{
			Name:                 target.Name,
			RealPath:             target.RealPath,
			LastActivatedProfile: target.LastActivatedProfile,
			State:                state,
		})
	}

	return result, nil
}

func targetState(ctx context.Context, w *internal.Wardrobe, checker *compare.Checker, target *registry.Target) (types.TargetState, error) {
	profile := target.LastActivatedProfile
	if profile == "" || !target.HasProfile(profile) {
		return types.StateNone, nil
	}

	if _, err := w.FS.Stat(target.RealPath); err != nil {
		if os.IsNotExist(err) {
			return types.StateMissing, nil
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", target.RealPath)
	}

	equal, err := checker.Equal(ctx, target.RealPath, w.Registry.ProfilePath(target.Name, profile))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrComparisonFailed, "failed to compare %s with %s/%s", target.RealPath, target.Name, profile)
	}
	if !equal {
		return types.StateModified, nil
	}
	return types.StateClean, nil
}
