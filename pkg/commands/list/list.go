package list

import (
	"github.com/arthur-debert/robe/pkg/commands/internal"
	"github.com/arthur-debert/robe/pkg/logging"
	"github.com/arthur-debert/robe/pkg/types"
)

// ListOptions defines the options for the List command.
type ListOptions struct {
	// StorageRoot is the wardrobe directory.
	StorageRoot string

	// Target, when set, lists that target's profiles instead of the targets.
	Target string

	// FileSystem allows injecting a filesystem for testing.
	FileSystem types.FS
}

// List returns the registered targets, or the profiles of one target.
func List(opts ListOptions) (*types.ListResult, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().Str("target", opts.Target).Msg("Listing")

	w, err := internal.Open(opts.StorageRoot, opts.FileSystem)
	if err != nil {
		return nil, err
	}

	result := &types.ListResult{Target: opts.Target}

	if opts.Target == "" {
		names := w.Registry.Names()
		result.Targets = make([]types.TargetInfo, len(names))
		for i, name := range names {
			target, _ := w.Registry.Get(name)
			result.Targets[i] = types.TargetInfo{
				Name:     target.Name,
				RealPath: target.RealPath,
				Profiles: len(target.Profiles),
			}
		}
		log.Info().Str("command", "List").Int("targetCount", len(result.Targets)).Msg("Command finished")
		return result, nil
	}

	target, err := w.Registry.Target(opts.Target)
	if err != nil {
		return nil, err
	}

	result.Profiles = make([]types.ProfileInfo, len(target.Profiles))
	for i, profile := range target.Profiles {
		result.Profiles[i] = types.ProfileInfo{
			Name:   profile,
			Active: profile == target.LastActivatedProfile,
		}
	}

	log.Info().Str("command", "List").Int("profileCount", len(result.Profiles)).Msg("Command finished")
	return result, nil
}
