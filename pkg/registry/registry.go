package registry

import (
	"os"
	"sort"

	"github.com/arthur-debert/robe/pkg/errors"
	"github.com/arthur-debert/robe/pkg/logging"
	"github.com/arthur-debert/robe/pkg/metadata"
	"github.com/arthur-debert/robe/pkg/paths"
	"github.com/arthur-debert/robe/pkg/types"
)

// Target is a registered real path and its stored profiles
type Target struct {
	Name                 string
	RealPath             string
	Profiles             []string
	LastActivatedProfile string
}

// HasProfile reports whether the target has a stored profile named name
func (t *Target) HasProfile(name string) bool {
	i := sort.SearchStrings(t.Profiles, name)
	return i < len(t.Profiles) && t.Profiles[i] == name
}

// AssertProfile fails with ErrProfileNotFound unless the profile exists
func (t *Target) AssertProfile(name string) error {
	if !t.HasProfile(name) {
		return errors.Newf(errors.ErrProfileNotFound, "Profile %s/%s not found.", t.Name, name).
			WithDetail("target", t.Name).
			WithDetail("profile", name)
	}
	return nil
}

// Registry maps target names to targets
type Registry struct {
	layout  paths.Paths
	targets map[string]*Target
}

// Build scans storageRoot and returns the registry it describes. A missing
// storage root yields an empty registry.
func Build(fs types.FS, storageRoot string) (*Registry, error) {
	log := logging.GetLogger("registry")

	layout, err := paths.New(storageRoot)
	if err != nil {
		return nil, err
	}

	r := &Registry{layout: layout, targets: make(map[string]*Target)}

	entries, err := fs.ReadDir(layout.StorageRoot())
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug().Str("storage", layout.StorageRoot()).Msg("Storage root does not exist yet")
			return r, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read storage root %s", layout.StorageRoot())
	}

	for _, entry := range entries {
		if !entry.IsDir() || paths.IsReservedEntry(entry.Name()) {
			continue
		}
		name := entry.Name()

		meta, err := metadata.Load(fs, layout.MetaPath(name))
		if err != nil {
			log.Debug().Err(err).Str("target", name).Msg("Skipping directory without valid metadata")
			continue
		}

		profiles, err := listProfiles(fs, layout.TargetDir(name))
		if err != nil {
			log.Debug().Err(err).Str("target", name).Msg("Skipping unreadable target directory")
			continue
		}

		r.targets[name] = &Target{
			Name:                 name,
			RealPath:             meta.RealPath,
			Profiles:             profiles,
			LastActivatedProfile: meta.LastActivatedProfile,
		}
	}

	log.Debug().Int("targets", len(r.targets)).Msg("Registry built")
	return r, nil
}

func listProfiles(fs types.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	profiles := make([]string, 0, len(entries))
	for _, entry := range entries {
		if paths.IsReservedEntry(entry.Name()) {
			continue
		}
		profiles = append(profiles, entry.Name())
	}
	sort.Strings(profiles)
	return profiles, nil
}

// Get returns the named target, if registered
func (r *Registry) Get(name string) (*Target, bool) {
	t, ok := r.targets[name]
	return t, ok
}

// Target returns the named target or ErrTargetNotFound
func (r *Registry) Target(name string) (*Target, error) {
	t, ok := r.targets[name]
	if !ok {
		return nil, errors.Newf(errors.ErrTargetNotFound, "Target %s not found.", name).
			WithDetail("target", name)
	}
	return t, nil
}

// Names returns all target names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.targets))
	for name := range r.targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered targets
func (r *Registry) Len() int {
	return len(r.targets)
}

// StorageRoot returns the directory the registry was built from
func (r *Registry) StorageRoot() string {
	return r.layout.StorageRoot()
}

// TargetDir returns where a target's files live
func (r *Registry) TargetDir(name string) string {
	return r.layout.TargetDir(name)
}

// MetaPath returns the metadata file of a target
func (r *Registry) MetaPath(name string) string {
	return r.layout.MetaPath(name)
}

// ProfilePath returns where a profile is stored
func (r *Registry) ProfilePath(target, profile string) string {
	return r.layout.ProfilePath(target, profile)
}
