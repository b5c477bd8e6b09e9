package internal

import (
	"github.com/arthur-debert/robe/pkg/errors"
	"github.com/arthur-debert/robe/pkg/filesystem"
	"github.com/arthur-debert/robe/pkg/metadata"
	"github.com/arthur-debert/robe/pkg/registry"
	"github.com/arthur-debert/robe/pkg/types"
)

// Wardrobe is the filesystem and registry a command acts on
type Wardrobe struct {
	FS       types.FS
	Registry *registry.Registry
}

// Open builds the registry for storageRoot. A nil fs selects the OS
// filesystem.
func Open(storageRoot string, fs types.FS) (*Wardrobe, error) {
	if fs == nil {
		fs = filesystem.NewOS()
	}

	reg, err := registry.Build(fs, storageRoot)
	if err != nil {
		return nil, err
	}

	return &Wardrobe{FS: fs, Registry: reg}, nil
}

// Resolve returns the path a reference points at: the stored profile when
// one is named, otherwise the target's real path
func (w *Wardrobe) Resolve(ref types.Ref) (*registry.Target, string, error) {
	target, err := w.Registry.Target(ref.Target)
	if err != nil {
		return nil, "", err
	}

	if !ref.HasProfile() {
		return target, target.RealPath, nil
	}

	if err := target.AssertProfile(ref.Profile); err != nil {
		return nil, "", err
	}
	return target, w.Registry.ProfilePath(ref.Target, ref.Profile), nil
}

// SetLastActivated rewrites a target's metadata with the given profile as
// the last activated one. An empty profile clears it.
func (w *Wardrobe) SetLastActivated(name, realPath, profile string) error {
	meta := &metadata.Metadata{RealPath: realPath, LastActivatedProfile: profile}
	if err := metadata.Store(w.FS, w.Registry.MetaPath(name), meta); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to update metadata of %s", name)
	}
	return nil
}
