// Package metadata reads and writes the per-target meta.toml sidecar.
package metadata

import (
	"github.com/arthur-debert/robe/pkg/errors"
	"github.com/arthur-debert/robe/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
)

// Metadata is the persisted description of a target
type Metadata struct {
	// RealPath is the canonical path the target's profiles are mirrored to
	RealPath string `toml:"real_path"`

	// LastActivatedProfile names the profile last written to or read from
	// the real path. Empty when none is known.
	LastActivatedProfile string `toml:"last_activated_profile,omitempty"`
}

// Load reads the metadata file at path
func Load(fs types.FS, path string) (*Metadata, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path)
	}

	var meta Metadata
	if err := toml.Unmarshal(data, &meta); err != nil {
		return nil, errors.Wrapf(err, errors.ErrMetadataParse, "failed to parse %s", path)
	}

	if meta.RealPath == "" {
		return nil, errors.Newf(errors.ErrMetadataParse, "%s has no real_path", path)
	}

	return &meta, nil
}

// Store writes the metadata file at path, replacing any previous content
func Store(fs types.FS, path string, meta *Metadata) error {
	data, err := toml.Marshal(meta)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode metadata")
	}

	if err := fs.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}

	return nil
}
