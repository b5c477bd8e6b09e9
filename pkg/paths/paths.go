package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/robe/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigFile overrides the settings file location
	EnvConfigFile = "ROBE_CONFIG_FILE"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Storage layout. These names define the wardrobe structure and are NOT
// user-configurable.
const (
	// AppDirName is the directory name used under the XDG base dirs
	AppDirName = "robe"

	// ConfigFileName is the name of the settings file
	ConfigFileName = "config.toml"

	// MetaFileName is the per-target metadata file
	MetaFileName = "meta.toml"

	// StagingSuffix marks the sibling path the replace engine copies into
	StagingSuffix = ".robe-staging"

	// BackupSuffix marks the sibling path holding the replaced content
	// while the staged copy is swapped in
	BackupSuffix = ".robe-backup"
)

// Paths knows where robe keeps its data
type Paths interface {
	StorageRoot() string
	TargetDir(target string) string
	MetaPath(target string) string
	ProfilePath(target, profile string) string
}

type paths struct {
	storageRoot string
}

// New creates a Paths rooted at storageRoot. An empty root selects the
// default location under the XDG data directory.
func New(storageRoot string) (Paths, error) {
	root := storageRoot
	if root == "" {
		root = DefaultStorageRoot()
	}

	abs, err := filepath.Abs(ExpandHome(root))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for storage root %s", root)
	}

	return &paths{storageRoot: filepath.Clean(abs)}, nil
}

// DefaultStorageRoot returns $XDG_DATA_HOME/robe
func DefaultStorageRoot() string {
	return filepath.Join(xdg.DataHome, AppDirName)
}

// ConfigFilePath returns the settings file location, honouring
// ROBE_CONFIG_FILE before falling back to $XDG_CONFIG_HOME/robe/config.toml
func ConfigFilePath() string {
	if override := os.Getenv(EnvConfigFile); override != "" {
		return ExpandHome(override)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}

// StorageRoot returns the wardrobe directory
func (p *paths) StorageRoot() string {
	return p.storageRoot
}

// TargetDir returns the directory holding a target's metadata and profiles
func (p *paths) TargetDir(target string) string {
	return filepath.Join(p.storageRoot, target)
}

// MetaPath returns the path of a target's meta.toml
func (p *paths) MetaPath(target string) string {
	return filepath.Join(p.TargetDir(target), MetaFileName)
}

// ProfilePath returns where a profile is stored
func (p *paths) ProfilePath(target, profile string) string {
	return filepath.Join(p.TargetDir(target), profile)
}

// StagingPath returns the hidden sibling a replacement is staged into
func StagingPath(destination string) string {
	return siblingPath(destination, StagingSuffix)
}

// BackupPath returns the hidden sibling that holds replaced content during a swap
func BackupPath(destination string) string {
	return siblingPath(destination, BackupSuffix)
}

func siblingPath(destination, suffix string) string {
	clean := filepath.Clean(destination)
	return filepath.Join(filepath.Dir(clean), "."+filepath.Base(clean)+suffix)
}

// IsReservedEntry reports whether a directory entry inside a target
// directory is not a profile: the metadata file or a hidden entry such as
// a leftover staging path.
func IsReservedEntry(name string) bool {
	return name == MetaFileName || strings.HasPrefix(name, ".")
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}

// ResolvePath resolves symlinks in path. Trailing elements that do not
// exist yet are appended unresolved to the deepest existing ancestor.
func ResolvePath(path string) string {
	clean := filepath.Clean(path)
	var missing []string
	for dir := clean; ; {
		if resolved, err := filepath.EvalSymlinks(dir); err == nil {
			return filepath.Join(append([]string{resolved}, missing...)...)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return clean
		}
		missing = append([]string{filepath.Base(dir)}, missing...)
		dir = parent
	}
}

// Contains reports whether path is dir or lies below it. Both must be clean
// absolute paths.
func Contains(dir, path string) bool {
	if dir == path {
		return true
	}
	return strings.HasPrefix(path, strings.TrimSuffix(dir, string(filepath.Separator))+string(filepath.Separator))
}
