// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Orchestrate test environments with a storage root and home dir

package testutil

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/robe/pkg/filesystem"
	"github.com/arthur-debert/robe/pkg/metadata"
	"github.com/arthur-debert/robe/pkg/types"
	"github.com/stretchr/testify/require"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides a wardrobe and a home directory to act on
type TestEnvironment struct {
	StorageRoot string
	HomeDir     string
	FS          types.FS
	Type        EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	switch envType {
	case EnvMemoryOnly:
		env.FS = filesystem.NewMemory()
		env.StorageRoot = "/virtual/data/robe"
		env.HomeDir = "/virtual/home"
	case EnvIsolated:
		// Resolve the temp dir so paths match what Realpath reports on
		// systems where the temp dir sits behind a symlink.
		tempDir, err := filepath.EvalSymlinks(t.TempDir())
		require.NoError(t, err)
		env.FS = filesystem.NewOS()
		env.StorageRoot = filepath.Join(tempDir, "data", "robe")
		env.HomeDir = filepath.Join(tempDir, "home")
	}

	require.NoError(t, env.FS.MkdirAll(env.StorageRoot, 0755))
	require.NoError(t, env.FS.MkdirAll(env.HomeDir, 0755))

	return env
}

// Home returns a path inside the home directory
func (env *TestEnvironment) Home(elem ...string) string {
	return filepath.Join(append([]string{env.HomeDir}, elem...)...)
}

// Storage returns a path inside the storage root
func (env *TestEnvironment) Storage(elem ...string) string {
	return filepath.Join(append([]string{env.StorageRoot}, elem...)...)
}

// WriteFile writes content to path, creating parent directories
func (env *TestEnvironment) WriteFile(path, content string) {
	env.t.Helper()
	WriteFile(env.t, env.FS, path, content)
}

// WriteTree writes a tree of files below root
func (env *TestEnvironment) WriteTree(root string, tree Tree) {
	env.t.Helper()
	WriteTree(env.t, env.FS, root, tree)
}

// ReadFile returns the content of path
func (env *TestEnvironment) ReadFile(path string) string {
	env.t.Helper()
	data, err := env.FS.ReadFile(path)
	require.NoError(env.t, err)
	return string(data)
}

// Exists reports whether path exists (without following a final symlink)
func (env *TestEnvironment) Exists(path string) bool {
	_, err := env.FS.Lstat(path)
	return err == nil
}

// RegisterTarget creates a target directory with metadata pointing at
// realPath and stores each profile as a single file
func (env *TestEnvironment) RegisterTarget(name, realPath, lastActivated string, profiles map[string]string) {
	env.t.Helper()

	require.NoError(env.t, env.FS.MkdirAll(env.Storage(name), 0755))
	require.NoError(env.t, metadata.Store(env.FS, env.Storage(name, "meta.toml"), &metadata.Metadata{
		RealPath:             realPath,
		LastActivatedProfile: lastActivated,
	}))

	names := make([]string, 0, len(profiles))
	for profile := range profiles {
		names = append(names, profile)
	}
	sort.Strings(names)
	for _, profile := range names {
		env.WriteFile(env.Storage(name, profile), profiles[profile])
	}
}

// LoadMetadata reads a target's metadata
func (env *TestEnvironment) LoadMetadata(name string) *metadata.Metadata {
	env.t.Helper()
	meta, err := metadata.Load(env.FS, env.Storage(name, "meta.toml"))
	require.NoError(env.t, err)
	return meta
}
