// pkg/metadata/metadata_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: In-memory filesystem
// PURPOSE: Test meta.toml reading and writing

package metadata

import (
	"testing"

	"github.com/arthur-debert/robe/pkg/errors"
	"github.com/arthur-debert/robe/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreAndLoad(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll("/store/tmux", 0755))

	meta := &Metadata{RealPath: "/home/me/.tmux.conf", LastActivatedProfile: "work"}
	require.NoError(t, Store(fs, "/store/tmux/meta.toml", meta))

	loaded, err := Load(fs, "/store/tmux/meta.toml")
	require.NoError(t, err)
	assert.Equal(t, meta, loaded)
}

func TestStore_OmitsEmptyLastActivated(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll("/store/tmux", 0755))

	require.NoError(t, Store(fs, "/store/tmux/meta.toml", &Metadata{RealPath: "/x"}))

	data, err := fs.ReadFile("/store/tmux/meta.toml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "real_path")
	assert.NotContains(t, string(data), "last_activated_profile")
}

func TestLoad_OnlyRealPath(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll("/store/nvim", 0755))
	require.NoError(t, fs.WriteFile("/store/nvim/meta.toml", []byte("real_path = \"/home/me/.config/nvim\"\n"), 0644))

	meta, err := Load(fs, "/store/nvim/meta.toml")
	require.NoError(t, err)
	assert.Equal(t, "/home/me/.config/nvim", meta.RealPath)
	assert.Empty(t, meta.LastActivatedProfile)
}

func TestLoad_Errors(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll("/store/bad", 0755))

	tests := []struct {
		name    string
		content string
		code    errors.ErrorCode
	}{
		{name: "malformed", content: "real_path = ", code: errors.ErrMetadataParse},
		{name: "missing real_path", content: "other = 1\n", code: errors.ErrMetadataParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, fs.WriteFile("/store/bad/meta.toml", []byte(tt.content), 0644))
			_, err := Load(fs, "/store/bad/meta.toml")
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code))
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(fs, "/store/none/meta.toml")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
	})
}
