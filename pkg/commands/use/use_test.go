// pkg/commands/use/use_test.go
// TEST TYPE: Business Logic Integration
// DEPENDENCIES: Memory FS, real temp dirs for directory targets
// PURPOSE: Test activating stored profiles

package use_test

import (
	"testing"

	"github.com/arthur-debert/robe/pkg/commands/add"
	"github.com/arthur-debert/robe/pkg/commands/use"
	"github.com/arthur-debert/robe/pkg/errors"
	"github.com/arthur-debert/robe/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUse_RestoresProfile(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteFile(env.Home(".tmux.conf"), "original\n")

	_, err := add.Add(add.AddOptions{
		StorageRoot:  env.StorageRoot,
		Target:       "tmux",
		Profile:      "work",
		RegisterPath: env.Home(".tmux.conf"),
		FileSystem:   env.FS,
	})
	require.NoError(t, err)

	env.WriteFile(env.Home(".tmux.conf"), "edited\n")

	result, err := use.Use(use.UseOptions{
		StorageRoot: env.StorageRoot,
		Target:      "tmux",
		Profile:     "work",
		FileSystem:  env.FS,
	})
	require.NoError(t, err)

	assert.Equal(t, env.Home(".tmux.conf"), result.RealPath)
	assert.Equal(t, "original\n", env.ReadFile(env.Home(".tmux.conf")))
	assert.Equal(t, "work", env.LoadMetadata("tmux").LastActivatedProfile)
}

func TestUse_SwitchesProfile(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.RegisterTarget("tmux", env.Home(".tmux.conf"), "work", map[string]string{
		"work": "work settings\n",
		"home": "home settings\n",
	})
	env.WriteFile(env.Home(".tmux.conf"), "work settings\n")

	_, err := use.Use(use.UseOptions{
		StorageRoot: env.StorageRoot,
		Target:      "tmux",
		Profile:     "home",
		FileSystem:  env.FS,
	})
	require.NoError(t, err)

	assert.Equal(t, "home settings\n", env.ReadFile(env.Home(".tmux.conf")))
	assert.Equal(t, "home", env.LoadMetadata("tmux").LastActivatedProfile)
}

func TestUse_Errors(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.RegisterTarget("tmux", env.Home(".tmux.conf"), "", map[string]string{"work": "w"})

	tests := []struct {
		name    string
		target  string
		profile string
		code    errors.ErrorCode
	}{
		{name: "unknown target", target: "zsh", profile: "work", code: errors.ErrTargetNotFound},
		{name: "unknown profile", target: "tmux", profile: "home", code: errors.ErrProfileNotFound},
		{name: "no profile", target: "tmux", code: errors.ErrUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := use.Use(use.UseOptions{
				StorageRoot: env.StorageRoot,
				Target:      tt.target,
				Profile:     tt.profile,
				FileSystem:  env.FS,
			})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code))
		})
	}
	assert.False(t, env.Exists(env.Home(".tmux.conf")))
}

func TestUse_DirectoryMirror(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WriteTree(env.Home(".config", "nvim"), testutil.Tree{
		"init.lua":        "-- minimal\n",
		"lua/plugins.lua": "return {}\n",
	})

	_, err := add.Add(add.AddOptions{
		StorageRoot:  env.StorageRoot,
		Target:       "nvim",
		Profile:      "minimal",
		RegisterPath: env.Home(".config", "nvim"),
		FileSystem:   env.FS,
	})
	require.NoError(t, err)

	env.WriteFile(env.Home(".config", "nvim", "extra.lua"), "-- added later\n")
	env.WriteFile(env.Home(".config", "nvim", "init.lua"), "-- changed\n")

	_, err = use.Use(use.UseOptions{
		StorageRoot: env.StorageRoot,
		Target:      "nvim",
		Profile:     "minimal",
		FileSystem:  env.FS,
	})
	require.NoError(t, err)

	assert.Equal(t, testutil.Tree{
		"init.lua":        "-- minimal\n",
		"lua/plugins.lua": "return {}\n",
	}, testutil.ReadTree(t, env.FS, env.Home(".config", "nvim")))
}
