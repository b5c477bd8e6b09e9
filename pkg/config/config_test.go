// pkg/config/config_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Temporary settings files, environment
// PURPOSE: Test settings layering and fallback behaviour

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ROBE_DATA_LOCATION", "")
	t.Setenv("ROBE_COMPARE_WORKERS", "")
	os.Unsetenv("ROBE_DATA_LOCATION")
	os.Unsetenv("ROBE_COMPARE_WORKERS")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	settings, err := Load(LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "missing.toml")})
	require.NoError(t, err)

	assert.Equal(t, "", settings.DataLocation)
	assert.Equal(t, 0, settings.CompareWorkers)
	assert.Equal(t, Default(), settings)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeSettings(t, `
data_location = "/srv/wardrobe"
compare_workers = 3
`)

	settings, err := Load(LoadOptions{ConfigFile: path})
	require.NoError(t, err)

	assert.Equal(t, "/srv/wardrobe", settings.DataLocation)
	assert.Equal(t, 3, settings.CompareWorkers)
}

func TestLoad_MalformedFileFallsBack(t *testing.T) {
	clearEnv(t)
	path := writeSettings(t, "data_location = [unterminated")

	settings, err := Load(LoadOptions{ConfigFile: path})
	require.NoError(t, err)

	assert.Equal(t, "", settings.DataLocation)
	assert.Equal(t, 0, settings.CompareWorkers)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeSettings(t, `data_location = "/from/file"`)
	t.Setenv("ROBE_DATA_LOCATION", "/from/env")
	t.Setenv("ROBE_COMPARE_WORKERS", "5")

	settings, err := Load(LoadOptions{ConfigFile: path})
	require.NoError(t, err)

	assert.Equal(t, "/from/env", settings.DataLocation)
	assert.Equal(t, 5, settings.CompareWorkers)
}

func TestLoad_OverridesWin(t *testing.T) {
	clearEnv(t)
	path := writeSettings(t, `data_location = "/from/file"`)
	t.Setenv("ROBE_DATA_LOCATION", "/from/env")

	settings, err := Load(LoadOptions{
		ConfigFile: path,
		Overrides:  map[string]interface{}{KeyDataLocation: "/from/flag"},
	})
	require.NoError(t, err)

	assert.Equal(t, "/from/flag", settings.DataLocation)
}

func TestLoad_NegativeWorkers(t *testing.T) {
	clearEnv(t)
	path := writeSettings(t, `compare_workers = -2`)

	settings, err := Load(LoadOptions{ConfigFile: path})
	require.NoError(t, err)

	assert.Equal(t, 0, settings.CompareWorkers)
}

func TestLoad_ExpandsHome(t *testing.T) {
	clearEnv(t)
	path := writeSettings(t, `data_location = "~/wardrobe"`)
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	settings, err := Load(LoadOptions{ConfigFile: path})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "wardrobe"), settings.DataLocation)
}
