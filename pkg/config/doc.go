// Package config loads robe's user settings.
//
// Settings are layered with koanf, later layers winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the TOML settings file (paths.ConfigFilePath)
//  3. ROBE_ environment variables (ROBE_DATA_LOCATION, ROBE_COMPARE_WORKERS)
//  4. explicit overrides from the command line
//
// A missing settings file is normal. A malformed one is reported as a
// warning and skipped so that robe keeps working with the remaining layers.
package config
