package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/robe/pkg/errors"
	"github.com/arthur-debert/robe/pkg/logging"
	"github.com/arthur-debert/robe/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix is the prefix of environment variables that override settings
const EnvPrefix = "ROBE_"

// Setting keys
const (
	KeyDataLocation   = "data_location"
	KeyCompareWorkers = "compare_workers"
)

// Settings holds the user-tunable values
type Settings struct {
	// DataLocation is the storage root. Empty selects the XDG default.
	DataLocation string `koanf:"data_location"`

	// CompareWorkers bounds the equality checker fan-out. 0 means GOMAXPROCS.
	CompareWorkers int `koanf:"compare_workers"`
}

// LoadOptions controls where settings are read from
type LoadOptions struct {
	// ConfigFile is the settings file. Empty selects paths.ConfigFilePath().
	ConfigFile string

	// Overrides are applied last, keyed like the settings file
	Overrides map[string]interface{}
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, fmt.Errorf("not implemented")
}

// Load builds the settings from defaults, the settings file, the
// environment and the given overrides
func Load(opts LoadOptions) (*Settings, error) {
	log := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load default settings")
	}

	// 2. Settings file, if any
	configFile := opts.ConfigFile
	if configFile == "" {
		configFile = paths.ConfigFilePath()
	}
	if _, err := os.Stat(configFile); err == nil {
		fileK := koanf.New(".")
		if err := fileK.Load(file.Provider(configFile), toml.Parser()); err != nil {
			log.Warn().Err(err).Str("path", configFile).Msg("Ignoring malformed settings file")
		} else if err := k.Merge(fileK); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to merge settings from %s", configFile)
		}
	} else {
		log.Debug().Str("path", configFile).Msg("No settings file")
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment settings")
	}

	// 4. Explicit overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load setting overrides")
		}
	}

	var settings Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &settings,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &settings, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode settings")
	}

	if settings.CompareWorkers < 0 {
		log.Warn().Int("compare_workers", settings.CompareWorkers).Msg("Negative worker count, using default")
		settings.CompareWorkers = 0
	}
	settings.DataLocation = paths.ExpandHome(settings.DataLocation)

	log.Debug().
		Str("data_location", settings.DataLocation).
		Int("compare_workers", settings.CompareWorkers).
		Msg("Settings loaded")

	return &settings, nil
}

// Default returns the built-in settings
func Default() *Settings {
	return &Settings{}
}
