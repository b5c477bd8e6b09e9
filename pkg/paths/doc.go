// Package paths provides centralized path handling for robe.
//
// It resolves the XDG locations robe uses and knows the storage layout
// inside the wardrobe:
//
//	<storage>/<target>/meta.toml        target metadata
//	<storage>/<target>/<profile>        stored profile (file or directory)
//
// # Environment Variables
//
//   - ROBE_CONFIG_FILE: Override the settings file location
//     (default: $XDG_CONFIG_HOME/robe/config.toml)
//   - XDG_DATA_HOME: Parent of the default storage root ($XDG_DATA_HOME/robe)
//
// Names of targets and profiles are validated here as well, since a name
// ends up as a directory entry under the storage root.
package paths
