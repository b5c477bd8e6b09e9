// Package commands provides high-level command implementations for robe.
//
// This package contains the command orchestration layer that coordinates
// between the CLI interface and the wardrobe (registry, metadata, mirror,
// compare).
//
// Each command is implemented in its own subdirectory:
//   - add/      - Add saves a real path as a profile, registering the target
//   - use/      - Use activates a stored profile
//   - view/     - View reads a real path or a stored profile
//   - edit/     - Edit opens a real path or a stored profile in $EDITOR
//   - rm/       - Remove deletes a profile or a whole target
//   - list/     - List shows targets or a target's profiles
//   - status/   - Status compares real paths with their active profiles
//   - internal/ - Shared setup and path resolution
//
// Every command takes an XxxOptions struct whose FileSystem field may be
// left nil to act on the real filesystem.
package commands
