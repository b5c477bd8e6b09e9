// Package registry builds the in-memory view of the wardrobe.
//
// The registry is derived from the storage directory on every invocation
// and never persisted. Each immediate subdirectory holding a readable
// meta.toml is a target; every other entry in it (except dot-entries) is a
// profile.
package registry
