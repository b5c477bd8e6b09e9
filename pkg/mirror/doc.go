// Package mirror replaces a destination path with an exact copy of a
// source file or directory tree.
//
// The copy is built in a hidden staging sibling of the destination
// (.<base>.robe-staging) and swapped into place with renames, so a failed
// copy never leaves a half-written destination behind:
//
//  1. copy source into the staging path
//  2. rename the existing destination to .<base>.robe-backup
//  3. rename the staging path to the destination
//  4. remove the backup
//
// If step 3 fails the backup is renamed back. Symlinks nested inside a
// source directory are followed and their content copied; a symlink at the
// source root is rejected.
package mirror
