package testutil

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/arthur-debert/robe/pkg/types"
	"github.com/stretchr/testify/require"
)

// Tree describes files relative to a root. A key ending in "/" with an
// empty value is an empty directory.
type Tree map[string]string

// WriteFile writes content to path, creating parent directories
func WriteFile(t *testing.T, fsys types.FS, path, content string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, fsys.WriteFile(path, []byte(content), 0644))
}

// WriteTree writes every entry of tree below root
func WriteTree(t *testing.T, fsys types.FS, root string, tree Tree) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(root, 0755))

	keys := make([]string, 0, len(tree))
	for k := range tree {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, rel := range keys {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if strings.HasSuffix(rel, "/") {
			require.NoError(t, fsys.MkdirAll(path, 0755))
			continue
		}
		WriteFile(t, fsys, path, tree[rel])
	}
}

// ReadTree returns every file below root with its content, keyed by
// slash-separated relative path. Directories without files appear with a
// trailing "/".
func ReadTree(t *testing.T, fsys types.FS, root string) Tree {
	t.Helper()
	tree := Tree{}
	readTree(t, fsys, root, "", tree)
	return tree
}

func readTree(t *testing.T, fsys types.FS, root, rel string, tree Tree) {
	t.Helper()
	entries, err := fsys.ReadDir(filepath.Join(root, rel))
	require.NoError(t, err)

	if len(entries) == 0 && rel != "" {
		tree[filepath.ToSlash(rel)+"/"] = ""
		return
	}

	for _, entry := range entries {
		childRel := filepath.Join(rel, entry.Name())
		info, err := fsys.Stat(filepath.Join(root, childRel))
		require.NoError(t, err)
		if info.IsDir() {
			readTree(t, fsys, root, childRel, tree)
			continue
		}
		data, err := fsys.ReadFile(filepath.Join(root, childRel))
		require.NoError(t, err)
		tree[filepath.ToSlash(childRel)] = string(data)
	}
}

// Mode returns the permission bits of path
func Mode(t *testing.T, fsys types.FS, path string) fs.FileMode {
	t.Helper()
	info, err := fsys.Stat(path)
	require.NoError(t, err)
	return info.Mode().Perm()
}
