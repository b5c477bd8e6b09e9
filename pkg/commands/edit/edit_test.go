// pkg/commands/edit/edit_test.go
// TEST TYPE: Business Logic Integration
// DEPENDENCIES: Memory FS, stub editor runner
// PURPOSE: Test editor selection and path resolution

package edit_test

import (
	"errors"
	"testing"

	"github.com/arthur-debert/robe/pkg/commands/edit"
	roberrors "github.com/arthur-debert/robe/pkg/errors"
	"github.com/arthur-debert/robe/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditorCommand(t *testing.T) {
	tests := []struct {
		name   string
		editor string
		env    string
		want   []string
	}{
		{name: "explicit", editor: "nano", env: "emacs", want: []string{"nano"}},
		{name: "from env", env: "code --wait", want: []string{"code", "--wait"}},
		{name: "quoted", env: `"/opt/My Editor/bin/edit" -n`, want: []string{"/opt/My Editor/bin/edit", "-n"}},
		{name: "default", want: []string{"vi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("EDITOR", tt.env)
			got, err := edit.EditorCommand(tt.editor)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unbalanced quotes", func(t *testing.T) {
		_, err := edit.EditorCommand(`vim "unterminated`)
		require.Error(t, err)
		assert.True(t, roberrors.IsErrorCode(err, roberrors.ErrInvalidInput))
	})
}

func TestEdit_RunsEditorOnResolvedPath(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.RegisterTarget("tmux", env.Home(".tmux.conf"), "", map[string]string{"work": "w"})

	var got []string
	runner := func(argv []string) error {
		got = argv
		return nil
	}

	result, err := edit.Edit(edit.EditOptions{
		StorageRoot: env.StorageRoot,
		Target:      "tmux",
		Profile:     "work",
		Editor:      "nvim -u NONE",
		Runner:      runner,
		FileSystem:  env.FS,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"nvim", "-u", "NONE", env.Storage("tmux", "work")}, got)
	assert.Equal(t, env.Storage("tmux", "work"), result.Path)
	assert.Equal(t, []string{"nvim", "-u", "NONE"}, result.Editor)

	_, err = edit.Edit(edit.EditOptions{
		StorageRoot: env.StorageRoot,
		Target:      "tmux",
		Editor:      "nano",
		Runner:      runner,
		FileSystem:  env.FS,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"nano", env.Home(".tmux.conf")}, got)
}

func TestEdit_Errors(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.RegisterTarget("tmux", env.Home(".tmux.conf"), "", map[string]string{"work": "w"})

	called := false
	runner := func(argv []string) error {
		called = true
		return errors.New("exit status 1")
	}

	_, err := edit.Edit(edit.EditOptions{
		StorageRoot: env.StorageRoot,
		Target:      "tmux",
		Profile:     "home",
		Runner:      runner,
		FileSystem:  env.FS,
	})
	require.Error(t, err)
	assert.True(t, roberrors.IsErrorCode(err, roberrors.ErrProfileNotFound))
	assert.False(t, called)

	_, err = edit.Edit(edit.EditOptions{
		StorageRoot: env.StorageRoot,
		Target:      "tmux",
		Profile:     "work",
		Editor:      "vi",
		Runner:      runner,
		FileSystem:  env.FS,
	})
	require.Error(t, err)
	assert.True(t, called)
	assert.True(t, roberrors.IsErrorCode(err, roberrors.ErrEditorExecute))
}
