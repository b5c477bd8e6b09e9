package ui

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/robe/pkg/errors"
	"github.com/arthur-debert/robe/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatAuto},
		{"auto", FormatAuto},
		{"term", FormatTerminal},
		{"terminal", FormatTerminal},
		{"TEXT", FormatText},
		{"json", FormatJSON},
		{"yaml", FormatYAML},
		{"yml", FormatYAML},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseFormat("xml")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestFormatString(t *testing.T) {
	for _, f := range []Format{FormatAuto, FormatTerminal, FormatText, FormatJSON, FormatYAML} {
		parsed, err := ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}
}

func TestAutoOnBufferIsText(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatAuto, &buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderMessage("hello"))
	assert.Equal(t, "hello\n", buf.String())
}

func TestStructuredRenderers(t *testing.T) {
	result := &types.StatusResult{Targets: []types.TargetStatus{
		{Name: "tmux", RealPath: "/etc/tmux.conf", LastActivatedProfile: "work", State: types.StateClean},
	}}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		r, err := NewRenderer(FormatJSON, &buf)
		require.NoError(t, err)
		require.NoError(t, r.RenderResult(result))

		var decoded map[string][]map[string]string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "tmux", decoded["targets"][0]["name"])
		assert.Equal(t, "clean", decoded["targets"][0]["state"])
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		r, err := NewRenderer(FormatYAML, &buf)
		require.NoError(t, err)
		require.NoError(t, r.RenderResult(result))

		var decoded map[string][]map[string]string
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "/etc/tmux.conf", decoded["targets"][0]["real_path"])
		assert.Equal(t, "work", decoded["targets"][0]["last_activated_profile"])
	})

	t.Run("json error", func(t *testing.T) {
		var buf bytes.Buffer
		r, _ := NewRenderer(FormatJSON, &buf)
		require.NoError(t, r.RenderError(errors.New(errors.ErrTargetNotFound, "Target zsh not found.")))
		assert.JSONEq(t, `{"error":"Target zsh not found.","code":"TARGET_NOT_FOUND"}`, buf.String())
	})

	t.Run("json error with details", func(t *testing.T) {
		var buf bytes.Buffer
		r, _ := NewRenderer(FormatJSON, &buf)
		err := errors.New(errors.ErrProfileNotFound, "Profile tmux/old not found.").
			WithDetail("target", "tmux").
			WithDetail("profile", "old")
		require.NoError(t, r.RenderError(err))
		assert.JSONEq(t, `{"error":"Profile tmux/old not found.","code":"PROFILE_NOT_FOUND","details":{"target":"tmux","profile":"old"}}`, buf.String())
	})

	t.Run("json keeps paths unescaped", func(t *testing.T) {
		var buf bytes.Buffer
		r, _ := NewRenderer(FormatJSON, &buf)
		require.NoError(t, r.RenderMessage("<storage> & co"))
		assert.Contains(t, buf.String(), "<storage> & co")
	})
}
