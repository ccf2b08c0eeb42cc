package config

import (
	"testing"

	"github.com/grovetools/hookcfg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hooksManifest = `- id: trailing-whitespace
  name: trim trailing whitespace
  entry: trailing-whitespace-fixer
  language: python
  types: [text]
  stages: [pre-commit, pre-push, manual]
- id: check-toml
  name: check toml
  entry: check-toml
  language: python
  types: [toml]
`

func TestParseManifest(t *testing.T) {
	hooks, err := ParseManifest([]byte(hooksManifest))
	require.NoError(t, err)
	require.Len(t, hooks, 2)
	assert.Equal(t, "trailing-whitespace", hooks[0].ID)

	_, err = ParseManifest([]byte("- id: broken\n"))
	assert.Error(t, err)
}

func TestMergeManifest(t *testing.T) {
	hooks, err := ParseManifest([]byte(hooksManifest))
	require.NoError(t, err)

	merged, err := MergeManifest("https://github.com/pre-commit/pre-commit-hooks", hooks, Hook{
		ID:            "trailing-whitespace",
		Args:          []string{"--markdown-linebreak-ext=md"},
		Exclude:       `^vendor/`,
		PassFilenames: boolPtr(false),
	})
	require.NoError(t, err)

	assert.Equal(t, "trim trailing whitespace", merged.Name)
	assert.Equal(t, "trailing-whitespace-fixer", merged.Entry)
	assert.Equal(t, "python", merged.Language)
	assert.Equal(t, []string{"text"}, merged.Types)
	assert.Equal(t, []string{"pre-commit", "pre-push", "manual"}, merged.Stages)
	assert.Equal(t, []string{"--markdown-linebreak-ext=md"}, merged.Args)
	assert.Equal(t, `^vendor/`, merged.Exclude)
	assert.False(t, merged.PassesFilenames())
}

func TestMergeManifestUnknownHook(t *testing.T) {
	hooks, err := ParseManifest([]byte(hooksManifest))
	require.NoError(t, err)

	_, err = MergeManifest("https://example.com/hooks", hooks, Hook{ID: "check-json"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeHookNotFound))
}
