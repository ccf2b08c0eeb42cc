package repo

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/grovetools/hookcfg/config"
	"github.com/grovetools/hookcfg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rustProject(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load(filepath.Join("..", "config", "testdata", "pre-commit-config.yaml"))
	require.NoError(t, err)
	return cfg
}

func TestResolve(t *testing.T) {
	fake := newFake()
	resolver := NewResolver(NewStore(t.TempDir(), fake))

	cfg := rustProject(t)
	cfg.Repos = append(cfg.Repos, config.Repo{Repo: config.MetaRepo, Hooks: []config.Hook{{ID: "identity"}}})

	resolved, err := resolver.Resolve(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, resolved.Repos, 3)

	checkToml := resolved.Repos[0].Hooks[3]
	assert.Equal(t, "check-toml", checkToml.ID)
	assert.Equal(t, "check-toml", checkToml.Entry)
	assert.Equal(t, []string{"toml"}, checkToml.Types)

	assert.Equal(t, cfg.Repos[1].Hooks, resolved.Repos[1].Hooks)
	assert.Equal(t, "hookcfg meta identity", resolved.Repos[2].Hooks[0].Entry)

	// The input is left untouched.
	assert.Empty(t, cfg.Repos[0].Hooks[0].Entry)
	assert.Equal(t, int32(1), fake.calls.Load())
}

func TestResolveUnknownHook(t *testing.T) {
	resolver := NewResolver(NewStore(t.TempDir(), newFake()))
	cfg := &config.Config{Repos: []config.Repo{
		{Repo: hooksURL, Rev: "v4.5.0", Hooks: []config.Hook{{ID: "check-json"}}},
	}}

	_, err := resolver.Resolve(context.Background(), cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeHookNotFound))
}

func TestMetaManifestIsCopy(t *testing.T) {
	m := MetaManifest()
	m[0].ID = "changed"
	assert.Equal(t, "check-hooks-apply", MetaManifest()[0].ID)
}
