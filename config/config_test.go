package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grovetools/hookcfg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRustProjectConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "pre-commit-config.yaml"))
	require.NoError(t, err)

	require.Len(t, cfg.Repos, 2)
	assert.True(t, cfg.Repos[0].IsExternal())
	assert.Equal(t, "v4.5.0", cfg.Repos[0].Rev)
	assert.True(t, cfg.Repos[1].IsLocal())

	assert.Equal(t, []string{"cargo-fmt", "cargo-clippy"}, cfg.LocalHookIDs())

	fmtHook := cfg.Repos[1].Hooks[0]
	assert.Equal(t, "cargo fmt --all --check", fmtHook.Entry)
	assert.Equal(t, "system", fmtHook.Language)
	assert.Equal(t, []string{"rust"}, fmtHook.Types)
	assert.False(t, fmtHook.PassesFilenames())
	assert.False(t, fmtHook.RunsAlways())
	assert.False(t, fmtHook.IsVerbose())

	clippy := cfg.Repos[1].Hooks[1]
	assert.Equal(t, "cargo clippy --all -- -D warnings", clippy.Entry)
	assert.True(t, clippy.RunsAlways())
	assert.True(t, clippy.IsVerbose())

	argv, err := SplitEntry(clippy.Entry)
	require.NoError(t, err)
	assert.Equal(t, []string{"cargo", "clippy", "--all", "--", "-D", "warnings"}, argv)
}

func TestLoadTOML(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "pre-commit-config.toml"))
	require.NoError(t, err)
	assert.Equal(t, []string{"cargo-fmt"}, cfg.LocalHookIDs())
	assert.False(t, cfg.Repos[1].Hooks[0].PassesFilenames())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), ".pre-commit-config.yaml"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigNotFound, errors.GetCode(err))
}

func TestLoadFromBytesErrorStages(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code errors.ErrorCode
	}{
		{
			name: "malformed yaml",
			doc:  "repos: [\n",
			code: errors.ErrCodeConfigInvalid,
		},
		{
			name: "empty document",
			doc:  "",
			code: errors.ErrCodeConfigInvalid,
		},
		{
			name: "missing repos",
			doc:  "fail_fast: true\n",
			code: errors.ErrCodeSchemaValidation,
		},
		{
			name: "unknown hook key",
			doc: `repos:
  - repo: local
    hooks:
      - id: a
        name: a
        entry: a
        language: system
        colour: red
`,
			code: errors.ErrCodeSchemaValidation,
		},
		{
			name: "numeric rev",
			doc: `repos:
  - repo: https://example.com/hooks
    rev: 1.0
    hooks:
      - id: a
`,
			code: errors.ErrCodeSchemaValidation,
		},
		{
			name: "empty rev",
			doc: `repos:
  - repo: https://example.com/hooks
    rev: ""
    hooks:
      - id: a
`,
			code: errors.ErrCodeConfigValidation,
		},
		{
			name: "unbalanced quote in entry",
			doc: `repos:
  - repo: local
    hooks:
      - id: a
        name: a
        entry: "sh -c 'echo"
        language: system
`,
			code: errors.ErrCodeConfigValidation,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFromBytes([]byte(tc.doc), FormatYAML)
			require.Error(t, err)
			assert.Equal(t, tc.code, errors.GetCode(err), err.Error())
		})
	}
}

func TestLoadKeepsShellTextVerbatim(t *testing.T) {
	t.Setenv("HOOKS_REV", "v1.2.3")
	doc := `repos:
  - repo: local
    hooks:
      - id: nonempty
        name: nonempty
        entry: sh -c 'test -n "${HOOKCFG_UNSET_VAR:-dflt}"'
        args: ["$HOME", "${HOOKS_REV}"]
        language: system
        files: \.go$
`
	const entry = `sh -c 'test -n "${HOOKCFG_UNSET_VAR:-dflt}"'`

	cfg, err := LoadFromBytes([]byte(doc), FormatYAML)
	require.NoError(t, err)
	hook := cfg.Repos[0].Hooks[0]
	assert.Equal(t, entry, hook.Entry)
	assert.Equal(t, []string{"$HOME", "${HOOKS_REV}"}, hook.Args)
	assert.Equal(t, `\.go$`, hook.Files)

	for _, format := range []Format{FormatYAML, FormatTOML, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Marshal(cfg, format)
			require.NoError(t, err)
			again, err := LoadFromBytes(data, format)
			require.NoError(t, err)
			assert.Equal(t, entry, again.Repos[0].Hooks[0].Entry)
			assert.Equal(t, hook.Args, again.Repos[0].Hooks[0].Args)
		})
	}
}

func TestLoadAcceptsUncommonVocabulary(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "unsupported language",
			doc: `repos:
  - repo: local
    hooks:
      - id: legacy
        name: legacy
        entry: ./legacy.sh
        language: unsupported
      - id: legacy-script
        name: legacy script
        entry: bin/check
        language: unsupported_script
`,
		},
		{
			name: "frontend and notebook tags",
			doc: `repos:
  - repo: local
    hooks:
      - id: prettier
        name: prettier
        entry: prettier --write
        language: node
        types_or: [css, javascript, ts, tsx, vue, scss]
      - id: ruff
        name: ruff
        entry: ruff check --fix
        language: python
        types_or: [python, pyi, jupyter]
`,
		},
		{
			name: "tag unknown to the identifier",
			doc: `repos:
  - repo: local
    hooks:
      - id: future
        name: future
        entry: future-lint
        language: system
        types: [some-future-tag]
`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFromBytes([]byte(tc.doc), FormatYAML)
			assert.NoError(t, err)
		})
	}
}

func TestSetDefaults(t *testing.T) {
	doc := `default_stages: [pre-commit]
default_language_version:
  python: python3.11
repos:
  - repo: local
    hooks:
      - id: black
        name: black
        entry: black
        language: python
      - id: manual-only
        name: manual
        entry: make check
        language: system
        stages: [manual]
`
	cfg, err := LoadFromBytes([]byte(doc), FormatYAML)
	require.NoError(t, err)
	black := cfg.Repos[0].Hooks[0]
	assert.Equal(t, []string{"pre-commit"}, black.Stages)
	assert.Equal(t, "python3.11", black.LanguageVersion)
	assert.Equal(t, []string{"manual"}, cfg.Repos[0].Hooks[1].Stages)
	assert.Empty(t, cfg.Repos[0].Hooks[1].LanguageVersion)
}

func TestFindConfigFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	nested := filepath.Join(root, "src", "bin")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	_, err := FindConfigFile(nested)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigNotFound, errors.GetCode(err))

	want := filepath.Join(root, ".pre-commit-config.yaml")
	require.NoError(t, os.WriteFile(want, []byte("repos: []\n"), 0o644))

	got, err := FindConfigFile(nested)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFindConfigFileStopsAtRepoRoot(t *testing.T) {
	outer := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outer, ".pre-commit-config.yaml"), []byte("repos: []\n"), 0o644))
	inner := filepath.Join(outer, "project")
	require.NoError(t, os.MkdirAll(filepath.Join(inner, ".git"), 0o755))

	_, err := FindConfigFile(inner)
	assert.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "pre-commit-config.yaml"))
	require.NoError(t, err)

	for _, format := range []Format{FormatYAML, FormatTOML, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Marshal(cfg, format)
			require.NoError(t, err)

			again, err := LoadFromBytes(data, format)
			require.NoError(t, err, string(data))
			assert.Equal(t, cfg.LocalHookIDs(), again.LocalHookIDs())
			assert.Equal(t, cfg.Repos[1].Hooks[1].Entry, again.Repos[1].Hooks[1].Entry)
		})
	}
}

func TestSummary(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "pre-commit-config.yaml"))
	require.NoError(t, err)

	r := cfg.Summary()
	assert.Equal(t, 6, r.HookCount)
	require.Len(t, r.Sources, 2)
	assert.Equal(t, "external", r.Sources[0].Kind)
	assert.Equal(t, "local", r.Sources[1].Kind)
	assert.Equal(t, []string{"cargo-fmt", "cargo-clippy"}, r.LocalHookIDs)

	refs := cfg.AllHooks()
	require.Len(t, refs, 6)
	assert.Equal(t, "https://github.com/pre-commit/pre-commit-hooks@v4.5.0:check-toml", refs[3].String())
	assert.Equal(t, "local:cargo-clippy", refs[5].String())
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)
	s := string(data)
	assert.True(t, strings.Contains(s, `"pass_filenames"`))
	assert.True(t, strings.Contains(s, `"system"`))
	assert.True(t, strings.Contains(s, SchemaID))
}
