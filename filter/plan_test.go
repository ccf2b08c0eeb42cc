package filter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grovetools/hookcfg/config"
	"github.com/grovetools/hookcfg/identify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

// byName tags files from their name only so tests need no files on disk.
func byName(path string) (identify.Tags, error) {
	tags := identify.TagsForName(path)
	tags[identify.TagFile] = struct{}{}
	return tags, nil
}

func rustConfig() *config.Config {
	return &config.Config{Repos: []config.Repo{
		{Repo: config.LocalRepo, Hooks: []config.Hook{
			{ID: "cargo-fmt", Name: "cargo fmt", Entry: "cargo fmt --all --check", Language: "system", Types: []string{"rust"}, PassFilenames: boolPtr(false)},
			{ID: "cargo-clippy", Name: "cargo clippy", Entry: "cargo clippy --all -- -D warnings", Language: "system", Types: []string{"rust"}, PassFilenames: boolPtr(false), AlwaysRun: boolPtr(true)},
			{ID: "yamllint", Name: "yamllint", Entry: "yamllint -s", Language: "system", Types: []string{"yaml"}},
		}},
	}}
}

func find(t *testing.T, plan []Planned, id string) Planned {
	t.Helper()
	for _, p := range plan {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("hook %s not planned", id)
	return Planned{}
}

func TestPlanRustFiles(t *testing.T) {
	plan, err := Plan(rustConfig(), []string{"src/main.rs", "src/lib.rs", "README.md"}, Options{Identify: byName})
	require.NoError(t, err)
	require.Len(t, plan, 3)

	fmtHook := find(t, plan, "cargo-fmt")
	assert.True(t, fmtHook.Runs())
	assert.Equal(t, []string{"src/main.rs", "src/lib.rs"}, fmtHook.Files)
	assert.Equal(t, []string{"cargo", "fmt", "--all", "--check"}, fmtHook.Argv)

	clippy := find(t, plan, "cargo-clippy")
	assert.Equal(t, []string{"cargo", "clippy", "--all", "--", "-D", "warnings"}, clippy.Argv)

	yaml := find(t, plan, "yamllint")
	assert.Equal(t, SkipNoFiles, yaml.Skip)
	assert.Nil(t, yaml.Argv)
}

func TestPlanAlwaysRunWithoutMatches(t *testing.T) {
	plan, err := Plan(rustConfig(), []string{"docs/guide.md"}, Options{Identify: byName})
	require.NoError(t, err)

	assert.Equal(t, SkipNoFiles, find(t, plan, "cargo-fmt").Skip)
	clippy := find(t, plan, "cargo-clippy")
	assert.True(t, clippy.Runs())
	assert.Empty(t, clippy.Files)
}

func TestPlanPassesFilenames(t *testing.T) {
	plan, err := Plan(rustConfig(), []string{"ci.yml", "deploy/app.yaml"}, Options{Identify: byName})
	require.NoError(t, err)
	assert.Equal(t, []string{"yamllint", "-s", "ci.yml", "deploy/app.yaml"}, find(t, plan, "yamllint").Argv)
}

func TestPlanSelectionAndSkip(t *testing.T) {
	sel, err := NewSelector([]string{"cargo-*"})
	require.NoError(t, err)

	plan, err := Plan(rustConfig(), []string{"src/main.rs", "a.yml"}, Options{
		Identify: byName,
		Selector: sel,
		Skip:     ParseSkip("cargo-clippy, other"),
	})
	require.NoError(t, err)

	assert.True(t, find(t, plan, "cargo-fmt").Runs())
	assert.Equal(t, SkipEnv, find(t, plan, "cargo-clippy").Skip)
	assert.Equal(t, SkipNotSelect, find(t, plan, "yamllint").Skip)
}

func TestPlanStages(t *testing.T) {
	cfg := rustConfig()
	cfg.Repos[0].Hooks[0].Stages = []string{"push"}
	cfg.Repos[0].Hooks[2].Stages = []string{"manual"}

	plan, err := Plan(cfg, []string{"src/main.rs", "a.yml"}, Options{Identify: byName})
	require.NoError(t, err)
	assert.Equal(t, SkipStage, find(t, plan, "cargo-fmt").Skip)
	assert.True(t, find(t, plan, "cargo-clippy").Runs())
	assert.Equal(t, SkipStage, find(t, plan, "yamllint").Skip)

	plan, err = Plan(cfg, []string{"src/main.rs", "a.yml"}, Options{Identify: byName, Stage: "pre-push"})
	require.NoError(t, err)
	assert.True(t, find(t, plan, "cargo-fmt").Runs())

	plan, err = Plan(cfg, []string{"a.yml"}, Options{Identify: byName, Stage: "manual"})
	require.NoError(t, err)
	assert.True(t, find(t, plan, "yamllint").Runs())
	assert.True(t, find(t, plan, "cargo-clippy").Runs(), "hooks without stages run in the manual stage")
	assert.Equal(t, SkipStage, find(t, plan, "cargo-fmt").Skip)
}

func TestPlanTopLevelFilters(t *testing.T) {
	cfg := rustConfig()
	cfg.Exclude = `^vendor/`

	plan, err := Plan(cfg, []string{"vendor/dep.rs"}, Options{Identify: byName})
	require.NoError(t, err)
	assert.Equal(t, SkipNoFiles, find(t, plan, "cargo-fmt").Skip)
}

func TestPlanUnresolvedExternalHook(t *testing.T) {
	cfg := &config.Config{Repos: []config.Repo{
		{Repo: "https://github.com/pre-commit/pre-commit-hooks", Rev: "v4.5.0", Hooks: []config.Hook{{ID: "check-toml"}}},
	}}
	plan, err := Plan(cfg, []string{"Cargo.toml"}, Options{Identify: byName})
	require.NoError(t, err)
	assert.Equal(t, SkipUnresolved, plan[0].Skip)
	assert.Empty(t, plan[0].Files)
	assert.Nil(t, plan[0].Argv)
}

func TestPlanUnresolvedWinsOverNoFiles(t *testing.T) {
	cfg := &config.Config{Repos: []config.Repo{
		{Repo: "https://github.com/pre-commit/pre-commit-hooks", Rev: "v4.5.0", Hooks: []config.Hook{
			{ID: "check-yaml", Files: `\.ya?ml$`},
			{ID: "check-json", Types: []string{"json"}},
		}},
	}}
	plan, err := Plan(cfg, []string{"src/main.rs"}, Options{Identify: byName})
	require.NoError(t, err)
	require.Len(t, plan, 2)
	for _, p := range plan {
		assert.Equal(t, SkipUnresolved, p.Skip, p.ID)
	}
}

func TestPlanDefaultTypesSkipSymlinks(t *testing.T) {
	cfg := &config.Config{Repos: []config.Repo{
		{Repo: config.LocalRepo, Hooks: []config.Hook{
			{ID: "fix", Name: "fix", Entry: "fix", Language: "system"},
		}},
	}}
	tagger := func(path string) (identify.Tags, error) {
		if path == "link" {
			return identify.Tags{identify.TagSymlink: {}}, nil
		}
		return byName(path)
	}

	plan, err := Plan(cfg, []string{"a.txt", "link"}, Options{Identify: tagger})
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, []string{"a.txt"}, plan[0].Files)
	assert.Equal(t, []string{"fix", "a.txt"}, plan[0].Argv)
}

func TestPlanDefaultTypesOnDisk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello\n"), 0o644))
	require.NoError(t, os.Symlink("a.txt", filepath.Join(dir, "link")))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	cfg := &config.Config{Repos: []config.Repo{
		{Repo: config.LocalRepo, Hooks: []config.Hook{
			{ID: "fix", Name: "fix", Entry: "fix", Language: "system"},
			{ID: "links", Name: "links", Entry: "check-links", Language: "system", Types: []string{"symlink"}},
		}},
	}}
	plan, err := Plan(cfg, []string{"a.txt", "link", "sub"}, Options{Root: dir})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, find(t, plan, "fix").Files)
	assert.Equal(t, []string{"link"}, find(t, plan, "links").Files)
}

func TestPlanIgnoreFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, IgnoreFile), []byte("target/\n*.gen.rs\n!keep.gen.rs\n"), 0o644))
	for _, f := range []string{"src/main.rs", "target/debug/build.rs", "out.gen.rs", "keep.gen.rs"} {
		full := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("fn main() {}\n"), 0o644))
	}

	ign, err := LoadIgnorer(root)
	require.NoError(t, err)

	plan, err := Plan(rustConfig(), []string{"src/main.rs", "target/debug/build.rs", "out.gen.rs", "keep.gen.rs"}, Options{Root: root, Ignorer: ign})
	require.NoError(t, err)
	assert.Equal(t, []string{"src/main.rs", "keep.gen.rs"}, find(t, plan, "cargo-fmt").Files)
}

func TestLoadIgnorerMissingFile(t *testing.T) {
	ign, err := LoadIgnorer(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, ign)
	assert.False(t, ign.Ignored("anything"))
}

func TestMatcher(t *testing.T) {
	m, err := NewMatcher(config.Hook{
		ID:           "x",
		Files:        `\.(py|pyi)$`,
		Exclude:      `^tests/`,
		TypesOr:      []string{"python", "pyi"},
		ExcludeTypes: []string{"binary"},
	})
	require.NoError(t, err)

	py := identify.Tags{"file": {}, "text": {}, "python": {}}
	assert.True(t, m.Match("pkg/mod.py", py))
	assert.False(t, m.Match("tests/test_mod.py", py))
	assert.False(t, m.Match("pkg/mod.py", identify.Tags{"file": {}, "binary": {}, "python": {}}))
	assert.False(t, m.Match("pkg/mod.py", identify.Tags{"symlink": {}, "python": {}}), "types default to file")
	assert.False(t, m.Match("pkg/mod.txt", py))

	_, err = NewMatcher(config.Hook{ID: "bad", Files: "("})
	assert.Error(t, err)
}

func TestSelector(t *testing.T) {
	s, err := NewSelector([]string{"check-{yaml,toml}", "lint"})
	require.NoError(t, err)
	assert.True(t, s.Selects("check-yaml", ""))
	assert.True(t, s.Selects("other", "lint"))
	assert.False(t, s.Selects("check-json", ""))

	all, err := NewSelector(nil)
	require.NoError(t, err)
	assert.True(t, all.Selects("anything", ""))

	_, err = NewSelector([]string{"[unclosed"})
	assert.Error(t, err)
}

func TestParseSkip(t *testing.T) {
	skip := ParseSkip(" a,b ,,c")
	assert.Equal(t, map[string]bool{"a": true, "b": true, "c": true}, skip)
	assert.Empty(t, ParseSkip(strings.Repeat(" ", 3)))
}
