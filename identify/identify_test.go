package identify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagsForName(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"src/main.rs", []string{"rust", "text"}},
		{"Cargo.lock", []string{"cargo-lock", "text", "toml"}},
		{"Cargo.toml", []string{"cargo", "text", "toml"}},
		{"web/App.vue", []string{"text", "vue"}},
		{"notebooks/eda.ipynb", []string{"jupyter", "text"}},
		{"config.YML", []string{"text", "yaml"}},
		{"docs/Dockerfile", []string{"dockerfile", "text"}},
		{"noext", []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.want, TagsForName(tc.path).Sorted())
		})
	}
}

func TestIdentify(t *testing.T) {
	dir := t.TempDir()

	rs := filepath.Join(dir, "lib.rs")
	require.NoError(t, os.WriteFile(rs, []byte("fn main() {}\n"), 0o644))
	tags, err := Identify(rs)
	require.NoError(t, err)
	assert.Equal(t, []string{"file", "non-executable", "rust", "text"}, tags.Sorted())

	bin := filepath.Join(dir, "blob")
	require.NoError(t, os.WriteFile(bin, []byte{0x7f, 'E', 'L', 'F', 0, 1}, 0o644))
	tags, err = Identify(bin)
	require.NoError(t, err)
	assert.True(t, tags.Has(TagBinary))
	assert.False(t, tags.Has(TagText))

	script := filepath.Join(dir, "run")
	require.NoError(t, os.WriteFile(script, []byte("#!/usr/bin/env python3\nprint(1)\n"), 0o755))
	tags, err = Identify(script)
	require.NoError(t, err)
	assert.Equal(t, []string{"executable", "file", "python", "python3", "text"}, tags.Sorted())

	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(rs, link))
	tags, err = Identify(link)
	require.NoError(t, err)
	assert.Equal(t, []string{"symlink"}, tags.Sorted())

	tags, err = Identify(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"directory"}, tags.Sorted())

	_, err = Identify(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestIsKnownTag(t *testing.T) {
	for _, tag := range []string{
		"rust", "text", "file", "executable", "yaml", "shell",
		"vue", "scss", "sass", "jupyter", "powershell", "jinja", "cython",
		"less", "graphql", "nix", "kotlin", "css", "javascript", "ts", "tsx", "pyi",
	} {
		assert.True(t, IsKnownTag(tag), tag)
	}
	assert.False(t, IsKnownTag("rustt"))
	assert.Contains(t, KnownTags(), "toml")
}
