package repo

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/grovetools/hookcfg/config"
	"github.com/grovetools/hookcfg/errors"
	"github.com/grovetools/hookcfg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCloner writes a manifest instead of talking to git.
type fakeCloner struct {
	manifests map[string]string
	calls     atomic.Int32
}

func (f *fakeCloner) Clone(_ context.Context, url, rev, dest string) error {
	f.calls.Add(1)
	manifest, ok := f.manifests[url+"@"+rev]
	if !ok {
		return errors.New(errors.ErrCodeGitCloneFailed, "unknown revision "+rev)
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dest, config.ManifestFile), []byte(manifest), 0o644)
}

const standardHooks = `- id: trailing-whitespace
  name: trim trailing whitespace
  entry: trailing-whitespace-fixer
  language: python
  types: [text]
- id: end-of-file-fixer
  name: fix end of files
  entry: end-of-file-fixer
  language: python
  types: [text]
- id: check-yaml
  name: check yaml
  entry: check-yaml
  language: python
  types: [yaml]
- id: check-toml
  name: check toml
  entry: check-toml
  language: python
  types: [toml]
`

const hooksURL = "https://github.com/pre-commit/pre-commit-hooks"

func newFake() *fakeCloner {
	return &fakeCloner{manifests: map[string]string{hooksURL + "@v4.5.0": standardHooks}}
}

func TestKey(t *testing.T) {
	a := Key(hooksURL, "v4.5.0")
	assert.Len(t, a, 32)
	assert.Equal(t, a, Key(hooksURL, "v4.5.0"))
	assert.NotEqual(t, a, Key(hooksURL, "v4.6.0"))
}

func TestEnsureClonesOnce(t *testing.T) {
	fake := newFake()
	store := NewStore(t.TempDir(), fake)

	var wg sync.WaitGroup
	paths := make([]string, 8)
	for i := range paths {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := store.Ensure(context.Background(), hooksURL, "v4.5.0")
			assert.NoError(t, err)
			paths[i] = p
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), fake.calls.Load())
	for _, p := range paths {
		assert.Equal(t, store.Path(hooksURL, "v4.5.0"), p)
	}

	entries, err := store.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, hooksURL+"@v4.5.0", entries[0].Source)
}

func TestEnsureReplacesIncompleteCheckout(t *testing.T) {
	fake := newFake()
	store := NewStore(t.TempDir(), fake)

	stale := store.Path(hooksURL, "v4.5.0")
	require.NoError(t, os.MkdirAll(stale, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(stale, "junk"), []byte("x"), 0o644))

	_, err := store.Ensure(context.Background(), hooksURL, "v4.5.0")
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(stale, "junk"))
	assert.Equal(t, int32(1), fake.calls.Load())
}

func TestManifest(t *testing.T) {
	store := NewStore(t.TempDir(), newFake())

	hooks, err := store.Manifest(context.Background(), hooksURL, "v4.5.0")
	require.NoError(t, err)
	assert.Len(t, hooks, 4)

	_, err = store.Manifest(context.Background(), hooksURL, "v0.0.0")
	assert.True(t, errors.Is(err, errors.ErrCodeGitCloneFailed))
}

func TestClean(t *testing.T) {
	root := filepath.Join(t.TempDir(), "repos")
	store := NewStore(root, newFake())
	_, err := store.Ensure(context.Background(), hooksURL, "v4.5.0")
	require.NoError(t, err)

	require.NoError(t, store.Clean())
	assert.NoDirExists(t, root)

	entries, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestManifestFromRealRepository(t *testing.T) {
	src, _ := testutil.HooksRepo(t, standardHooks)
	store := NewStore(t.TempDir(), nil)

	hooks, err := store.Manifest(context.Background(), src, "v1.0.0")
	require.NoError(t, err)
	assert.Equal(t, "check-toml", hooks[3].ID)
}
