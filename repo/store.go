// Package repo caches pinned hook repositories and resolves hook references
// against the definitions they publish.
package repo

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/grovetools/hookcfg/config"
	"github.com/grovetools/hookcfg/errors"
	"github.com/grovetools/hookcfg/git"
	"github.com/grovetools/hookcfg/logging"
	"github.com/grovetools/hookcfg/pkg/paths"
	"github.com/grovetools/hookcfg/pkg/profiling"
)

// completeMarker is written once a checkout has finished.
const completeMarker = ".hookcfg-complete"

// Store keeps one checkout per repository and revision.
type Store struct {
	root   string
	cloner git.Cloner

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore creates a store rooted at dir. An empty dir uses the user cache
// directory.
func NewStore(dir string, cloner git.Cloner) *Store {
	if dir == "" {
		dir = paths.ReposDir()
	}
	if cloner == nil {
		cloner = git.NewCLIRepository()
	}
	return &Store{root: dir, cloner: cloner, locks: make(map[string]*sync.Mutex)}
}

// Root returns the store directory.
func (s *Store) Root() string { return s.root }

// Key derives the checkout directory name for a repository at rev.
func Key(url, rev string) string {
	sum := sha256.Sum256([]byte(url + "@" + rev))
	return hex.EncodeToString(sum[:16])
}

// Path returns where the checkout for url at rev lives.
func (s *Store) Path(url, rev string) string {
	return filepath.Join(s.root, Key(url, rev))
}

func (s *Store) lock(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

// Ensure returns the checkout of url at rev, cloning it on first use.
// Concurrent calls for the same pair clone once.
func (s *Store) Ensure(ctx context.Context, url, rev string) (string, error) {
	key := Key(url, rev)
	l := s.lock(key)
	l.Lock()
	defer l.Unlock()

	dest := filepath.Join(s.root, key)
	logger := logging.NewLogger("repo").WithField("repo", url).WithField("rev", rev)

	if _, err := os.Stat(filepath.Join(dest, completeMarker)); err == nil {
		logger.Debug("Using cached checkout")
		return dest, nil
	}

	// A directory without the marker is a leftover from an interrupted fetch.
	if err := os.RemoveAll(dest); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInternal, "failed to remove stale checkout").
			WithDetail("path", dest)
	}
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInternal, "failed to create repository store").
			WithDetail("path", s.root)
	}

	span := profiling.Start("repo.fetch")
	err := s.cloner.Clone(ctx, url, rev, dest)
	span.Stop()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dest, completeMarker), []byte(url+"@"+rev+"\n"), 0o644); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInternal, "failed to mark checkout complete")
	}
	logger.WithField("path", dest).Debug("Checkout ready")
	return dest, nil
}

// Manifest returns the hooks published by url at rev.
func (s *Store) Manifest(ctx context.Context, url, rev string) ([]config.Hook, error) {
	dir, err := s.Ensure(ctx, url, rev)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(dir, config.ManifestFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigInvalid(fmt.Sprintf("%s@%s does not publish %s", url, rev, config.ManifestFile)).
				WithDetail("repo", url)
		}
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to read hook manifest")
	}
	hooks, err := config.ParseManifest(data)
	if err != nil {
		if e, ok := errors.As(err); ok {
			return nil, e.WithDetail("repo", url).WithDetail("rev", rev)
		}
		return nil, err
	}
	return hooks, nil
}

// Entry describes one cached checkout.
type Entry struct {
	Key    string `json:"key"`
	Source string `json:"source"`
	Path   string `json:"path"`
}

// List returns the completed checkouts in the store.
func (s *Store) List() ([]Entry, error) {
	dirs, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []Entry
	for _, d := range dirs {
		if !d.IsDir() {
			continue
		}
		path := filepath.Join(s.root, d.Name())
		data, err := os.ReadFile(filepath.Join(path, completeMarker))
		if err != nil {
			continue
		}
		out = append(out, Entry{Key: d.Name(), Source: strings.TrimSpace(string(data)), Path: path})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Source < out[j].Source })
	return out, nil
}

// Clean removes every cached checkout.
func (s *Store) Clean() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.RemoveAll(s.root); err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to remove repository store").
			WithDetail("path", s.root)
	}
	return nil
}
