package filter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/moby/patternmatcher"
	"github.com/moby/patternmatcher/ignorefile"
)

// IgnoreFile is the repository-level list of paths no hook sees.
const IgnoreFile = ".pre-commit-ignore"

// Selector picks hooks by glob patterns over their id and alias.
type Selector struct {
	globs []glob.Glob
}

// NewSelector compiles patterns such as "cargo-*". An empty pattern list
// selects every hook.
func NewSelector(patterns []string) (*Selector, error) {
	s := &Selector{}
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid hook pattern %q: %w", p, err)
		}
		s.globs = append(s.globs, g)
	}
	return s, nil
}

// Selects reports whether a hook with the given id or alias is selected.
func (s *Selector) Selects(id, alias string) bool {
	if s == nil || len(s.globs) == 0 {
		return true
	}
	for _, g := range s.globs {
		if g.Match(id) || (alias != "" && g.Match(alias)) {
			return true
		}
	}
	return false
}

// ParseSkip splits the SKIP environment value into hook ids.
func ParseSkip(value string) map[string]bool {
	skip := make(map[string]bool)
	for _, id := range strings.Split(value, ",") {
		if id = strings.TrimSpace(id); id != "" {
			skip[id] = true
		}
	}
	return skip
}

// Ignorer drops paths listed in an ignore file. Patterns use the
// .dockerignore syntax, including "!" exceptions.
type Ignorer struct {
	pm *patternmatcher.PatternMatcher
}

// NewIgnorer reads ignore patterns from r.
func NewIgnorer(r io.Reader) (*Ignorer, error) {
	patterns, err := ignorefile.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read ignore patterns: %w", err)
	}
	pm, err := patternmatcher.New(patterns)
	if err != nil {
		return nil, fmt.Errorf("invalid ignore pattern: %w", err)
	}
	return &Ignorer{pm: pm}, nil
}

// LoadIgnorer reads root/.pre-commit-ignore. A missing file yields a nil
// Ignorer, which ignores nothing.
func LoadIgnorer(root string) (*Ignorer, error) {
	f, err := os.Open(filepath.Join(root, IgnoreFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()
	return NewIgnorer(f)
}

// Ignored reports whether path, or one of its parent directories, is
// ignored.
func (i *Ignorer) Ignored(path string) bool {
	if i == nil {
		return false
	}
	ok, err := i.pm.MatchesOrParentMatches(filepath.ToSlash(path))
	return err == nil && ok
}
