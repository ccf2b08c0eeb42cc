// Package filter decides which hooks apply to which files and computes the
// command line each applicable hook would be invoked with.
package filter

import (
	"fmt"
	"regexp"

	"github.com/grovetools/hookcfg/config"
	"github.com/grovetools/hookcfg/identify"
)

// Matcher selects the files a single hook applies to.
type Matcher struct {
	files        *regexp.Regexp
	exclude      *regexp.Regexp
	types        []string
	typesOr      []string
	excludeTypes []string
}

// NewMatcher compiles the file filters of a hook. A hook without types
// matches regular files only, so symlinks and directories are left out.
func NewMatcher(hook config.Hook) (*Matcher, error) {
	types := hook.Types
	if len(types) == 0 {
		types = []string{identify.TagFile}
	}
	m := &Matcher{
		types:        types,
		typesOr:      hook.TypesOr,
		excludeTypes: hook.ExcludeTypes,
	}
	var err error
	if m.files, err = compile(hook.Files); err != nil {
		return nil, fmt.Errorf("hook %s: files: %w", hook.ID, err)
	}
	if m.exclude, err = compile(hook.Exclude); err != nil {
		return nil, fmt.Errorf("hook %s: exclude: %w", hook.ID, err)
	}
	return m, nil
}

func compile(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	return regexp.Compile(pattern)
}

// Match reports whether a file with the given path and tags is selected.
// files is searched anywhere in the path; types must all be present;
// at least one of types_or must be present when set; no exclude_types may
// be present.
func (m *Matcher) Match(path string, tags identify.Tags) bool {
	if m.files != nil && !m.files.MatchString(path) {
		return false
	}
	if m.exclude != nil && m.exclude.MatchString(path) {
		return false
	}
	for _, t := range m.types {
		if !tags.Has(t) {
			return false
		}
	}
	if len(m.typesOr) > 0 {
		found := false
		for _, t := range m.typesOr {
			if tags.Has(t) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for _, t := range m.excludeTypes {
		if tags.Has(t) {
			return false
		}
	}
	return true
}

// Filter returns the subset of files the hook applies to.
func (m *Matcher) Filter(files []File) []string {
	var out []string
	for _, f := range files {
		if m.Match(f.Path, f.Tags) {
			out = append(out, f.Path)
		}
	}
	return out
}
