package filter

import (
	"fmt"

	"github.com/grovetools/hookcfg/config"
)

// HooksThatNeverApply returns the hooks that match none of files and do
// not set always_run. Hooks skipped by stage are reported too, since the
// check runs against every tracked file in every stage.
func HooksThatNeverApply(cfg *config.Config, files []string, opts Options) ([]string, error) {
	opts.Selector = nil
	opts.Skip = nil

	var out []string
	for _, ref := range cfg.AllHooks() {
		if ref.Source.IsMeta() {
			continue
		}
		single := &config.Config{Files: cfg.Files, Exclude: cfg.Exclude, Repos: []config.Repo{
			{Repo: ref.Source.Repo, Rev: ref.Source.Rev, Hooks: []config.Hook{withoutStages(ref.Hook)}},
		}}
		plan, err := Plan(single, files, opts)
		if err != nil {
			return nil, err
		}
		if len(plan) == 1 && plan[0].Skip == SkipNoFiles {
			out = append(out, ref.Hook.ID)
		}
	}
	return out, nil
}

func withoutStages(h config.Hook) config.Hook {
	h.Stages = nil
	return h
}

// UselessExcludes reports exclude patterns, top-level or per hook, that
// match none of files.
func UselessExcludes(cfg *config.Config, files []string) ([]string, error) {
	var out []string
	check := func(where, pattern string, candidates []string) error {
		if pattern == "" {
			return nil
		}
		re, err := compile(pattern)
		if err != nil {
			return err
		}
		for _, f := range candidates {
			if re.MatchString(f) {
				return nil
			}
		}
		out = append(out, fmt.Sprintf("%s: exclude %q does not match any files", where, pattern))
		return nil
	}

	if err := check("top-level", cfg.Exclude, files); err != nil {
		return nil, err
	}

	include, err := compile(cfg.Files)
	if err != nil {
		return nil, err
	}
	for _, ref := range cfg.AllHooks() {
		if ref.Source.IsMeta() {
			continue
		}
		hookFiles, err := compile(ref.Hook.Files)
		if err != nil {
			return nil, err
		}
		var candidates []string
		for _, f := range files {
			if include != nil && !include.MatchString(f) {
				continue
			}
			if hookFiles != nil && !hookFiles.MatchString(f) {
				continue
			}
			candidates = append(candidates, f)
		}
		if err := check(ref.String(), ref.Hook.Exclude, candidates); err != nil {
			return nil, err
		}
	}
	return out, nil
}
