package filter

import (
	"path/filepath"
	"regexp"

	"github.com/grovetools/hookcfg/config"
	"github.com/grovetools/hookcfg/errors"
	"github.com/grovetools/hookcfg/identify"
	"github.com/grovetools/hookcfg/logging"
	"github.com/grovetools/hookcfg/pkg/profiling"
)

// DefaultStage is the stage planned when none is given.
const DefaultStage = "pre-commit"

// SkipReason explains why a hook will not run.
type SkipReason string

const (
	Runs           SkipReason = ""
	SkipNotSelect  SkipReason = "not-selected"
	SkipEnv        SkipReason = "skip-env"
	SkipStage      SkipReason = "stage"
	SkipNoFiles    SkipReason = "no-files"
	SkipUnresolved SkipReason = "unresolved"
)

// File is a candidate path together with its type tags.
type File struct {
	Path string
	Tags identify.Tags
}

// Options control planning.
type Options struct {
	// Root is the directory file paths are relative to.
	Root string
	// Stage is the git hook being planned for. Empty means pre-commit.
	Stage string
	// Selector limits planning to matching hooks. Nil selects all.
	Selector *Selector
	// Skip holds hook ids or aliases to skip.
	Skip map[string]bool
	// Ignorer drops paths before any hook sees them.
	Ignorer *Ignorer
	// Identify overrides how tags are assigned, mostly for tests.
	Identify func(path string) (identify.Tags, error)
}

// Planned is the outcome for one hook.
type Planned struct {
	Ref    config.HookRef `json:"-"`
	Repo   string         `json:"repo"`
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Files  []string       `json:"files,omitempty"`
	Argv   []string       `json:"argv,omitempty"`
	Skip   SkipReason     `json:"skip,omitempty"`
	Always bool           `json:"always_run,omitempty"`
}

// Runs reports whether the hook would be invoked.
func (p Planned) Runs() bool { return p.Skip == Runs }

// Plan decides, for every hook in document order, whether it applies to
// files and with which argv. A hook applies when at least one file passes
// its filters or when always_run is set.
func Plan(cfg *config.Config, paths []string, opts Options) ([]Planned, error) {
	defer profiling.Start("filter.plan").Stop()
	logger := logging.NewLogger("filter")

	stage := opts.Stage
	if stage == "" {
		stage = DefaultStage
	}
	stage = config.NormalizeStage(stage)

	files, err := collectFiles(cfg, paths, opts)
	if err != nil {
		return nil, err
	}
	logger.WithField("files", len(files)).WithField("stage", stage).Debug("Planning hooks")

	var out []Planned
	for _, ref := range cfg.AllHooks() {
		hook := ref.Hook
		p := Planned{
			Ref:    ref,
			Repo:   ref.Source.Repo,
			ID:     hook.ID,
			Name:   hook.DisplayName(),
			Always: hook.RunsAlways(),
		}

		switch {
		case !opts.Selector.Selects(hook.ID, hook.Alias):
			p.Skip = SkipNotSelect
		case opts.Skip[hook.ID] || (hook.Alias != "" && opts.Skip[hook.Alias]):
			p.Skip = SkipEnv
		case !inStage(hook.Stages, stage):
			p.Skip = SkipStage
		}
		if p.Skip != Runs {
			out = append(out, p)
			continue
		}

		// Filters of an unresolved hook come from a manifest that was never
		// read, so matching them would report a wrong reason.
		if hook.Entry == "" {
			p.Skip = SkipUnresolved
			out = append(out, p)
			continue
		}

		m, err := NewMatcher(hook)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigValidation, "invalid hook filter").
				WithDetail("hook", hook.ID)
		}
		p.Files = m.Filter(files)
		if len(p.Files) == 0 && !p.Always {
			p.Skip = SkipNoFiles
			out = append(out, p)
			continue
		}

		argv, err := Argv(hook, p.Files)
		if err != nil {
			return nil, err
		}
		p.Argv = argv
		out = append(out, p)
	}
	return out, nil
}

// Argv builds the invocation of a hook: the split entry, then args, then
// the matched files when pass_filenames is set.
func Argv(hook config.Hook, files []string) ([]string, error) {
	argv, err := config.SplitEntry(hook.Entry)
	if err != nil {
		return nil, err
	}
	argv = append(argv, hook.Args...)
	if hook.PassesFilenames() {
		argv = append(argv, files...)
	}
	return argv, nil
}

// inStage reports whether a hook declaring stages runs in stage. A hook
// without stages runs in all of them, manual included.
func inStage(stages []string, stage string) bool {
	if len(stages) == 0 {
		return true
	}
	for _, s := range stages {
		if config.NormalizeStage(s) == stage {
			return true
		}
	}
	return false
}

// collectFiles applies the ignore file and the top-level files/exclude
// patterns, then tags the survivors.
func collectFiles(cfg *config.Config, paths []string, opts Options) ([]File, error) {
	include, err := compile(cfg.Files)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigValidation, "invalid top-level files pattern")
	}
	exclude, err := compile(cfg.Exclude)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigValidation, "invalid top-level exclude pattern")
	}

	identifyFn := opts.Identify
	if identifyFn == nil {
		identifyFn = identify.Identify
	}

	logger := logging.NewLogger("filter")
	files := make([]File, 0, len(paths))
	for _, path := range paths {
		if opts.Ignorer.Ignored(path) || !keep(include, exclude, path) {
			continue
		}
		full := path
		if opts.Root != "" && !filepath.IsAbs(path) {
			full = filepath.Join(opts.Root, path)
		}
		tags, err := identifyFn(full)
		if err != nil {
			logger.WithError(err).WithField("path", path).Debug("Skipping unreadable file")
			continue
		}
		files = append(files, File{Path: path, Tags: tags})
	}
	return files, nil
}

func keep(include, exclude *regexp.Regexp, path string) bool {
	if include != nil && !include.MatchString(path) {
		return false
	}
	return exclude == nil || !exclude.MatchString(path)
}
