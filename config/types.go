package config

import (
	"fmt"
	"strings"
)

// Sentinel repository locations.
const (
	// LocalRepo marks a repository entry whose hooks are defined inline.
	LocalRepo = "local"
	// MetaRepo marks the runner's built-in meta hooks.
	MetaRepo = "meta"
)

// Config is a pre-commit configuration document.
type Config struct {
	Repos                   []Repo                 `yaml:"repos" toml:"repos" json:"repos"`
	DefaultInstallHookTypes []string               `yaml:"default_install_hook_types,omitempty" toml:"default_install_hook_types,omitempty" json:"default_install_hook_types,omitempty"`
	DefaultLanguageVersion  map[string]string      `yaml:"default_language_version,omitempty" toml:"default_language_version,omitempty" json:"default_language_version,omitempty"`
	DefaultStages           []string               `yaml:"default_stages,omitempty" toml:"default_stages,omitempty" json:"default_stages,omitempty"`
	Files                   string                 `yaml:"files,omitempty" toml:"files,omitempty" json:"files,omitempty"`
	Exclude                 string                 `yaml:"exclude,omitempty" toml:"exclude,omitempty" json:"exclude,omitempty"`
	FailFast                bool                   `yaml:"fail_fast,omitempty" toml:"fail_fast,omitempty" json:"fail_fast,omitempty"`
	MinimumPreCommitVersion string                 `yaml:"minimum_pre_commit_version,omitempty" toml:"minimum_pre_commit_version,omitempty" json:"minimum_pre_commit_version,omitempty"`
	CI                      map[string]interface{} `yaml:"ci,omitempty" toml:"ci,omitempty" json:"ci,omitempty"`
}

// Repo is one hook source: a location plus a pinned revision, or one of the
// sentinel locations "local" and "meta".
type Repo struct {
	Repo  string `yaml:"repo" toml:"repo" json:"repo"`
	Rev   string `yaml:"rev,omitempty" toml:"rev,omitempty" json:"rev,omitempty"`
	Hooks []Hook `yaml:"hooks" toml:"hooks" json:"hooks"`
}

// IsLocal reports whether hooks are defined inline in the document.
func (r Repo) IsLocal() bool { return r.Repo == LocalRepo }

// IsMeta reports whether the entry refers to the runner's meta hooks.
func (r Repo) IsMeta() bool { return r.Repo == MetaRepo }

// IsExternal reports whether hooks are fetched from a pinned repository.
func (r Repo) IsExternal() bool { return !r.IsLocal() && !r.IsMeta() }

// Kind names the source type for display.
func (r Repo) Kind() string {
	switch {
	case r.IsLocal():
		return "local"
	case r.IsMeta():
		return "meta"
	default:
		return "external"
	}
}

// Hook is a hook definition. Under a local source every field that matters
// is set inline; under an external source only id is required and the
// remaining fields override the repository's published definition.
type Hook struct {
	ID                      string   `yaml:"id" toml:"id" json:"id" mapstructure:"id"`
	Alias                   string   `yaml:"alias,omitempty" toml:"alias,omitempty" json:"alias,omitempty" mapstructure:"alias"`
	Name                    string   `yaml:"name,omitempty" toml:"name,omitempty" json:"name,omitempty" mapstructure:"name"`
	Description             string   `yaml:"description,omitempty" toml:"description,omitempty" json:"description,omitempty" mapstructure:"description"`
	Entry                   string   `yaml:"entry,omitempty" toml:"entry,omitempty" json:"entry,omitempty" mapstructure:"entry"`
	Language                string   `yaml:"language,omitempty" toml:"language,omitempty" json:"language,omitempty" mapstructure:"language"`
	LanguageVersion         string   `yaml:"language_version,omitempty" toml:"language_version,omitempty" json:"language_version,omitempty" mapstructure:"language_version"`
	Files                   string   `yaml:"files,omitempty" toml:"files,omitempty" json:"files,omitempty" mapstructure:"files"`
	Exclude                 string   `yaml:"exclude,omitempty" toml:"exclude,omitempty" json:"exclude,omitempty" mapstructure:"exclude"`
	Types                   []string `yaml:"types,omitempty" toml:"types,omitempty" json:"types,omitempty" mapstructure:"types"`
	TypesOr                 []string `yaml:"types_or,omitempty" toml:"types_or,omitempty" json:"types_or,omitempty" mapstructure:"types_or"`
	ExcludeTypes            []string `yaml:"exclude_types,omitempty" toml:"exclude_types,omitempty" json:"exclude_types,omitempty" mapstructure:"exclude_types"`
	Args                    []string `yaml:"args,omitempty" toml:"args,omitempty" json:"args,omitempty" mapstructure:"args"`
	Stages                  []string `yaml:"stages,omitempty" toml:"stages,omitempty" json:"stages,omitempty" mapstructure:"stages"`
	AdditionalDependencies  []string `yaml:"additional_dependencies,omitempty" toml:"additional_dependencies,omitempty" json:"additional_dependencies,omitempty" mapstructure:"additional_dependencies"`
	PassFilenames           *bool    `yaml:"pass_filenames,omitempty" toml:"pass_filenames,omitempty" json:"pass_filenames,omitempty" mapstructure:"pass_filenames"`
	AlwaysRun               *bool    `yaml:"always_run,omitempty" toml:"always_run,omitempty" json:"always_run,omitempty" mapstructure:"always_run"`
	Verbose                 *bool    `yaml:"verbose,omitempty" toml:"verbose,omitempty" json:"verbose,omitempty" mapstructure:"verbose"`
	RequireSerial           *bool    `yaml:"require_serial,omitempty" toml:"require_serial,omitempty" json:"require_serial,omitempty" mapstructure:"require_serial"`
	FailFast                *bool    `yaml:"fail_fast,omitempty" toml:"fail_fast,omitempty" json:"fail_fast,omitempty" mapstructure:"fail_fast"`
	LogFile                 string   `yaml:"log_file,omitempty" toml:"log_file,omitempty" json:"log_file,omitempty" mapstructure:"log_file"`
	MinimumPreCommitVersion string   `yaml:"minimum_pre_commit_version,omitempty" toml:"minimum_pre_commit_version,omitempty" json:"minimum_pre_commit_version,omitempty" mapstructure:"minimum_pre_commit_version"`
}

// PassesFilenames reports whether matched file paths are appended to the
// invocation. Defaults to true.
func (h Hook) PassesFilenames() bool {
	return h.PassFilenames == nil || *h.PassFilenames
}

// RunsAlways reports whether the hook applies even when no file matches.
func (h Hook) RunsAlways() bool {
	return h.AlwaysRun != nil && *h.AlwaysRun
}

// IsVerbose reports whether the runner should show output on success.
func (h Hook) IsVerbose() bool {
	return h.Verbose != nil && *h.Verbose
}

// DisplayName returns the name, falling back to the id.
func (h Hook) DisplayName() string {
	if h.Name != "" {
		return h.Name
	}
	return h.ID
}

// HookRef ties a hook to the source it was declared under.
type HookRef struct {
	RepoIndex int
	HookIndex int
	Source    Repo
	Hook      Hook
}

// String renders the reference as "<repo>@<rev>:<id>".
func (r HookRef) String() string {
	if r.Source.Rev == "" {
		return fmt.Sprintf("%s:%s", r.Source.Repo, r.Hook.ID)
	}
	return fmt.Sprintf("%s@%s:%s", r.Source.Repo, r.Source.Rev, r.Hook.ID)
}

// AllHooks lists every hook in document order.
func (c *Config) AllHooks() []HookRef {
	var refs []HookRef
	for i, repo := range c.Repos {
		for j, hook := range repo.Hooks {
			refs = append(refs, HookRef{RepoIndex: i, HookIndex: j, Source: repo, Hook: hook})
		}
	}
	return refs
}

// LocalHookIDs returns the ids of hooks under local sources, in document order.
func (c *Config) LocalHookIDs() []string {
	var ids []string
	for _, repo := range c.Repos {
		if !repo.IsLocal() {
			continue
		}
		for _, hook := range repo.Hooks {
			ids = append(ids, hook.ID)
		}
	}
	return ids
}

// ExternalRepos returns the pinned external sources in document order.
func (c *Config) ExternalRepos() []Repo {
	var repos []Repo
	for _, repo := range c.Repos {
		if repo.IsExternal() {
			repos = append(repos, repo)
		}
	}
	return repos
}

// SetDefaults applies document-level defaults to hooks: default_stages to
// hooks without stages and default_language_version to hooks without a
// language_version.
func (c *Config) SetDefaults() {
	for i := range c.Repos {
		for j := range c.Repos[i].Hooks {
			hook := &c.Repos[i].Hooks[j]
			if len(hook.Stages) == 0 && len(c.DefaultStages) > 0 {
				hook.Stages = append([]string(nil), c.DefaultStages...)
			}
			if hook.LanguageVersion == "" && hook.Language != "" {
				if v, ok := c.DefaultLanguageVersion[hook.Language]; ok {
					hook.LanguageVersion = v
				}
			}
		}
	}
}

// Format is a serialization of the configuration document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatForPath picks the document format from a file name.
func FormatForPath(path string) Format {
	if strings.HasSuffix(strings.ToLower(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}
