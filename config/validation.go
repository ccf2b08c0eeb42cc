package config

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/shlex"
	"github.com/grovetools/hookcfg/errors"
	"github.com/grovetools/hookcfg/identify"
	"github.com/grovetools/hookcfg/logging"
	"github.com/hashicorp/go-multierror"
)

var remoteRepoRegex = regexp.MustCompile(`^(https?|ssh|git|file)://|^[\w.-]+@[\w.-]+:`)

// Validate checks the semantic rules the schema cannot express. All
// problems are collected and returned together as a CONFIG_VALIDATION
// error.
func (c *Config) Validate() error {
	var result *multierror.Error
	add := func(format string, args ...interface{}) {
		result = multierror.Append(result, fmt.Errorf(format, args...))
	}

	if err := validateRegex(c.Files); err != nil {
		add("files: %v", err)
	}
	if err := validateRegex(c.Exclude); err != nil {
		add("exclude: %v", err)
	}
	for _, stage := range c.DefaultStages {
		if !IsStage(stage) {
			add("default_stages: unknown stage %q", stage)
		}
	}
	for _, t := range c.DefaultInstallHookTypes {
		if !IsHookType(t) {
			add("default_install_hook_types: unknown hook type %q", t)
		}
	}

	logger := logging.NewLogger("config")
	localIDs := make(map[string]string)
	for i, repo := range c.Repos {
		prefix := fmt.Sprintf("repos[%d]", i)

		switch {
		case repo.IsLocal(), repo.IsMeta():
			if repo.Rev != "" {
				add("%s: %s repository must not set rev", prefix, repo.Repo)
			}
		default:
			if err := validateRepoLocation(repo.Repo); err != nil {
				add("%s: %v", prefix, err)
			}
			if err := validateRev(repo.Rev); err != nil {
				add("%s (%s): %v", prefix, repo.Repo, err)
			}
		}

		if len(repo.Hooks) == 0 {
			add("%s: at least one hook is required", prefix)
		}

		for j, hook := range repo.Hooks {
			hp := fmt.Sprintf("%s.hooks[%d]", prefix, j)
			if hook.ID != "" {
				hp = fmt.Sprintf("%s (%s)", hp, hook.ID)
			}
			for _, err := range validateHook(repo, hook) {
				add("%s: %v", hp, err)
			}
			for _, tag := range hook.UnknownTags() {
				logger.WithField("hook", hp).Warnf("File type tag %q is not recognized; it will match no files", tag)
			}

			if repo.IsLocal() && hook.ID != "" {
				if first, dup := localIDs[hook.ID]; dup {
					add("%s: duplicate local hook id %q, first defined at %s", hp, hook.ID, first)
				} else {
					localIDs[hook.ID] = fmt.Sprintf("%s.hooks[%d]", prefix, j)
				}
			}
		}
	}

	if result == nil {
		return nil
	}
	result.ErrorFormat = listFormat
	return errors.Wrap(result, errors.ErrCodeConfigValidation,
		fmt.Sprintf("configuration has %d problem(s)", len(result.Errors))).
		WithDetail("problems", len(result.Errors))
}

// UnknownTags returns the types, types_or and exclude_types entries that
// the file identifier never assigns, in field order. They are reported as
// warnings since the tag vocabulary grows over time.
func (h Hook) UnknownTags() []string {
	var out []string
	for _, tags := range [][]string{h.Types, h.TypesOr, h.ExcludeTypes} {
		for _, tag := range tags {
			if !identify.IsKnownTag(tag) {
				out = append(out, tag)
			}
		}
	}
	return out
}

func listFormat(errs []error) string {
	lines := make([]string, len(errs))
	for i, err := range errs {
		lines[i] = "- " + err.Error()
	}
	return strings.Join(lines, "\n")
}

func validateHook(repo Repo, hook Hook) []error {
	var errs []error
	fail := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if hook.ID == "" {
		fail("id is required")
	} else if !hookIDRegex.MatchString(hook.ID) {
		fail("id %q must match %s", hook.ID, hookIDRegex.String())
	}

	if repo.IsMeta() && hook.ID != "" && !IsMetaHook(hook.ID) {
		fail("unknown meta hook %q", hook.ID)
	}

	if repo.IsLocal() {
		if strings.TrimSpace(hook.Name) == "" {
			fail("name is required for local hooks")
		}
		if hook.Language == "" {
			fail("language is required for local hooks")
		}
		if strings.TrimSpace(hook.Entry) == "" {
			fail("entry is required for local hooks")
		}
	}
	if hook.Entry != "" {
		if err := ValidateEntry(hook.Language, hook.Entry); err != nil {
			fail("entry: %v", err)
		}
	}

	if hook.Language != "" && !IsLanguage(hook.Language) {
		fail("unknown language %q", hook.Language)
	}
	if err := validateRegex(hook.Files); err != nil {
		fail("files: %v", err)
	}
	if err := validateRegex(hook.Exclude); err != nil {
		fail("exclude: %v", err)
	}
	for _, stage := range hook.Stages {
		if !IsStage(stage) {
			fail("stages: unknown stage %q", stage)
		}
	}
	return errs
}

// ValidateEntry checks that an entry is a well-formed command line. Entries
// of the pygrep and fail languages are a pattern and a message respectively
// and are only required to be non-blank.
func ValidateEntry(language, entry string) error {
	if strings.TrimSpace(entry) == "" {
		return fmt.Errorf("must not be blank")
	}
	switch language {
	case "pygrep", "fail":
		return nil
	}
	argv, err := shlex.Split(entry)
	if err != nil {
		return fmt.Errorf("malformed command line %q: %w", entry, err)
	}
	if len(argv) == 0 {
		return fmt.Errorf("must name an executable")
	}
	return nil
}

// SplitEntry splits an entry into argv.
func SplitEntry(entry string) ([]string, error) {
	argv, err := shlex.Split(entry)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInvalidInput, fmt.Sprintf("malformed entry %q", entry))
	}
	return argv, nil
}

func validateRev(rev string) error {
	if strings.TrimSpace(rev) == "" {
		return fmt.Errorf("external repository must pin a non-empty rev")
	}
	if strings.ContainsAny(rev, " \t\r\n") {
		return fmt.Errorf("rev %q must be a single literal ref", rev)
	}
	if strings.HasPrefix(rev, "-") {
		return fmt.Errorf("rev %q must not start with '-'", rev)
	}
	return nil
}

func validateRepoLocation(loc string) error {
	if strings.TrimSpace(loc) == "" {
		return fmt.Errorf("repo is required")
	}
	if strings.ContainsAny(loc, " \t\r\n") {
		return fmt.Errorf("repo %q must not contain whitespace", loc)
	}
	if remoteRepoRegex.MatchString(loc) {
		if strings.Contains(loc, "://") {
			if _, err := url.Parse(loc); err != nil {
				return fmt.Errorf("repo %q is not a valid URL: %w", loc, err)
			}
		}
		return nil
	}
	// Anything else is treated as a filesystem path to a repository.
	return nil
}

func validateRegex(pattern string) error {
	if pattern == "" {
		return nil
	}
	if _, err := regexp.Compile(pattern); err != nil {
		return fmt.Errorf("invalid regular expression %q: %w", pattern, err)
	}
	return nil
}
