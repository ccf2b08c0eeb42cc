package config

import "regexp"

// Languages accepted in a hook's language field.
var Languages = []string{
	"conda", "coursier", "dart", "docker", "docker_image", "dotnet", "fail",
	"golang", "haskell", "julia", "lua", "node", "perl", "pygrep", "python",
	"r", "ruby", "rust", "script", "swift", "system", "unsupported",
	"unsupported_script",
}

// HookTypes are the git hooks a configuration can be installed into.
var HookTypes = []string{
	"commit-msg", "post-checkout", "post-commit", "post-merge", "post-rewrite",
	"pre-commit", "pre-merge-commit", "pre-push", "pre-rebase", "prepare-commit-msg",
}

// Stages accepted in stages and default_stages. Includes the manual stage
// and the legacy aliases.
var Stages = append(append([]string(nil), HookTypes...), "manual", "commit", "merge-commit", "push")

// MetaHooks are the hook ids published by the meta repository.
var MetaHooks = []string{"check-hooks-apply", "check-useless-excludes", "identity"}

var hookIDRegex = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_.-]*$`)

// NormalizeStage maps legacy stage aliases to their hook names.
func NormalizeStage(stage string) string {
	switch stage {
	case "commit":
		return "pre-commit"
	case "merge-commit":
		return "pre-merge-commit"
	case "push":
		return "pre-push"
	}
	return stage
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// IsLanguage reports whether name is a known hook language.
func IsLanguage(name string) bool { return contains(Languages, name) }

// IsStage reports whether name is a known stage or legacy alias.
func IsStage(name string) bool { return contains(Stages, name) }

// IsMetaHook reports whether id is published by the meta repository.
func IsMetaHook(id string) bool { return contains(MetaHooks, id) }

// IsHookType reports whether name is a git hook hookcfg can install.
func IsHookType(name string) bool { return contains(HookTypes, name) }
