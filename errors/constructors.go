package errors

import (
	"fmt"
	"os/exec"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *Error {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *Error {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// HookNotFound creates an error for a hook id that a repository does not publish
func HookNotFound(repo, id string) *Error {
	return New(ErrCodeHookNotFound, fmt.Sprintf("hook '%s' not found in %s", id, repo)).
		WithDetail("repo", repo).
		WithDetail("hook", id)
}

// CommandFailed creates a command execution failure error
func CommandFailed(cmd string, err error) *Error {
	e := Wrap(err, ErrCodeCommandFailed, fmt.Sprintf("command failed: %s", cmd)).
		WithDetail("command", cmd)

	// Extract exit code if available
	if exitErr, ok := err.(*exec.ExitError); ok {
		e = e.WithDetail("exitCode", exitErr.ExitCode())
	}

	return e
}

// NotARepository creates an error for a directory outside any git work tree
func NotARepository(dir string) *Error {
	return New(ErrCodeNotARepository, fmt.Sprintf("not a git repository: %s", dir)).
		WithDetail("path", dir)
}
