package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grovetools/hookcfg/errors"
	"github.com/grovetools/hookcfg/theme"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
	out     io.Writer
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{Verbose: verbose, out: os.Stderr}
}

// WithWriter redirects the handler's output.
func (h *ErrorHandler) WithWriter(w io.Writer) *ErrorHandler {
	h.out = w
	return h
}

// Handle prints a message and hint suited to the error's code and returns
// the error unchanged.
func (h *ErrorHandler) Handle(err error) error {
	t := theme.DefaultTheme
	fail := func(msg string) {
		fmt.Fprintf(h.out, "%s %s\n", t.Error.Render(theme.IconError), msg)
	}
	hint := func(msg string) {
		fmt.Fprintln(h.out, t.Muted.Render(msg))
	}

	e, _ := errors.As(err)
	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fail("Configuration not found.")
		hint("Create .pre-commit-config.yaml at the repository root or pass --config.")

	case errors.ErrCodeConfigInvalid:
		fail(e.Message)
		if e.Cause != nil {
			hint(e.Cause.Error())
		}

	case errors.ErrCodeSchemaValidation, errors.ErrCodeConfigValidation:
		fail(e.Message)
		if e.Cause != nil {
			for _, line := range strings.Split(e.Cause.Error(), "\n") {
				if strings.HasPrefix(line, "- ") {
					fmt.Fprintln(h.out, "  "+line)
				}
			}
		}

	case errors.ErrCodeHookNotFound:
		fail(fmt.Sprintf("Hook '%v' is not published by %v", e.Details["hook"], e.Details["repo"]))
		hint("Check the hook id against the repository's .pre-commit-hooks.yaml at the pinned rev.")

	case errors.ErrCodeGitNotInstalled:
		fail("git executable not found.")
		hint("Install git and make sure it is on PATH.")

	case errors.ErrCodeNotARepository:
		fail(e.Message)
		hint("Run this command inside a git work tree.")

	case errors.ErrCodeGitCloneFailed:
		fail(e.Message)
		if stderr := causeStderr(err); stderr != "" {
			hint(stderr)
		}

	default:
		fail(fmt.Sprintf("Error: %v", err))
	}

	if h.Verbose && e != nil {
		fmt.Fprintf(h.out, "\nError details:\n%s\n", e.ToJSON())
	}
	return err
}

// causeStderr finds git's stderr recorded anywhere in the error chain.
func causeStderr(err error) string {
	for err != nil {
		if e, ok := err.(*errors.Error); ok {
			if s, ok := e.Details["stderr"].(string); ok {
				return s
			}
			err = e.Cause
			continue
		}
		return ""
	}
	return ""
}

// ExitCode maps an error to a process exit code: 1 for configuration
// problems, 2 for usage errors, 3 for environment failures.
func ExitCode(err error) int {
	switch errors.GetCode(err) {
	case "":
		if err == nil {
			return 0
		}
		return 2
	case errors.ErrCodeConfigNotFound, errors.ErrCodeConfigInvalid, errors.ErrCodeConfigValidation,
		errors.ErrCodeSchemaValidation, errors.ErrCodeHookNotFound:
		return 1
	case errors.ErrCodeInvalidInput:
		return 2
	default:
		return 3
	}
}
