package command

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"
)

const (
	// DefaultTimeout is the default command execution timeout
	DefaultTimeout = 2 * time.Minute

	// MaxTimeout is the maximum allowed timeout
	MaxTimeout = 10 * time.Minute
)

var (
	hookIDRegex  = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_.-]*$`)
	gitRefRegex  = regexp.MustCompile(`^[a-zA-Z0-9/_.+-]+$`)
	repoURLRegex = regexp.MustCompile(`^(https?://|ssh://|git://|git@|file://|/|\./|\.\./|~/)`)
)

// SafeBuilder provides secure command execution with validation
type SafeBuilder struct {
	defaultTimeout time.Duration
	validators     map[string]func(string) error
	executor       Executor
}

// NewSafeBuilder creates a new SafeBuilder instance with a RealExecutor
func NewSafeBuilder() *SafeBuilder {
	return NewSafeBuilderWithExecutor(&RealExecutor{})
}

// NewSafeBuilderWithExecutor creates a new SafeBuilder with a custom Executor
func NewSafeBuilderWithExecutor(exec Executor) *SafeBuilder {
	return &SafeBuilder{
		defaultTimeout: DefaultTimeout,
		validators:     makeDefaultValidators(),
		executor:       exec,
	}
}

// makeDefaultValidators returns the default set of validators
func makeDefaultValidators() map[string]func(string) error {
	return map[string]func(string) error{
		"hookID":   validateHookID,
		"fileName": validateFileName,
		"gitRef":   validateGitRef,
		"repoURL":  validateRepoURL,
	}
}

// validateHookID ensures hook identifiers are safe to use as path and flag values
func validateHookID(id string) error {
	if id == "" {
		return fmt.Errorf("hook id cannot be empty")
	}
	if !hookIDRegex.MatchString(id) {
		return fmt.Errorf("invalid hook id: %s (must contain only letters, digits, '.', '_' and '-')", id)
	}
	return nil
}

// validateFileName ensures file paths are safe
func validateFileName(path string) error {
	if path == "" {
		return fmt.Errorf("file path cannot be empty")
	}

	// Prevent directory traversal
	if strings.Contains(path, "..") {
		return fmt.Errorf("file path cannot contain '..'")
	}

	// Prevent command injection via shell metacharacters
	if strings.ContainsAny(path, ";|&$`") {
		return fmt.Errorf("file path contains invalid characters")
	}

	return nil
}

// validateGitRef ensures git references are safe
func validateGitRef(ref string) error {
	if ref == "" {
		return fmt.Errorf("git ref cannot be empty")
	}
	if strings.HasPrefix(ref, "-") {
		return fmt.Errorf("git ref cannot start with '-': %s", ref)
	}
	if !gitRefRegex.MatchString(ref) {
		return fmt.Errorf("invalid git ref: %s", ref)
	}
	return nil
}

// validateRepoURL accepts remote URLs and filesystem paths usable by git clone
func validateRepoURL(url string) error {
	if url == "" {
		return fmt.Errorf("repository url cannot be empty")
	}
	if strings.ContainsAny(url, " \t\n;|&`") {
		return fmt.Errorf("repository url contains invalid characters: %s", url)
	}
	if !repoURLRegex.MatchString(url) {
		return fmt.Errorf("unsupported repository url: %s", url)
	}
	return nil
}

// Command represents a safe command configuration
type Command struct {
	ctx      context.Context
	cancel   context.CancelFunc
	name     string
	args     []string
	timeout  time.Duration
	executor Executor
}

// Build creates a new command with validation
func (sb *SafeBuilder) Build(ctx context.Context, name string, args ...string) (*Command, error) {
	if name == "" {
		return nil, fmt.Errorf("command name cannot be empty")
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, sb.defaultTimeout)

	return &Command{
		ctx:      timeoutCtx,
		cancel:   cancel,
		name:     name,
		args:     args,
		timeout:  sb.defaultTimeout,
		executor: sb.executor,
	}, nil
}

// WithTimeout sets a custom timeout for the command, capped at MaxTimeout.
// The new deadline is derived from the parent context the command was built with.
func (c *Command) WithTimeout(parent context.Context, timeout time.Duration) *Command {
	if timeout > MaxTimeout {
		timeout = MaxTimeout
	}
	c.cancel()
	c.ctx, c.cancel = context.WithTimeout(parent, timeout)
	c.timeout = timeout
	return c
}

// Timeout returns the effective timeout.
func (c *Command) Timeout() time.Duration {
	return c.timeout
}

// String renders the command line for logs and error messages.
func (c *Command) String() string {
	return strings.TrimSpace(c.name + " " + strings.Join(c.args, " "))
}

// Validate validates specific arguments
func (sb *SafeBuilder) Validate(argType string, value string) error {
	validator, exists := sb.validators[argType]
	if !exists {
		return fmt.Errorf("no validator for argument type: %s", argType)
	}

	return validator(value)
}

// Exec creates and returns an exec.Cmd. Callers that use Exec directly must
// call Close once the process has finished.
func (c *Command) Exec() *exec.Cmd {
	return c.executor.CommandContext(c.ctx, c.name, c.args...) //nolint:gosec // SafeBuilder provides validation
}

// Close releases the command's timeout context.
func (c *Command) Close() {
	c.cancel()
}

// Output runs the command in dir and returns its standard output.
func (c *Command) Output(dir string) ([]byte, error) {
	defer c.cancel()
	cmd := c.Exec()
	cmd.Dir = dir
	return cmd.Output()
}

// CombinedOutput runs the command in dir and returns stdout and stderr together.
func (c *Command) CombinedOutput(dir string) ([]byte, error) {
	defer c.cancel()
	cmd := c.Exec()
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// Run runs the command in dir, discarding output.
func (c *Command) Run(dir string) error {
	defer c.cancel()
	cmd := c.Exec()
	cmd.Dir = dir
	return cmd.Run()
}
