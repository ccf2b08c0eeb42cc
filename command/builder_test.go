package command

import (
	"context"
	"os/exec"
	"strings"
	"testing"
	"time"
)

func TestValidateHookID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid name", "cargo-fmt", false},
		{"valid with underscore", "check_toml", false},
		{"valid with dots", "ruff.format", false},
		{"valid leading digit", "2to3", false},
		{"empty id", "", true},
		{"starts with hyphen", "-fmt", true},
		{"contains space", "cargo fmt", true},
		{"contains slash", "cargo/fmt", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateHookID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateHookID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFileName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid path", "/path/to/file.txt", false},
		{"relative path", "relative/path.txt", false},
		{"directory traversal", "../etc/passwd", true},
		{"command injection semicolon", "file.txt; rm -rf /", true},
		{"command injection pipe", "file.txt | cat", true},
		{"command injection ampersand", "file.txt & echo", true},
		{"command injection dollar", "$(whoami)", true},
		{"command injection backtick", "`whoami`", true},
		{"empty path", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFileName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFileName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateGitRef(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"tag", "v4.5.0", false},
		{"sha", "2c9f875913ee60ca25ce70243dc24d5b6415598c", false},
		{"branch with slash", "feature/new-hook", false},
		{"empty", "", true},
		{"option injection", "--upload-pack=evil", true},
		{"space", "v1 v2", true},
		{"semicolon", "main;ls", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateGitRef(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateGitRef(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRepoURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"https", "https://github.com/pre-commit/pre-commit-hooks", false},
		{"ssh shorthand", "git@github.com:pre-commit/pre-commit-hooks.git", false},
		{"absolute path", "/srv/hooks", false},
		{"relative path", "./hooks", false},
		{"bare word", "local", true},
		{"empty", "", true},
		{"injection", "https://x; rm -rf /", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRepoURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateRepoURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestSafeBuilder(t *testing.T) {
	sb := NewSafeBuilder()
	ctx := context.Background()

	t.Run("build valid command", func(t *testing.T) {
		cmd, err := sb.Build(ctx, "git", "status")
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		defer cmd.Close()
		if cmd.name != "git" {
			t.Errorf("expected name 'git', got %s", cmd.name)
		}
		if len(cmd.args) != 1 || cmd.args[0] != "status" {
			t.Errorf("unexpected args: %v", cmd.args)
		}
		if cmd.String() != "git status" {
			t.Errorf("String() = %q", cmd.String())
		}
	})

	t.Run("empty command name", func(t *testing.T) {
		_, err := sb.Build(ctx, "")
		if err == nil {
			t.Error("expected error for empty command name")
		}
	})

	t.Run("timeout capped", func(t *testing.T) {
		cmd, err := sb.Build(ctx, "git")
		if err != nil {
			t.Fatal(err)
		}
		defer cmd.Close()
		cmd.WithTimeout(ctx, 20*time.Minute)
		if cmd.Timeout() != MaxTimeout {
			t.Errorf("expected timeout capped at %v, got %v", MaxTimeout, cmd.Timeout())
		}
	})

	t.Run("unknown validator", func(t *testing.T) {
		if err := sb.Validate("nope", "x"); err == nil {
			t.Error("expected error for unknown validator")
		}
	})

	t.Run("known validator", func(t *testing.T) {
		if err := sb.Validate("hookID", "cargo-clippy"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

type recordingExecutor struct {
	RealExecutor
	calls []string
}

func (r *recordingExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	r.calls = append(r.calls, name+" "+strings.Join(args, " "))
	return r.RealExecutor.CommandContext(ctx, name, args...)
}

func TestSafeBuilderUsesExecutor(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not available")
	}
	rec := &recordingExecutor{}
	sb := NewSafeBuilderWithExecutor(rec)
	cmd, err := sb.Build(context.Background(), "echo", "hello")
	if err != nil {
		t.Fatal(err)
	}
	out, err := cmd.Output(t.TempDir())
	if err != nil {
		t.Fatalf("Output() error = %v", err)
	}
	if strings.TrimSpace(string(out)) != "hello" {
		t.Errorf("unexpected output %q", out)
	}
	if len(rec.calls) != 1 || rec.calls[0] != "echo hello" {
		t.Errorf("executor calls = %v", rec.calls)
	}
}
