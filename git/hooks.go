package git

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/grovetools/hookcfg/logging"
)

// hookMarker identifies scripts written by HookManager.
const hookMarker = "hookcfg managed hook"

// backupSuffix is appended to a foreign hook moved aside during install.
const backupSuffix = ".pre-hookcfg"

const hookScriptTemplate = `#!/bin/sh
# {{.Marker}} - {{.HookName}}
# Auto-generated, do not edit directly

HOOKCFG_BIN="{{.Binary}}"
CONFIG="{{.Config}}"

if ! command -v "$HOOKCFG_BIN" >/dev/null 2>&1; then
    echo "hookcfg not found. Skipping {{.HookName}} hook." >&2
    exit 0
fi

# Refuse to run hooks from a broken configuration.
"$HOOKCFG_BIN" --config "$CONFIG" validate --quiet || exit 1

if [ -x "$0{{.BackupSuffix}}" ]; then
    # The previous hook and the runner both read what git sends on stdin.
    HOOK_STDIN=$(mktemp) || exit 1
    trap 'rm -f "$HOOK_STDIN"' EXIT
    cat > "$HOOK_STDIN"
    "$0{{.BackupSuffix}}" "$@" < "$HOOK_STDIN" || exit $?
    exec < "$HOOK_STDIN"
    rm -f "$HOOK_STDIN"
fi

if command -v pre-commit >/dev/null 2>&1; then
    exec pre-commit hook-impl --config="$CONFIG" --hook-type={{.HookName}} --hook-dir "$(cd "$(dirname "$0")" && pwd)" -- "$@"
fi

echo "pre-commit not found; configuration validated only." >&2
exit 0
`

var hookTemplate = template.Must(template.New("hook").Parse(hookScriptTemplate))

// HookManager installs hook scripts that validate the configuration before
// handing off to the runner.
type HookManager struct {
	binary     string
	configPath string
}

// Ensure it implements the interface
var _ HookProvider = (*HookManager)(nil)

// NewHookManager creates a manager writing scripts that invoke binary with
// configPath.
func NewHookManager(binary, configPath string) *HookManager {
	if binary == "" {
		binary = "hookcfg"
	}
	if configPath == "" {
		configPath = ".pre-commit-config.yaml"
	}
	return &HookManager{binary: binary, configPath: configPath}
}

// InstallHooks installs a script for each hook type into the repository's
// hooks directory. A foreign script already present is kept as
// <name>.pre-hookcfg and chained from the new script.
func (m *HookManager) InstallHooks(ctx context.Context, repoPath string, hookTypes []string) ([]string, error) {
	if err := validateScriptValue(m.binary); err != nil {
		return nil, fmt.Errorf("binary path: %w", err)
	}
	if err := validateScriptValue(m.configPath); err != nil {
		return nil, fmt.Errorf("config path: %w", err)
	}
	hooksDir, err := m.hooksDir(ctx, repoPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return nil, fmt.Errorf("create hooks directory: %w", err)
	}

	var installed []string
	for _, hookName := range hookTypes {
		path, err := m.installHook(hooksDir, hookName)
		if err != nil {
			return installed, fmt.Errorf("install %s hook: %w", hookName, err)
		}
		installed = append(installed, path)
	}
	return installed, nil
}

// UninstallHooks removes managed scripts for the given hook types and
// restores any backed up foreign scripts.
func (m *HookManager) UninstallHooks(ctx context.Context, repoPath string, hookTypes []string) ([]string, error) {
	hooksDir, err := m.hooksDir(ctx, repoPath)
	if err != nil {
		return nil, err
	}

	logger := logging.NewLogger("git")
	var removed []string
	for _, hookName := range hookTypes {
		hookPath := filepath.Join(hooksDir, hookName)
		if !IsManagedHook(hookPath) {
			continue
		}
		if err := os.Remove(hookPath); err != nil && !os.IsNotExist(err) {
			return removed, fmt.Errorf("remove %s hook: %w", hookName, err)
		}
		removed = append(removed, hookPath)

		backup := hookPath + backupSuffix
		if _, err := os.Stat(backup); err == nil {
			if err := os.Rename(backup, hookPath); err != nil {
				return removed, fmt.Errorf("restore %s hook: %w", hookName, err)
			}
			logger.WithField("hook", hookName).Debug("Restored previous hook")
		}
	}
	return removed, nil
}

// validateScriptValue checks a value interpolated into a double-quoted
// shell string.
func validateScriptValue(v string) error {
	if err := cmdBuilder.Validate("fileName", v); err != nil {
		return err
	}
	if strings.ContainsAny(v, "\"\\\n") {
		return fmt.Errorf("path contains invalid characters")
	}
	return nil
}

func (m *HookManager) hooksDir(ctx context.Context, repoPath string) (string, error) {
	if dir, err := HooksDir(ctx, repoPath); err == nil {
		return dir, nil
	}
	return filepath.Join(repoPath, ".git", "hooks"), nil
}

func (m *HookManager) installHook(hooksDir, hookName string) (string, error) {
	if err := cmdBuilder.Validate("hookID", hookName); err != nil {
		return "", err
	}
	hookPath := filepath.Join(hooksDir, hookName)

	if _, err := os.Stat(hookPath); err == nil && !IsManagedHook(hookPath) {
		backupPath := hookPath + backupSuffix
		if err := os.Rename(hookPath, backupPath); err != nil {
			return "", fmt.Errorf("backup existing hook: %w", err)
		}
		logging.NewLogger("git").WithField("backup", backupPath).Info("Backed up existing hook")
	}

	var buf bytes.Buffer
	data := struct {
		Marker       string
		HookName     string
		Binary       string
		Config       string
		BackupSuffix string
	}{
		Marker:       hookMarker,
		HookName:     hookName,
		Binary:       m.binary,
		Config:       m.configPath,
		BackupSuffix: backupSuffix,
	}
	if err := hookTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	// #nosec G306 - Git hooks need to be executable
	if err := os.WriteFile(hookPath, buf.Bytes(), 0o755); err != nil {
		return "", fmt.Errorf("write hook file: %w", err)
	}
	return hookPath, nil
}

// IsManagedHook reports whether the script at hookPath was written by
// HookManager.
func IsManagedHook(hookPath string) bool {
	content, err := os.ReadFile(hookPath)
	if err != nil {
		return false
	}
	return bytes.Contains(content, []byte(hookMarker))
}
