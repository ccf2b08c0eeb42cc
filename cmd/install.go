package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/grovetools/hookcfg/cli"
	"github.com/grovetools/hookcfg/config"
	"github.com/grovetools/hookcfg/errors"
	"github.com/grovetools/hookcfg/git"
	"github.com/grovetools/hookcfg/logging"
	"github.com/grovetools/hookcfg/theme"
	"github.com/spf13/cobra"
)

const defaultHookType = "pre-commit"

// hookTypes picks the git hooks to manage: the flag, then the
// configuration's default_install_hook_types, then pre-commit.
func hookTypes(flag []string, cfg *config.Config) []string {
	if len(flag) > 0 {
		return flag
	}
	if cfg != nil && len(cfg.DefaultInstallHookTypes) > 0 {
		return cfg.DefaultInstallHookTypes
	}
	return []string{defaultHookType}
}

func hookManager(path string) *git.HookManager {
	binary, err := os.Executable()
	if err != nil {
		binary = ""
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return git.NewHookManager(binary, path)
}

func NewInstallCmd() *cobra.Command {
	var types []string

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install git hooks that validate the configuration",
		Long: `Install git hook scripts that validate the configuration before handing
off to pre-commit. An existing foreign hook is kept and chained.

Examples:
  hookcfg install
  hookcfg install --hook-type pre-commit --hook-type pre-push`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cli.Context(cmd)
			cfg, path, err := cli.LoadConfig(cmd)
			if err != nil {
				return err
			}
			for _, t := range types {
				if !config.IsHookType(t) {
					return errors.New(errors.ErrCodeInvalidInput, fmt.Sprintf("unknown hook type %q", t))
				}
			}
			root, err := git.GetGitRoot(ctx, filepath.Dir(path))
			if err != nil {
				return err
			}

			installed, err := hookManager(path).InstallHooks(ctx, root, hookTypes(types, cfg))
			if err != nil {
				return err
			}
			log := logging.NewUnifiedLogger("install")
			for _, p := range installed {
				log.Success("installed hook").
					Field("path", p).
					Pretty(theme.DefaultTheme.Success.Render(theme.IconSuccess) + " installed " + p).
					Log(ctx)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&types, "hook-type", "t", nil, "Git hook to install (repeatable)")
	return cmd
}

func NewUninstallCmd() *cobra.Command {
	var types []string

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove git hooks installed by hookcfg",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cli.Context(cmd)
			path, err := cli.ConfigPath(cmd)
			if err != nil {
				return err
			}
			// A broken configuration must not prevent removing the hooks.
			cfg, _ := config.Load(path)

			root, err := git.GetGitRoot(ctx, filepath.Dir(path))
			if err != nil {
				return err
			}
			removed, err := hookManager(path).UninstallHooks(ctx, root, hookTypes(types, cfg))
			if err != nil {
				return err
			}
			log := logging.NewUnifiedLogger("install")
			if len(removed) == 0 {
				log.Info("no managed hooks found").Log(ctx)
				return nil
			}
			for _, p := range removed {
				log.Success("removed hook").
					Field("path", p).
					Pretty(theme.DefaultTheme.Success.Render(theme.IconSuccess) + " removed " + p).
					Log(ctx)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&types, "hook-type", "t", nil, "Git hook to remove (repeatable)")
	return cmd
}
