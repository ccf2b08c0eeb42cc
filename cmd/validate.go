package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grovetools/hookcfg/cli"
	"github.com/grovetools/hookcfg/config"
	"github.com/grovetools/hookcfg/logging"
	"github.com/grovetools/hookcfg/theme"
	"github.com/spf13/cobra"
)

// validateResult is the --json output of validate.
type validateResult struct {
	Valid bool `json:"valid"`
	config.Report
}

func NewValidateCmd() *cobra.Command {
	var watch, quiet bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		Long: `Validate the configuration file.

The document is parsed, checked against the JSON Schema and then against
the semantic rules: local hook ids are unique, entries are well-formed
command lines and external repositories pin a non-empty rev. All problems
are reported together.

Examples:
  hookcfg validate
  hookcfg validate -c ci/.pre-commit-config.yaml --json
  hookcfg validate --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cli.ConfigPath(cmd)
			if err != nil {
				return err
			}
			ctx := cli.Context(cmd)
			jsonOut := cli.GetOptions(cmd).JSONOutput

			if !watch {
				return runValidate(ctx, cmd, path, quiet, jsonOut)
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watchValidate(ctx, cmd, path, quiet, jsonOut)
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "Re-validate whenever the file changes")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print nothing on success")
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, path string, quiet, jsonOut bool) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	log := logging.NewUnifiedLogger("validate")
	report := cfg.Summary()
	report.Path = path
	if jsonOut {
		return writeJSON(cmd.OutOrStdout(), validateResult{Valid: true, Report: report})
	}

	entry := log.Success("configuration is valid").
		Field("path", path).
		Field("hooks", report.HookCount).
		Field("sources", len(report.Sources))
	if quiet {
		entry = entry.StructuredOnly()
	}
	entry.Log(ctx)

	if quiet {
		return nil
	}
	t := theme.DefaultTheme
	for _, src := range report.Sources {
		label := src.Repo
		if src.Rev != "" {
			label += "@" + src.Rev
		}
		log.Info(label).
			Pretty("  " + t.Muted.Render(theme.IconBullet) + " " + label + " " + t.Muted.Render("("+src.Kind+")")).
			PrettyOnly().
			Log(ctx)
	}
	return nil
}

func watchValidate(ctx context.Context, cmd *cobra.Command, path string, quiet, jsonOut bool) error {
	handler := cli.NewErrorHandler(cli.GetOptions(cmd).Verbose).WithWriter(cmd.ErrOrStderr())
	check := func(p string) {
		if err := runValidate(ctx, cmd, p, quiet, jsonOut); err != nil {
			handler.Handle(err)
		}
	}

	check(path)

	log := logging.NewUnifiedLogger("validate")
	w, err := config.NewWatcher(path, config.DefaultDebounce, check)
	if err != nil {
		return err
	}
	log.Info("watching for changes").
		Field("path", path).
		Pretty(theme.DefaultTheme.Muted.Render("Watching " + path + " (Ctrl-C to stop)")).
		Log(ctx)
	w.Start(ctx)
	return nil
}
