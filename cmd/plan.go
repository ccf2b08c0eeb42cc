package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/shlex"
	"github.com/grovetools/hookcfg/cli"
	"github.com/grovetools/hookcfg/command"
	"github.com/grovetools/hookcfg/errors"
	"github.com/grovetools/hookcfg/filter"
	"github.com/grovetools/hookcfg/git"
	"github.com/grovetools/hookcfg/theme"
	"github.com/spf13/cobra"
)

// fileSource selects the candidate files for planning.
type fileSource struct {
	allFiles bool
	files    []string
	fromRef  string
	toRef    string
}

func (s fileSource) validate() error {
	set := 0
	if s.allFiles {
		set++
	}
	if len(s.files) > 0 {
		set++
	}
	if s.fromRef != "" || s.toRef != "" {
		set++
		if s.fromRef == "" || s.toRef == "" {
			return errors.New(errors.ErrCodeInvalidInput, "--from-ref and --to-ref must be used together")
		}
	}
	if set > 1 {
		return errors.New(errors.ErrCodeInvalidInput, "--all-files, --files and --from-ref/--to-ref are mutually exclusive")
	}
	return nil
}

// collect returns the work tree root and the candidate paths relative to it.
func (s fileSource) collect(ctx context.Context) (string, []string, error) {
	cwd, err := workingDir()
	if err != nil {
		return "", nil, err
	}

	if len(s.files) > 0 {
		root, err := git.GetGitRoot(ctx, cwd)
		if err != nil {
			root = cwd
		}
		var rel []string
		for _, f := range s.files {
			abs := f
			if !filepath.IsAbs(abs) {
				abs = filepath.Join(cwd, f)
			}
			r, err := filepath.Rel(root, abs)
			if err != nil {
				return "", nil, err
			}
			r = filepath.ToSlash(r)
			if err := command.NewSafeBuilder().Validate("fileName", r); err != nil {
				return "", nil, errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid --files entry").
					WithDetail("file", f)
			}
			rel = append(rel, r)
		}
		return root, rel, nil
	}

	root, err := git.GetGitRoot(ctx, cwd)
	if err != nil {
		return "", nil, err
	}
	var files []string
	switch {
	case s.allFiles:
		files, err = git.AllFiles(ctx, root)
	case s.fromRef != "":
		files, err = git.ChangedFiles(ctx, root, s.fromRef, s.toRef)
	default:
		files, err = git.StagedFiles(ctx, root)
	}
	return root, files, err
}

func NewPlanCmd() *cobra.Command {
	var (
		src     fileSource
		stage   string
		hooks   []string
		resolve bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show which hooks apply to which files",
		Long: `Show which hooks apply to which files and the command line each would
be invoked with. Nothing is executed.

By default the staged files are considered. Hooks listed in the SKIP
environment variable (comma-separated ids) are reported as skipped, and
paths matched by .pre-commit-ignore at the repository root are dropped.
Hooks without stages apply to every stage, manual included.

Examples:
  hookcfg plan
  hookcfg plan --all-files --hook 'cargo-*'
  hookcfg plan --from-ref origin/main --to-ref HEAD --stage pre-push
  hookcfg plan --files src/main.rs --resolve --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := src.validate(); err != nil {
				return err
			}
			ctx := cli.Context(cmd)

			cfg, _, err := loadConfig(ctx, cmd, resolve)
			if err != nil {
				return err
			}
			root, files, err := src.collect(ctx)
			if err != nil {
				return err
			}
			selector, err := filter.NewSelector(hooks)
			if err != nil {
				return errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid --hook pattern")
			}
			ignorer, err := filter.LoadIgnorer(root)
			if err != nil {
				return errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read "+filter.IgnoreFile)
			}

			plan, err := filter.Plan(cfg, files, filter.Options{
				Root:     root,
				Stage:    stage,
				Selector: selector,
				Skip:     filter.ParseSkip(os.Getenv("SKIP")),
				Ignorer:  ignorer,
			})
			if err != nil {
				return err
			}

			if cli.GetOptions(cmd).JSONOutput {
				if plan == nil {
					plan = []filter.Planned{}
				}
				return writeJSON(cmd.OutOrStdout(), plan)
			}
			printPlan(cmd, plan)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&src.allFiles, "all-files", "a", false, "Consider every tracked file")
	cmd.Flags().StringSliceVar(&src.files, "files", nil, "Consider only these files")
	cmd.Flags().StringVar(&src.fromRef, "from-ref", "", "Consider files changed since this ref")
	cmd.Flags().StringVar(&src.toRef, "to-ref", "", "Consider files changed up to this ref")
	cmd.Flags().StringVar(&stage, "stage", filter.DefaultStage, "Git hook stage to plan for")
	cmd.Flags().StringSliceVar(&hooks, "hook", nil, "Only plan hooks whose id or alias matches these globs")
	cmd.Flags().BoolVar(&resolve, "resolve", false, "Merge external hooks with their published definitions")
	return cmd
}

func printPlan(cmd *cobra.Command, plan []filter.Planned) {
	t := theme.DefaultTheme
	out := cmd.OutOrStdout()
	for _, p := range plan {
		if p.Runs() {
			fmt.Fprintf(out, "%s %s %s\n", t.Success.Render(theme.IconSuccess), t.Bold.Render(p.ID), t.Muted.Render(fmt.Sprintf("(%d file(s))", len(p.Files))))
			fmt.Fprintf(out, "    %s\n", t.Accent.Render(quoteArgv(p.Argv)))
			continue
		}
		fmt.Fprintf(out, "%s %s %s\n", t.Muted.Render(theme.IconSkipped), p.ID, t.Muted.Render("skipped: "+string(p.Skip)))
	}
}

// quoteArgv renders argv as a shell command line. Each argument is checked
// to survive a round trip through the same splitter used for entries.
func quoteArgv(argv []string) string {
	parts := make([]string, len(argv))
	for i, a := range argv {
		parts[i] = a
		if split, err := shlex.Split(a); err != nil || len(split) != 1 || split[0] != a {
			parts[i] = "'" + strings.ReplaceAll(a, "'", `'\''`) + "'"
		}
	}
	return strings.Join(parts, " ")
}
