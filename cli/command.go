package cli

import (
	"context"
	"os"

	"github.com/grovetools/hookcfg/config"
	"github.com/grovetools/hookcfg/logging"
	"github.com/grovetools/hookcfg/pkg/paths"
	"github.com/grovetools/hookcfg/pkg/profiling"
	"github.com/grovetools/hookcfg/theme"
	"github.com/spf13/cobra"
)

// CommandOptions holds the options shared by every command
type CommandOptions struct {
	ConfigFile string
	Verbose    bool
	JSONOutput bool
	NoColor    bool
}

// NewStandardCommand creates a root command with the standard flags and
// logging setup.
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts := GetOptions(cmd)
			logging.Configure(logging.ConfigFromEnv())
			logging.SetVerbose(opts.Verbose)
			theme.ConfigureColor(opts.NoColor)
			profiling.PreRun(cmd)
		},
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to the configuration file")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	profiling.AddFlags(cmd)

	SetStyledHelp(cmd)

	return cmd
}

// GetOptions extracts common options from a command
func GetOptions(cmd *cobra.Command) CommandOptions {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	noColor, _ := cmd.Flags().GetBool("no-color")

	return CommandOptions{
		ConfigFile: configFile,
		Verbose:    verbose,
		JSONOutput: jsonOutput,
		NoColor:    noColor,
	}
}

// ConfigPath returns the configuration file to use: the --config flag when
// set, otherwise the nearest configuration found from the working directory.
func ConfigPath(cmd *cobra.Command) (string, error) {
	if opts := GetOptions(cmd); opts.ConfigFile != "" {
		return paths.Expand(opts.ConfigFile)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return config.FindConfigFile(cwd)
}

// LoadConfig resolves and loads the configuration for a command.
func LoadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	path, err := ConfigPath(cmd)
	if err != nil {
		return nil, "", err
	}
	cfg, err := config.Load(path)
	return cfg, path, err
}

// Context returns the command context with pretty output routed to the
// command's stdout.
func Context(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logging.WithWriter(ctx, cmd.OutOrStdout())
}

// Execute runs the root command, reports any error and returns the process
// exit code.
func Execute(root *cobra.Command) int {
	ApplyStyledHelpRecursive(root)
	cmd, err := root.ExecuteC()
	if cmd != nil {
		defer profiling.Summarize(cmd.ErrOrStderr())
	}
	if err == nil {
		return 0
	}
	if cmd == nil {
		cmd = root
	}
	NewErrorHandler(GetOptions(cmd).Verbose).WithWriter(cmd.ErrOrStderr()).Handle(err)
	return ExitCode(err)
}
