package cmd

import (
	"context"
	"os"

	"github.com/grovetools/hookcfg/cli"
	"github.com/grovetools/hookcfg/config"
	"github.com/grovetools/hookcfg/repo"
	"github.com/spf13/cobra"
)

// loadConfig loads the configuration and, when resolve is set, merges
// external and meta hooks with their published definitions.
func loadConfig(ctx context.Context, cmd *cobra.Command, resolve bool) (*config.Config, string, error) {
	cfg, path, err := cli.LoadConfig(cmd)
	if err != nil {
		return nil, "", err
	}
	if !resolve {
		return cfg, path, nil
	}
	resolved, err := repo.NewResolver(repo.NewStore("", nil)).Resolve(ctx, cfg)
	if err != nil {
		return nil, "", err
	}
	return resolved, path, nil
}

func workingDir() (string, error) {
	return os.Getwd()
}
