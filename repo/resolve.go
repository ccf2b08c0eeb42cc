package repo

import (
	"context"

	"github.com/grovetools/hookcfg/config"
	"github.com/grovetools/hookcfg/pkg/profiling"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds parallel repository fetches.
const DefaultConcurrency = 4

// metaHooks are the definitions behind the "meta" repository. Their entries
// call back into this binary.
var metaHooks = []config.Hook{
	{
		ID:            "check-hooks-apply",
		Name:          "Check hooks apply to the repository",
		Entry:         "hookcfg meta check-hooks-apply",
		Language:      "system",
		Files:         `^\.pre-commit-config\.(yaml|yml|toml)$`,
		PassFilenames: boolPtr(false),
		AlwaysRun:     boolPtr(true),
	},
	{
		ID:            "check-useless-excludes",
		Name:          "Check for useless excludes",
		Entry:         "hookcfg meta check-useless-excludes",
		Language:      "system",
		Files:         `^\.pre-commit-config\.(yaml|yml|toml)$`,
		PassFilenames: boolPtr(false),
		AlwaysRun:     boolPtr(true),
	},
	{
		ID:       "identity",
		Name:     "identity",
		Entry:    "hookcfg meta identity",
		Language: "system",
		Verbose:  boolPtr(true),
	},
}

func boolPtr(b bool) *bool { return &b }

// MetaManifest returns the built-in meta hook definitions.
func MetaManifest() []config.Hook {
	return append([]config.Hook(nil), metaHooks...)
}

// Resolver turns hook references into complete definitions.
type Resolver struct {
	Store       *Store
	Concurrency int
}

// NewResolver creates a resolver backed by store.
func NewResolver(store *Store) *Resolver {
	return &Resolver{Store: store, Concurrency: DefaultConcurrency}
}

// Resolve returns a copy of cfg in which every external and meta hook is
// merged with its published definition. Local hooks are returned as is.
// Repositories are fetched concurrently; the first failure cancels the rest.
func (r *Resolver) Resolve(ctx context.Context, cfg *config.Config) (*config.Config, error) {
	defer profiling.Start("repo.resolve").Stop()

	out := *cfg
	out.Repos = make([]config.Repo, len(cfg.Repos))

	limit := r.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, src := range cfg.Repos {
		out.Repos[i] = config.Repo{Repo: src.Repo, Rev: src.Rev}
		if src.IsLocal() {
			out.Repos[i].Hooks = append([]config.Hook(nil), src.Hooks...)
			continue
		}
		g.Go(func() error {
			var manifest []config.Hook
			if src.IsMeta() {
				manifest = metaHooks
			} else {
				var err error
				manifest, err = r.Store.Manifest(ctx, src.Repo, src.Rev)
				if err != nil {
					return err
				}
			}
			hooks := make([]config.Hook, len(src.Hooks))
			for j, ref := range src.Hooks {
				merged, err := config.MergeManifest(src.Repo, manifest, ref)
				if err != nil {
					return err
				}
				hooks[j] = merged
			}
			out.Repos[i].Hooks = hooks
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out.SetDefaults()
	return &out, nil
}
