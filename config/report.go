package config

// SourceSummary describes one hook source.
type SourceSummary struct {
	Repo    string   `json:"repo"`
	Rev     string   `json:"rev,omitempty"`
	Kind    string   `json:"kind"`
	HookIDs []string `json:"hooks"`
}

// Report summarizes a loaded configuration.
type Report struct {
	Path         string          `json:"path,omitempty"`
	Sources      []SourceSummary `json:"sources"`
	LocalHookIDs []string        `json:"local_hooks"`
	HookCount    int             `json:"hook_count"`
}

// Summary builds a Report for the configuration.
func (c *Config) Summary() Report {
	r := Report{
		Sources:      make([]SourceSummary, 0, len(c.Repos)),
		LocalHookIDs: c.LocalHookIDs(),
	}
	for _, repo := range c.Repos {
		s := SourceSummary{Repo: repo.Repo, Rev: repo.Rev, Kind: repo.Kind()}
		for _, hook := range repo.Hooks {
			s.HookIDs = append(s.HookIDs, hook.ID)
		}
		r.HookCount += len(repo.Hooks)
		r.Sources = append(r.Sources, s)
	}
	if r.LocalHookIDs == nil {
		r.LocalHookIDs = []string{}
	}
	return r
}
