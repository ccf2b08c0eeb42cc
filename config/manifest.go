package config

import (
	"fmt"

	"github.com/grovetools/hookcfg/errors"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ManifestFile is the file an external repository publishes its hooks in.
const ManifestFile = ".pre-commit-hooks.yaml"

// ParseManifest parses a repository's published hook definitions.
func ParseManifest(data []byte) ([]Hook, error) {
	var hooks []Hook
	if err := yaml.Unmarshal(data, &hooks); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse hook manifest")
	}
	for i, h := range hooks {
		if h.ID == "" {
			return nil, errors.ConfigInvalid(fmt.Sprintf("manifest hook %d has no id", i))
		}
		if h.Entry == "" || h.Language == "" {
			return nil, errors.ConfigInvalid(fmt.Sprintf("manifest hook %q must set entry and language", h.ID))
		}
	}
	return hooks, nil
}

// MergeManifest resolves a hook reference against a repository's manifest.
// Keys set on the reference override the published definition.
func MergeManifest(repo string, manifest []Hook, ref Hook) (Hook, error) {
	var base *Hook
	for i := range manifest {
		if manifest[i].ID == ref.ID {
			base = &manifest[i]
			break
		}
	}
	if base == nil {
		return Hook{}, errors.HookNotFound(repo, ref.ID)
	}

	merged, err := toMap(*base)
	if err != nil {
		return Hook{}, err
	}
	overrides, err := toMap(ref)
	if err != nil {
		return Hook{}, err
	}
	for k, v := range overrides {
		merged[k] = v
	}

	var out Hook
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &out,
		TagName:     "mapstructure",
		ErrorUnused: true,
	})
	if err != nil {
		return Hook{}, errors.Wrap(err, errors.ErrCodeInternal, "failed to create decoder")
	}
	if err := decoder.Decode(merged); err != nil {
		return Hook{}, errors.Wrap(err, errors.ErrCodeConfigInvalid, fmt.Sprintf("failed to merge hook %q", ref.ID))
	}
	return out, nil
}

// toMap converts a hook into a map holding only the keys that are set.
func toMap(h Hook) (map[string]interface{}, error) {
	data, err := yaml.Marshal(h)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to encode hook")
	}
	m := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to decode hook")
	}
	return m, nil
}
