package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/grovetools/hookcfg/errors"
	"github.com/grovetools/hookcfg/logging"
	"github.com/grovetools/hookcfg/pkg/profiling"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ConfigNames lists the file names searched for, in precedence order.
var ConfigNames = []string{
	".pre-commit-config.yaml",
	".pre-commit-config.yml",
	".pre-commit-config.toml",
}

// Load reads and parses a configuration file. The format follows the file
// extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	cfg, err := LoadFromBytes(data, FormatForPath(path))
	if err != nil {
		if e, ok := errors.As(err); ok {
			return nil, e.WithDetail("path", path)
		}
		return nil, err
	}
	return cfg, nil
}

// LoadFrom finds the configuration file starting at startDir and loads it.
func LoadFrom(startDir string) (*Config, string, error) {
	path, err := FindConfigFile(startDir)
	if err != nil {
		return nil, "", err
	}
	logging.NewLogger("config").WithField("path", path).Debug("Loading configuration")
	cfg, err := Load(path)
	return cfg, path, err
}

// LoadFromBytes parses and validates a configuration document. Parsing,
// schema validation and semantic validation run in that order; the first
// stage to fail determines the error code.
func LoadFromBytes(data []byte, format Format) (*Config, error) {
	span := profiling.Start("config.parse")
	raw, err := decodeRaw(data, format)
	span.Stop()
	if err != nil {
		return nil, err
	}

	validator, err := NewSchemaValidator()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to create schema validator")
	}
	span = profiling.Start("config.schema")
	err = validator.Validate(raw)
	span.Stop()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSchemaValidation, "schema validation failed")
	}

	cfg, err := decodeTyped(data, format)
	if err != nil {
		return nil, err
	}

	cfg.SetDefaults()

	span = profiling.Start("config.validate")
	defer span.Stop()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decodeRaw parses the document into JSON-compatible generic values.
func decodeRaw(data []byte, format Format) (interface{}, error) {
	var raw interface{}
	switch format {
	case FormatTOML:
		var m map[string]interface{}
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse TOML configuration")
		}
		raw = m
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse JSON configuration")
		}
		return raw, nil
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse YAML configuration")
		}
	}
	if raw == nil {
		return nil, errors.ConfigInvalid("configuration document is empty")
	}

	// Round-trip through JSON so the schema sees plain JSON values.
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "configuration is not representable as JSON")
	}
	var normalized interface{}
	if err := json.Unmarshal(jsonData, &normalized); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "configuration is not representable as JSON")
	}
	return normalized, nil
}

func decodeTyped(data []byte, format Format) (*Config, error) {
	var cfg Config
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to decode TOML configuration")
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to decode JSON configuration")
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			if err == io.EOF {
				return nil, errors.ConfigInvalid("configuration document is empty")
			}
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to decode YAML configuration")
		}
	}
	return &cfg, nil
}

// Marshal serializes the configuration in the given format.
func Marshal(cfg *Config, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		return toml.Marshal(cfg)
	case FormatJSON:
		return json.MarshalIndent(cfg, "", "  ")
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, fmt.Sprintf("unsupported format %q", format))
	}
}

// FindConfigFile searches startDir and its parents for a configuration
// file. The search stops at the enclosing git repository root.
func FindConfigFile(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInvalidInput, "failed to resolve start directory")
	}

	for {
		for _, name := range ConfigNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", errors.ConfigNotFound(startDir).WithDetail("searched", strings.Join(ConfigNames, ", "))
}
