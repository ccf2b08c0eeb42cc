package logging

import (
	"os"
	"strings"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLogLevel  = "HOOKCFG_LOG_LEVEL"
	EnvLogFormat = "HOOKCFG_LOG_FORMAT"
	EnvLogFile   = "HOOKCFG_LOG_FILE"
	EnvLogCaller = "HOOKCFG_LOG_CALLER"
	EnvLogStderr = "HOOKCFG_LOG_STDERR"
)

// Config defines how structured loggers are built.
type Config struct {
	// Level is the minimum log level to output (e.g., "debug", "info", "warn", "error").
	Level string `yaml:"level"`

	// ReportCaller, if true, includes the file, line, and function name in the log output.
	ReportCaller bool `yaml:"report_caller"`

	// File configures logging to a file.
	File FileSinkConfig `yaml:"file"`

	// Format configures the appearance of the log output.
	Format FormatConfig `yaml:"format"`
}

// FileSinkConfig configures the file logging sink.
type FileSinkConfig struct {
	Enabled bool `yaml:"enabled"`
	// Path is the full path to the log file.
	Path string `yaml:"path"`
}

// FormatConfig controls the log output format.
type FormatConfig struct {
	// Preset can be "default" (rich text), "simple" (minimal text), or "json".
	Preset string `yaml:"preset"`
	// DisableTimestamp disables the timestamp from the "default" and "simple" formats.
	DisableTimestamp bool `yaml:"disable_timestamp"`
	// DisableComponent disables the component name from the "default" and "simple" formats.
	DisableComponent bool `yaml:"disable_component"`
	// StructuredToStderr controls when structured logs are sent to stderr.
	// Can be "auto" (default), "always", or "never".
	StructuredToStderr string `yaml:"structured_to_stderr"`
}

// ConfigFromEnv builds a Config from HOOKCFG_LOG_* variables.
func ConfigFromEnv() Config {
	cfg := Config{
		Level:        os.Getenv(EnvLogLevel),
		ReportCaller: os.Getenv(EnvLogCaller) == "true",
	}
	cfg.Format.Preset = strings.ToLower(os.Getenv(EnvLogFormat))
	cfg.Format.StructuredToStderr = strings.ToLower(os.Getenv(EnvLogStderr))
	if path := os.Getenv(EnvLogFile); path != "" {
		cfg.File = FileSinkConfig{Enabled: true, Path: path}
	}
	return cfg
}
