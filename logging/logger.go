package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/grovetools/hookcfg/pkg/paths"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex

	activeConfig    *Config
	verboseOverride bool
)

// Configure replaces the logging configuration used for loggers created after
// the call and drops the per-component cache.
func Configure(cfg Config) {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	c := cfg
	activeConfig = &c
	loggers = make(map[string]*logrus.Entry)
}

// SetVerbose forces debug level and stderr output on every logger,
// including ones already handed out.
func SetVerbose(verbose bool) {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	verboseOverride = verbose
	if !verbose {
		return
	}
	for _, entry := range loggers {
		entry.Logger.SetLevel(logrus.DebugLevel)
		entry.Logger.SetOutput(GetGlobalOutput())
	}
}

// NewLogger creates and returns a pre-configured logger for a specific component.
// It uses a singleton pattern per component to avoid re-initializing.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	var logCfg Config
	if activeConfig != nil {
		logCfg = *activeConfig
	} else {
		logCfg = ConfigFromEnv()
	}

	logger := logrus.New()

	// Configure Level
	levelStr := "info"
	if logCfg.Level != "" {
		levelStr = logCfg.Level
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	if verboseOverride {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	if logCfg.ReportCaller {
		logger.SetReportCaller(true)
	}

	// Configure Formatter
	switch logCfg.Format.Preset {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "simple":
		logger.SetFormatter(&TextFormatter{Config: FormatConfig{
			DisableTimestamp: true,
			DisableComponent: true,
		}})
	default:
		logger.SetFormatter(&TextFormatter{Config: logCfg.Format})
	}

	var writers []io.Writer

	if logCfg.File.Enabled && logCfg.File.Path != "" {
		logFilePath, err := paths.Expand(logCfg.File.Path)
		if err != nil {
			logFilePath = logCfg.File.Path
		}
		dir := filepath.Dir(logFilePath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			logger.Warnf("Failed to create log directory %s: %v", dir, err)
		} else {
			file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err == nil {
				writers = append(writers, file)
			} else {
				logger.Warnf("Failed to open log file %s: %v", logFilePath, err)
			}
		}
	}

	if shouldLogToStderr(logCfg.Format.StructuredToStderr, logger.GetLevel()) {
		writers = append(writers, GetGlobalOutput())
	}

	switch len(writers) {
	case 0:
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(io.MultiWriter(writers...))
	}

	entry := logger.WithField("component", component)
	loggers[component] = entry
	return entry
}

// shouldLogToStderr applies the structured_to_stderr mode. In "auto" mode,
// structured logs reach stderr when debugging or when stderr is not a terminal
// (piped output, CI), so interactive runs only show the pretty output.
func shouldLogToStderr(mode string, level logrus.Level) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if verboseOverride || level >= logrus.DebugLevel {
		return true
	}
	interactive := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	return !interactive
}
