package logging

import (
	"context"
	"fmt"
	"regexp"

	"github.com/grovetools/hookcfg/theme"
	"github.com/sirupsen/logrus"
)

// ansiRegex matches ANSI escape sequences for stripping
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// UnifiedLogger creates log entries that are written both as styled
// user-facing output and as structured logs.
type UnifiedLogger struct {
	component  string
	pretty     *PrettyLogger
	structured *logrus.Entry
}

// NewUnifiedLogger creates a new unified logger for a specific component.
func NewUnifiedLogger(component string) *UnifiedLogger {
	return &UnifiedLogger{
		component:  component,
		pretty:     NewPrettyLogger(),
		structured: NewLogger(component),
	}
}

func (u *UnifiedLogger) entry(level logrus.Level, msg, icon string, fields logrus.Fields) *LogEntry {
	if fields == nil {
		fields = logrus.Fields{}
	}
	return &LogEntry{logger: u, msg: msg, level: level, fields: fields, icon: icon}
}

// Debug returns a LogEntry at DEBUG level.
func (u *UnifiedLogger) Debug(msg string) *LogEntry {
	return u.entry(logrus.DebugLevel, msg, "", nil)
}

// Info returns a LogEntry at INFO level.
func (u *UnifiedLogger) Info(msg string) *LogEntry {
	return u.entry(logrus.InfoLevel, msg, "", nil)
}

// Warn returns a LogEntry at WARN level.
func (u *UnifiedLogger) Warn(msg string) *LogEntry {
	return u.entry(logrus.WarnLevel, msg, theme.IconWarning, nil)
}

// Error returns a LogEntry at ERROR level.
func (u *UnifiedLogger) Error(msg string) *LogEntry {
	return u.entry(logrus.ErrorLevel, msg, theme.IconError, nil)
}

// Success returns an INFO entry tagged status=success.
func (u *UnifiedLogger) Success(msg string) *LogEntry {
	return u.entry(logrus.InfoLevel, msg, theme.IconSuccess, logrus.Fields{"status": "success"})
}

// Status returns an INFO entry tagged status=info.
func (u *UnifiedLogger) Status(msg string) *LogEntry {
	return u.entry(logrus.InfoLevel, msg, theme.IconInfo, logrus.Fields{"status": "info"})
}

// LogEntry accumulates options before writing to both outputs.
// Call Log(ctx) to emit it.
type LogEntry struct {
	logger     *UnifiedLogger
	msg        string
	level      logrus.Level
	fields     logrus.Fields
	icon       string
	prettyMsg  string
	prettyOnly bool
	structOnly bool
	err        error
}

// Field adds a structured field (chainable).
func (e *LogEntry) Field(key string, value interface{}) *LogEntry {
	e.fields[key] = value
	return e
}

// Fields adds multiple structured fields (chainable).
func (e *LogEntry) Fields(fields map[string]interface{}) *LogEntry {
	for k, v := range fields {
		e.fields[k] = v
	}
	return e
}

// Err attaches an error (chainable).
func (e *LogEntry) Err(err error) *LogEntry {
	if err != nil {
		e.err = err
		e.fields["error"] = err.Error()
	}
	return e
}

// Pretty sets a custom styled string for the user-facing output (chainable).
// The plain message is still used for the structured log.
func (e *LogEntry) Pretty(styled string) *LogEntry {
	e.prettyMsg = styled
	return e
}

// PrettyOnly skips structured output (chainable).
func (e *LogEntry) PrettyOnly() *LogEntry {
	e.prettyOnly = true
	return e
}

// StructuredOnly skips pretty output (chainable).
func (e *LogEntry) StructuredOnly() *LogEntry {
	e.structOnly = true
	return e
}

// Log writes the entry. Pretty output goes to the writer attached to ctx.
func (e *LogEntry) Log(ctx context.Context) {
	prettyOutput := e.computePrettyOutput()

	if !e.structOnly && (e.level != logrus.DebugLevel || e.logger.structured.Logger.IsLevelEnabled(logrus.DebugLevel)) {
		fmt.Fprintln(GetWriter(ctx), prettyOutput)
	}

	if !e.prettyOnly {
		e.fields["pretty_text"] = ansiRegex.ReplaceAllString(prettyOutput, "")
		e.logger.structured.WithFields(e.fields).Log(e.level, e.msg)
	}
}

func (e *LogEntry) computePrettyOutput() string {
	if e.prettyMsg != "" {
		return e.prettyMsg
	}
	output := e.msg
	if e.icon != "" {
		output = e.icon + " " + e.msg
	}
	styles := DefaultPrettyStyles()
	switch e.level {
	case logrus.WarnLevel:
		return styles.Warning.Render(output)
	case logrus.ErrorLevel:
		return styles.Error.Render(output)
	case logrus.DebugLevel:
		return styles.Key.Render(output)
	}
	switch e.icon {
	case theme.IconSuccess:
		return styles.Success.Render(output)
	case theme.IconInfo:
		return styles.Info.Render(output)
	}
	return output
}

// Component returns the component name for this logger.
func (u *UnifiedLogger) Component() string {
	return u.component
}

// WithStructured returns the underlying logrus entry.
func (u *UnifiedLogger) WithStructured() *logrus.Entry {
	return u.structured
}

// WithPretty returns the underlying PrettyLogger.
func (u *UnifiedLogger) WithPretty() *PrettyLogger {
	return u.pretty
}
