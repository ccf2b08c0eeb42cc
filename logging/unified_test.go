package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/grovetools/hookcfg/theme"
	"github.com/sirupsen/logrus"
)

func TestNewUnifiedLogger(t *testing.T) {
	resetLoggers(t)
	ulog := NewUnifiedLogger("test-component")

	if ulog.Component() != "test-component" {
		t.Errorf("expected component 'test-component', got '%s'", ulog.Component())
	}
	if ulog.WithPretty() == nil || ulog.WithStructured() == nil {
		t.Error("expected both outputs to be initialized")
	}
}

func TestLogEntryFieldsAndErr(t *testing.T) {
	resetLoggers(t)
	ulog := NewUnifiedLogger("test")
	entry := ulog.Error("validation failed").
		Field("hook", "cargo-fmt").
		Fields(map[string]interface{}{"index": 1}).
		Err(errors.New("duplicate id"))

	if entry.fields["hook"] != "cargo-fmt" || entry.fields["index"] != 1 {
		t.Errorf("unexpected fields: %v", entry.fields)
	}
	if entry.fields["error"] != "duplicate id" {
		t.Errorf("expected error field, got %v", entry.fields["error"])
	}

	if ulog.Error("x").Err(nil).err != nil {
		t.Error("nil error should not be recorded")
	}
}

func TestLogWritesPrettyToContextWriter(t *testing.T) {
	resetLoggers(t)
	theme.ConfigureColor(true)

	var structured bytes.Buffer
	ulog := NewUnifiedLogger("unified-test")
	ulog.WithStructured().Logger.SetOutput(&structured)
	ulog.WithStructured().Logger.SetFormatter(&logrus.JSONFormatter{})

	var pretty bytes.Buffer
	ctx := WithWriter(context.Background(), &pretty)

	ulog.Success("configuration is valid").Field("hooks", 6).Log(ctx)

	if got := pretty.String(); got != theme.IconSuccess+" configuration is valid\n" {
		t.Errorf("unexpected pretty output %q", got)
	}
	if !strings.Contains(structured.String(), `"status":"success"`) || !strings.Contains(structured.String(), `"hooks":6`) {
		t.Errorf("unexpected structured output %s", structured.String())
	}
}

func TestPrettyOnlyAndStructuredOnly(t *testing.T) {
	resetLoggers(t)
	theme.ConfigureColor(true)

	var structured, pretty bytes.Buffer
	ulog := NewUnifiedLogger("modes-test")
	ulog.WithStructured().Logger.SetOutput(&structured)
	ctx := WithWriter(context.Background(), &pretty)

	ulog.Info("only pretty").PrettyOnly().Log(ctx)
	ulog.Info("only structured").StructuredOnly().Log(ctx)

	if strings.Contains(structured.String(), "only pretty") {
		t.Error("PrettyOnly entry leaked into structured output")
	}
	if strings.Contains(pretty.String(), "only structured") {
		t.Error("StructuredOnly entry leaked into pretty output")
	}
}

func TestGetWriterFallsBackToGlobal(t *testing.T) {
	if GetWriter(context.Background()) != GetGlobalOutput() {
		t.Error("expected global output when no writer is attached")
	}
}
