package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_SingleComponentAttribute(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Handler: slog.NewTextHandler(&buf, nil), Component: ComponentApp})

	logger.Info("starting up")

	line := buf.String()
	if got := strings.Count(line, FieldComponent+"="); got != 1 {
		t.Errorf("component attribute appears %d times, want 1: %s", got, line)
	}
	if !strings.Contains(line, FieldComponent+"="+ComponentApp) {
		t.Errorf("line missing %s=%s: %s", FieldComponent, ComponentApp, line)
	}
}

func TestWithComponent_SingleComponentAttribute(t *testing.T) {
	var buf bytes.Buffer
	base := New(Config{Handler: slog.NewTextHandler(&buf, nil), Component: ComponentApp})

	httpLogger := base.WithComponent(ComponentHTTP)
	httpLogger.Info("request started")

	line := buf.String()
	if got := strings.Count(line, FieldComponent+"="); got != 1 {
		t.Errorf("component attribute appears %d times, want 1: %s", got, line)
	}
	if !strings.Contains(line, FieldComponent+"="+ComponentHTTP) {
		t.Errorf("line missing %s=%s: %s", FieldComponent, ComponentHTTP, line)
	}
	if httpLogger.Component() != ComponentHTTP {
		t.Errorf("Component() = %q, want %q", httpLogger.Component(), ComponentHTTP)
	}
}

func TestWithComponent_DoesNotAffectParent(t *testing.T) {
	var buf bytes.Buffer
	base := New(Config{Handler: slog.NewTextHandler(&buf, nil), Component: ComponentApp})
	_ = base.WithComponent(ComponentWorker)

	base.Info("still the app")

	if !strings.Contains(buf.String(), FieldComponent+"="+ComponentApp) {
		t.Errorf("parent logger lost its component: %s", buf.String())
	}
}
