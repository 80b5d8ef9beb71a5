package monitoring

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestSetLoggerRedirectsOutput(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	var buf bytes.Buffer
	SetLogger(log.New(&buf))
	Logger().Info("run stopped", "reason", "AllClean")

	if !strings.Contains(buf.String(), "reason=AllClean") {
		t.Fatalf("expected key/value in output, got %q", buf.String())
	}
}

func TestSetLoggerNilDiscards(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("nil logger should be replaced with a discard logger")
	}
	Logger().Info("ignored")
}

func TestSetLevelRejectsUnknown(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })
	SetLogger(nil)

	if err := SetLevel("debug"); err != nil {
		t.Fatalf("SetLevel(debug) = %v", err)
	}
	if err := SetLevel("chatty"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
