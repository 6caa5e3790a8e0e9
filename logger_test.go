package tftcmd

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	tr := NewTranslator(nil)
	tr.GetOptimizedSequence(single("logged", DISPON))
	if !strings.Contains(buf.String(), "sequence cache miss") {
		t.Errorf("log output = %q, want a cache miss record", buf.String())
	}

	SetLogger(nil)
	buf.Reset()
	tr.GetOptimizedSequence(single("logged", DISPON))
	if buf.Len() != 0 {
		t.Errorf("log output = %q after SetLogger(nil), want nothing", buf.String())
	}
	if Logger() == nil {
		t.Error("Logger() = nil")
	}
}
