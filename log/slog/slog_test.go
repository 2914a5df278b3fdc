package slog

import (
	"bytes"
	stdslog "log/slog"
	"strings"
	"testing"

	"github.com/unkn0wn-root/readthrough"
)

func TestSlogLoggerWritesAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelDebug})
	l := Logger{L: stdslog.New(h)}

	l.Debug("loaded value cached", readthrough.Fields{"key": "user:1"})
	l.Info("no fields", nil)

	out := buf.String()
	if !strings.Contains(out, "level=DEBUG") || !strings.Contains(out, "key=user:1") {
		t.Fatalf("unexpected output: %s", out)
	}
	if !strings.Contains(out, `msg="no fields"`) {
		t.Fatalf("missing info line: %s", out)
	}
}
