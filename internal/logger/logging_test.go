package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewWithWriterPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "corpus")
	l.SetLevel(log.InfoLevel)
	l.Info("built", "predecessors", 3)

	out := buf.String()
	if !strings.Contains(out, "corpus") || !strings.Contains(out, "predecessors=3") {
		t.Errorf("unexpected log line %q", out)
	}
}
