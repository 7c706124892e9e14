package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"", slog.LevelInfo, false},
		{"INFO", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNew_Formats(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("debug", "json", &buf)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	Component(logger, "lexer").Debug("scanned", slog.Int("tokens", 3))

	out := buf.String()
	if !strings.Contains(out, `"component":"lexer"`) || !strings.Contains(out, `"tokens":3`) {
		t.Errorf("unexpected json output: %s", out)
	}

	if _, err := New("info", "xml", &buf); err == nil {
		t.Error("New() with unknown format should fail")
	}
}

func TestComponent_NilLogger(t *testing.T) {
	logger := Component(nil, "builder")
	if logger == nil {
		t.Fatal("Component(nil) returned nil")
	}
	logger.Error("dropped")
}
