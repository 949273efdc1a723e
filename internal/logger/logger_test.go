package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level)
			if log == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		level     string
		wantDebug bool
		wantInfo  bool
		wantError bool
	}{
		{"debug passes everything", "debug", true, true, true},
		{"info drops debug", "info", false, true, true},
		{"error drops info", "error", false, false, true},
		{"unknown level defaults to info", "bogus", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter(tt.level, &buf)

			log.Debug(ctx, "debug message")
			log.Info(ctx, "info message")
			log.Error(ctx, "error message")

			out := buf.String()
			if got := strings.Contains(out, "debug message"); got != tt.wantDebug {
				t.Errorf("debug logged = %v, want %v", got, tt.wantDebug)
			}
			if got := strings.Contains(out, "info message"); got != tt.wantInfo {
				t.Errorf("info logged = %v, want %v", got, tt.wantInfo)
			}
			if got := strings.Contains(out, "error message"); got != tt.wantError {
				t.Errorf("error logged = %v, want %v", got, tt.wantError)
			}
		})
	}
}

func TestFormatArgs(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.Info(context.Background(), "processed %d chunks from %s", 3, "input.srt")

	if !strings.Contains(buf.String(), "processed 3 chunks from input.srt") {
		t.Errorf("formatted message missing, got: %s", buf.String())
	}
}
