package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{" warn ", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log, closer, err := New(Config{Level: "warn", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer closer.Close()

	log.Info("hidden")
	log.Warn("shown", "planet", "earth")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "planet=earth") {
		t.Errorf("warn record missing: %q", out)
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log, _, err := New(Config{Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info("frame", "index", 3)
	if !strings.Contains(buf.String(), `"index":3`) {
		t.Errorf("json output = %q", buf.String())
	}
}

func TestNewFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orrery.log")
	log, closer, err := New(Config{Level: "debug", Path: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Debug("to file")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("log file = %q", data)
	}
}

func TestNewWithoutSinkDiscards(t *testing.T) {
	log, closer, err := New(Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if log.Enabled(context.Background(), slog.LevelError) {
		t.Error("discard logger reports enabled")
	}
	if err := closer.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	if _, _, err := New(Config{Level: "loud"}); err == nil {
		t.Error("expected error for bad level")
	}
	if _, _, err := New(Config{Format: "xml", Writer: &bytes.Buffer{}}); err == nil {
		t.Error("expected error for bad format")
	}
}
