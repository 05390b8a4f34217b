package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "wif.log")
	var console bytes.Buffer
	cfg := DefaultConfig()
	cfg.Console = &console
	cfg.FilePath = path
	cfg.Level = "debug"

	logger, closer, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Debug().Str("date", "2023-01-03").Msg("buying proxy shares")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if !strings.Contains(console.String(), "buying proxy shares") {
		t.Errorf("console output = %q, want the message", console.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	var event map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &event); err != nil {
		t.Fatalf("log file is not JSON: %v: %q", err, data)
	}
	if event["date"] != "2023-01-03" || event["level"] != "debug" {
		t.Errorf("log event = %v, want date and level fields", event)
	}
}

func TestNewLevel(t *testing.T) {
	var console bytes.Buffer
	cfg := DefaultConfig()
	cfg.Console = &console

	logger, _, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Debug().Msg("hidden")
	logger.Warn().Msg("shown")
	if got := console.String(); strings.Contains(got, "hidden") || !strings.Contains(got, "shown") {
		t.Errorf("console output = %q, want warnings only", got)
	}

	cfg.Level = "loud"
	if _, _, err := New(cfg); err == nil {
		t.Errorf("New(level %q) succeeded, want an error", cfg.Level)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.WarnLevel},
		{"debug", zerolog.DebugLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
	}
	for _, tc := range tests {
		got, err := ParseLevel(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, %v want %v", tc.in, got, err, tc.want)
		}
	}
}
