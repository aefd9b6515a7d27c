package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)
	logger.Info().Str("file", "a.csv").Msg("analyzed")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["file"] != "a.csv" || entry["message"] != "analyzed" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)

	ctx := WithLogger(context.Background(), &logger)
	got := FromContext(ctx)
	got.Info().Msg("from context")

	if !strings.Contains(buf.String(), "from context") {
		t.Error("logger from context did not write to the original buffer")
	}
}

func TestFromContextFallsBack(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Error("FromContext should fall back to the default logger")
	}
	if FromContext(nil) == nil { //nolint:staticcheck // nil context fallback is the point
		t.Error("FromContext(nil) should fall back to the default logger")
	}
}

func TestWithFileAddsField(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)
	ctx := WithLogger(context.Background(), &logger)
	ctx = WithFile(ctx, "batch2.csv")

	FromContext(ctx).Info().Msg("loaded")

	if !strings.Contains(buf.String(), "batch2.csv") {
		t.Errorf("expected file field in output, got %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"off", zerolog.Disabled},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
