package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"  WARN ": slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for raw, want := range cases {
		if got := parseLevel(raw); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestNewLoggerAttachesServiceAndVersion(t *testing.T) {
	logger := NewLogger(Config{Service: "draft-tracker", Version: "dev"})
	if logger == nil {
		t.Fatal("expected a logger")
	}
	// Smoke check that the logger is usable.
	logger.Debug("suppressed at default level")
}

func TestJSONHandlerEmitsFields(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil)).With(slog.String(FieldService, "draft-tracker"))

	base.Info("hello", slog.Int(FieldCount, 3))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry[FieldService] != "draft-tracker" {
		t.Fatalf("service field missing: %v", entry)
	}
	if entry[FieldCount] != float64(3) {
		t.Fatalf("count field missing: %v", entry)
	}
}

func TestFromContextFallsBack(t *testing.T) {
	fallback := slog.Default()

	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatal("expected fallback for empty context")
	}

	stored := NewLogger(Config{})
	ctx := IntoContext(context.Background(), stored)
	if got := FromContext(ctx, fallback); got != stored {
		t.Fatal("expected stored logger from context")
	}
}

func TestHelpersTolerateNilLogger(t *testing.T) {
	// Must not panic.
	Info(nil, "msg")
	Warn(nil, "msg")
	Error(nil, "msg", nil)
}

func TestErrorAppendsErrField(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	Error(logger, "boom", context.DeadlineExceeded)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["error"] != context.DeadlineExceeded.Error() {
		t.Fatalf("error field missing: %v", entry)
	}
}
