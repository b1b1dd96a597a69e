package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"os"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	logger := NewLogger()
	if logger == nil {
		t.Fatal("NewLogger() returned nil")
	}
	if logger.Logger == nil {
		t.Fatal("Logger.Logger is nil")
	}
}

func TestLogLevelFromEnv(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected slog.Level
	}{
		{"debug level", "DEBUG", slog.LevelDebug},
		{"info level", "INFO", slog.LevelInfo},
		{"warn level", "WARN", slog.LevelWarn},
		{"warning level", "WARNING", slog.LevelWarn},
		{"error level", "ERROR", slog.LevelError},
		{"lowercase debug", "debug", slog.LevelDebug},
		{"invalid level", "LOUD", slog.LevelInfo},
		{"empty value", "", slog.LevelInfo},
	}

	original := os.Getenv(LevelEnvVar)
	defer os.Setenv(LevelEnvVar, original)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv(LevelEnvVar, tt.envValue)
			if level := getLogLevelFromEnv(); level != tt.expected {
				t.Errorf("getLogLevelFromEnv() = %v, want %v", level, tt.expected)
			}
		})
	}
}

func TestSessionID(t *testing.T) {
	t.Run("generate", func(t *testing.T) {
		id1 := GenerateSessionID()
		id2 := GenerateSessionID()
		if id1 == id2 {
			t.Error("GenerateSessionID() returned duplicate IDs")
		}
		if len(id1) != 16 {
			t.Errorf("GenerateSessionID() returned wrong length: %d", len(id1))
		}
	})

	t.Run("round trip", func(t *testing.T) {
		ctx := WithSessionID(context.Background(), "playground-1")
		if got := GetSessionID(ctx); got != "playground-1" {
			t.Errorf("GetSessionID() = %q, want %q", got, "playground-1")
		}
	})

	t.Run("missing", func(t *testing.T) {
		if got := GetSessionID(context.Background()); got != "" {
			t.Errorf("GetSessionID() = %q, want empty string", got)
		}
	})

	t.Run("auto-generate", func(t *testing.T) {
		ctx := WithSessionID(context.Background(), "")
		if got := GetSessionID(ctx); len(got) != 16 {
			t.Errorf("auto-generated session ID has wrong length: %q", got)
		}
	})
}

func TestReplaceNonFinite(t *testing.T) {
	tests := []struct {
		name     string
		attr     slog.Attr
		expected string
	}{
		{"nan", slog.Float64("penetration", math.NaN()), "NaN"},
		{"positive infinity", slog.Float64("energy", math.Inf(1)), "+Inf"},
		{"negative infinity", slog.Float64("vx", math.Inf(-1)), "-Inf"},
		{"finite float", slog.Float64("vx", 1.5), "1.5"},
		{"string", slog.String("label", "card"), "card"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := replaceNonFinite(nil, tt.attr)
			if result.Value.String() != tt.expected {
				t.Errorf("replaceNonFinite() = %q, want %q", result.Value.String(), tt.expected)
			}
		})
	}
}

func TestLoggerMethods(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := &Logger{slog.New(handler)}
	ctx := WithSessionID(context.Background(), "test-session")

	decode := func(t *testing.T) map[string]interface{} {
		t.Helper()
		var entry map[string]interface{}
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("failed to parse log JSON: %v", err)
		}
		return entry
	}

	t.Run("info logging", func(t *testing.T) {
		buf.Reset()
		logger.Info(ctx, "body added", "body_id", 7)
		entry := decode(t)
		if entry["msg"] != "body added" {
			t.Errorf("expected message 'body added', got %v", entry["msg"])
		}
		if entry["level"] != "INFO" {
			t.Errorf("expected level INFO, got %v", entry["level"])
		}
		if entry["session_id"] != "test-session" {
			t.Errorf("expected session_id 'test-session', got %v", entry["session_id"])
		}
		if entry["body_id"] != float64(7) {
			t.Errorf("expected body_id 7, got %v", entry["body_id"])
		}
	})

	t.Run("error logging", func(t *testing.T) {
		buf.Reset()
		logger.Error(ctx, "body rejected", errors.New("invalid mass"))
		entry := decode(t)
		if entry["level"] != "ERROR" {
			t.Errorf("expected level ERROR, got %v", entry["level"])
		}
		if entry["error"] != "invalid mass" {
			t.Errorf("expected error 'invalid mass', got %v", entry["error"])
		}
	})

	t.Run("debug logging", func(t *testing.T) {
		buf.Reset()
		logger.Debug(ctx, "tick")
		if entry := decode(t); entry["level"] != "DEBUG" {
			t.Errorf("expected level DEBUG, got %v", entry["level"])
		}
	})

	t.Run("warn logging", func(t *testing.T) {
		buf.Reset()
		logger.Warn(ctx, "divide by zero")
		if entry := decode(t); entry["level"] != "WARN" {
			t.Errorf("expected level WARN, got %v", entry["level"])
		}
	})
}

func TestNewLoggerWithWriterEncodesNonFinite(t *testing.T) {
	original := os.Getenv(LevelEnvVar)
	defer os.Setenv(LevelEnvVar, original)
	os.Setenv(LevelEnvVar, "INFO")

	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf)
	logger.Info(context.Background(), "diverged", "energy", math.Inf(1))

	if !strings.Contains(buf.String(), `"energy":"+Inf"`) {
		t.Errorf("expected encoded infinity in %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error(context.Background(), "ignored", errors.New("boom"))
}

func TestWrapError(t *testing.T) {
	t.Run("wrap nil error", func(t *testing.T) {
		if result := WrapError(nil, "context"); result != nil {
			t.Errorf("WrapError(nil) should return nil, got %v", result)
		}
	})

	t.Run("wrap error with formatted context", func(t *testing.T) {
		original := errors.New("invalid mass")
		wrapped := WrapError(original, "body %d", 42)
		if wrapped.Error() != "body 42: invalid mass" {
			t.Errorf("WrapError() = %q", wrapped.Error())
		}
		if !errors.Is(wrapped, original) {
			t.Error("WrapError() should preserve original error")
		}
	})
}

func TestLogWithoutSessionID(t *testing.T) {
	var buf bytes.Buffer
	logger := &Logger{slog.New(slog.NewJSONHandler(&buf, nil))}
	logger.Info(context.Background(), "test message")

	if strings.Contains(buf.String(), "session_id") {
		t.Error("log should not contain session_id when none is set in context")
	}
}
