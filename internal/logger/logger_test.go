package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer

	config := NewConfig("info", "json", "riftstats-test", "1.0.0", EnvironmentTest, false)
	InitLoggerWithWriter(config, &buf)

	slog.Info("match imported", "match_id", 42, "source", "riot")

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	for key, want := range map[string]interface{}{
		"service":     "riftstats-test",
		"version":     "1.0.0",
		"environment": EnvironmentTest,
		"msg":         "match imported",
		"level":       "INFO",
		"source":      "riot",
		"match_id":    float64(42),
	} {
		if logEntry[key] != want {
			t.Errorf("Expected %s=%v, got %v", key, want, logEntry[key])
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(NewConfig("warn", "text", "riftstats", "dev", EnvironmentDev, false), &buf)

	slog.Debug("hidden debug")
	slog.Info("hidden info")
	slog.Warn("shown warning")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected debug and info to be filtered, got %q", out)
	}
	if !strings.Contains(out, "shown warning") {
		t.Errorf("Expected warning in output, got %q", out)
	}
}

func TestRequestIDContext(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(NewConfig("info", "json", "riftstats", "dev", EnvironmentTest, false), &buf)

	ctx := WithRequestID(context.Background(), "test-req-123")
	if got := GetRequestID(ctx); got != "test-req-123" {
		t.Errorf("Expected request_id=test-req-123, got %s", got)
	}

	FromContext(ctx).Info("with request")
	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if logEntry[AttrKeyRequestID] != "test-req-123" {
		t.Errorf("Expected request_id attribute, got %v", logEntry[AttrKeyRequestID])
	}

	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("Expected empty request id, got %s", got)
	}
}

func TestGenerateRequestIDUnique(t *testing.T) {
	a, b := GenerateRequestID(), GenerateRequestID()
	if a == b || len(a) != 36 {
		t.Errorf("Expected two distinct UUIDs, got %s and %s", a, b)
	}
}

func TestConfigDefaults(t *testing.T) {
	config := DefaultConfig()

	if config.ServiceName != DefaultServiceName {
		t.Errorf("Expected service name %s, got %s", DefaultServiceName, config.ServiceName)
	}
	if config.LogLevel().String() != "INFO" {
		t.Errorf("Expected INFO level, got %s", config.LogLevel())
	}
	if config.IsJSON() {
		t.Error("Expected text format by default")
	}
}

func TestLogLevelParsing(t *testing.T) {
	tests := []struct {
		level string
		want  string
	}{
		{"debug", "DEBUG"},
		{"INFO", "INFO"},
		{"warn", "WARN"},
		{"Warning", "WARN"},
		{" error ", "ERROR"},
		{"info+2", "INFO+2"},
		{"verbose", "INFO"},
		{"", "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			got := Config{Level: tt.level}.LogLevel().String()
			if got != tt.want {
				t.Errorf("LogLevel(%q) = %s, want %s", tt.level, got, tt.want)
			}
		})
	}
}

func TestIsDevelopmentEnv(t *testing.T) {
	for env, want := range map[string]bool{
		"dev":         true,
		"Development": true,
		"prod":        false,
		"staging":     false,
		"":            false,
	} {
		if got := IsDevelopmentEnv(env); got != want {
			t.Errorf("IsDevelopmentEnv(%q) = %v, want %v", env, got, want)
		}
	}
}
