package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	t.Run("with default output", func(t *testing.T) {
		logger := NewLogger(Config{Level: InfoLevel})
		if logger == nil {
			t.Fatal("NewLogger returned nil")
		}
	})

	t.Run("with custom output", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewLogger(Config{Level: InfoLevel, Output: buf})
		if logger.writer != buf {
			t.Error("Logger should use provided output writer")
		}
	})
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		configLvl Level
		logLvl    Level
		shouldLog bool
	}{
		{"debug logs debug", DebugLevel, DebugLevel, true},
		{"debug logs error", DebugLevel, ErrorLevel, true},
		{"info skips debug", InfoLevel, DebugLevel, false},
		{"info logs info", InfoLevel, InfoLevel, true},
		{"warn skips info", WarnLevel, InfoLevel, false},
		{"warn logs error", WarnLevel, ErrorLevel, true},
		{"error skips warn", ErrorLevel, WarnLevel, false},
		{"error logs error", ErrorLevel, ErrorLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewLogger(Config{Level: tt.configLvl, Output: buf})

			logger.log(tt.logLvl, "test message", nil)

			hasOutput := buf.Len() > 0
			if hasOutput != tt.shouldLog {
				t.Errorf("shouldLog = %v, but hasOutput = %v", tt.shouldLog, hasOutput)
			}
		})
	}
}

func TestJSONFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(Config{
		Level:  InfoLevel,
		Format: JSONFormat,
		Output: buf,
	})

	logger.Info("test message", map[string]interface{}{
		"count": 42,
		"name":  "test",
	})

	var e map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &e); err != nil {
		t.Fatalf("Output is not valid JSON: %v\nOutput: %s", err, buf.String())
	}

	if e["level"] != "info" {
		t.Errorf("level = %v, want 'info'", e["level"])
	}
	if e["message"] != "test message" {
		t.Errorf("message = %v, want 'test message'", e["message"])
	}
	if e["timestamp"] == nil {
		t.Error("timestamp should be present")
	}

	fields, ok := e["fields"].(map[string]interface{})
	if !ok {
		t.Fatal("fields should be a map")
	}
	if fields["count"] != float64(42) { // JSON numbers are float64
		t.Errorf("fields.count = %v, want 42", fields["count"])
	}
}

func TestHumanFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(Config{
		Level:  InfoLevel,
		Format: HumanFormat,
		Output: buf,
	})

	logger.Info("human readable", map[string]interface{}{
		"key": "value",
	})

	output := buf.String()
	if !strings.Contains(output, "[info]") {
		t.Errorf("Output should contain '[info]', got: %s", output)
	}
	if !strings.Contains(output, "human readable") {
		t.Errorf("Output should contain message, got: %s", output)
	}
	if !strings.Contains(output, "key=value") {
		t.Errorf("Output should contain field, got: %s", output)
	}
}

func TestHumanFormatNoFields(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(Config{
		Level:  InfoLevel,
		Format: HumanFormat,
		Output: buf,
	})

	logger.Info("no fields", nil)

	if strings.Contains(buf.String(), "|") {
		t.Errorf("Output without fields should not contain '|', got: %s", buf.String())
	}
}

func TestWith(t *testing.T) {
	buf := &bytes.Buffer{}
	base := NewLogger(Config{Level: InfoLevel, Format: HumanFormat, Output: buf})

	scoped := base.With(map[string]interface{}{"component": "store"})
	scoped.Info("scoped entry", map[string]interface{}{"id": "p-1"})

	output := buf.String()
	if !strings.Contains(output, "component=store") {
		t.Errorf("Output should contain bound field, got: %s", output)
	}
	if !strings.Contains(output, "id=p-1") {
		t.Errorf("Output should contain call field, got: %s", output)
	}

	// The base logger stays unscoped
	buf.Reset()
	base.Info("plain entry", nil)
	if strings.Contains(buf.String(), "component=store") {
		t.Errorf("Base logger should not carry the scoped field, got: %s", buf.String())
	}
}

func TestDiscardLogger(t *testing.T) {
	logger := NewDiscardLogger()
	// Must not panic and must not write anywhere visible
	logger.Error("dropped", map[string]interface{}{"key": "value"})
}

func TestLevelPriorityOrder(t *testing.T) {
	if levelPriority[DebugLevel] >= levelPriority[InfoLevel] {
		t.Error("Debug should have lower priority than Info")
	}
	if levelPriority[InfoLevel] >= levelPriority[WarnLevel] {
		t.Error("Info should have lower priority than Warn")
	}
	if levelPriority[WarnLevel] >= levelPriority[ErrorLevel] {
		t.Error("Warn should have lower priority than Error")
	}
}
