package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected *zapcore.Level
	}{
		{"debug", levelPtr(zapcore.DebugLevel)},
		{"info", levelPtr(zapcore.InfoLevel)},
		{"warn", levelPtr(zapcore.WarnLevel)},
		{"error", levelPtr(zapcore.ErrorLevel)},
		{"verbose", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parseLevel(tt.input)
			switch {
			case tt.expected == nil && got != nil:
				t.Errorf("parseLevel(%q) = %v, want nil", tt.input, *got)
			case tt.expected != nil && got == nil:
				t.Errorf("parseLevel(%q) = nil, want %v", tt.input, *tt.expected)
			case tt.expected != nil && *got != *tt.expected:
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, *got, *tt.expected)
			}
		})
	}
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	l.Info("discarded", String("key", "value"), Int64("n", 1), Bool("ok", true))
	l.Debugf("discarded %d", 1)
	if err := l.Sync(); err != nil {
		t.Errorf("Sync() error = %v", err)
	}
}

func levelPtr(l zapcore.Level) *zapcore.Level { return &l }
