package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env, level string
		debug      bool
	}{
		{"local", "", true},
		{"production", "", false},
		{"production", "debug", true},
		{"local", "warn", false},
		{"production", "nonsense", false},
	}
	for _, tt := range tests {
		l, err := New(tt.env, tt.level)
		if err != nil {
			t.Fatalf("New(%q, %q) error = %v", tt.env, tt.level, err)
		}
		if got := l.Core().Enabled(zapcore.DebugLevel); got != tt.debug {
			t.Errorf("New(%q, %q) debug enabled = %v, want %v", tt.env, tt.level, got, tt.debug)
		}
	}
}
