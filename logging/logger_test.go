package logging

import (
	"testing"

	"go.uber.org/zap"
)

func TestNewLevels(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		logger, err := New("warn", format)
		if err != nil {
			t.Fatalf("new %s logger: %v", format, err)
		}
		if logger.Core().Enabled(zap.InfoLevel) {
			t.Fatalf("%s: expected info to be disabled at warn", format)
		}
		if !logger.Core().Enabled(zap.ErrorLevel) {
			t.Fatalf("%s: expected error to be enabled at warn", format)
		}
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New("loud", "json"); err == nil {
		t.Fatal("expected invalid level error")
	}
}
