package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error"} {
		for _, dev := range []bool{false, true} {
			log, err := New(lvl, dev)
			if err != nil {
				t.Fatalf("New(%q, %v): %v", lvl, dev, err)
			}
			_ = log.Sync()
		}
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New("loud", false); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewHonorsLevel(t *testing.T) {
	log, err := New("warn", false)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if log.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("debug should be disabled at warn")
	}
	if !log.Core().Enabled(zapcore.WarnLevel) {
		t.Fatal("warn should be enabled at warn")
	}
}
