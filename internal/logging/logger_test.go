package logging

import (
	"path/filepath"
	"testing"
)

func TestNewLevels(t *testing.T) {
	for _, level := range []string{"error", "warn", "info", "debug"} {
		logger, err := New(level, "text", "")
		if err != nil {
			t.Fatalf("New(%q): %v", level, err)
		}
		logger.Sync()
	}
}

func TestNewJSONFormat(t *testing.T) {
	logger, err := New("info", "json", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Sync()
}

func TestNewBadLevel(t *testing.T) {
	if _, err := New("loud", "text", ""); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewBadFormat(t *testing.T) {
	if _, err := New("info", "xml", ""); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fx5ctl.log")
	logger, err := New("debug", "json", path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("hello")
	logger.Sync()
}
