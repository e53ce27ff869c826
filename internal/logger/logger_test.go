package logger

import "testing"

func TestNew_Console(t *testing.T) {
	log, err := New("info", "console")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if log == nil {
		t.Fatal("Logger is nil")
	}
}

func TestNew_JSON(t *testing.T) {
	if _, err := New("debug", "json"); err != nil {
		t.Errorf("New failed: %v", err)
	}
}

func TestNew_DefaultFormat(t *testing.T) {
	if _, err := New("warn", ""); err != nil {
		t.Errorf("Empty format should default to console: %v", err)
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New("loud", "console"); err == nil {
		t.Error("Expected error for invalid level")
	}
}

func TestNew_InvalidFormat(t *testing.T) {
	if _, err := New("info", "xml"); err == nil {
		t.Error("Expected error for invalid format")
	}
}
