package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsWrites(t *testing.T) {
	path := writeConfig(t, "road:\n  length: 10\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	// Unrelated files in the same directory are ignored
	other := filepath.Join(filepath.Dir(path), "other.yaml")
	if err := os.WriteFile(other, []byte("x: 1\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	if err := os.WriteFile(path, []byte("road:\n  length: 20\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	select {
	case got := <-w.events:
		if got != w.Path() {
			t.Errorf("event path = %q, expected %q", got, w.Path())
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no change event received")
	}
}

func TestWatcherChangedDrains(t *testing.T) {
	path := writeConfig(t, "road:\n  length: 10\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	if w.Changed() {
		t.Error("Changed() should be false before any write")
	}

	if err := os.WriteFile(path, []byte("road:\n  length: 20\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for !w.Changed() {
		if time.Now().After(deadline) {
			t.Fatal("Changed() never reported the write")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	path := writeConfig(t, "road:\n  length: 10\n")
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() failed: %v", err)
	}
}
