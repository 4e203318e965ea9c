package levels_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

func TestWatcherReportsLevelFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := levels.NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	path := filepath.Join(dir, "tiny.yaml")
	if err := os.WriteFile(path, []byte(tinyLevel), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	select {
	case got := <-w.Events:
		if got != path {
			t.Errorf("event for %q, expected %q", got, path)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for level change")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := levels.NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Error("expected Events to be closed")
	}
}

func TestWatcherMissingDir(t *testing.T) {
	if _, err := levels.NewWatcher(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestWatcherReportsNestedLevelFiles(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "world1")
	if err := os.Mkdir(nested, 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}

	w, err := levels.NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	path := filepath.Join(nested, "tiny.yaml")
	if err := os.WriteFile(path, []byte(tinyLevel), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	waitForEvent(t, w, path)
}

func TestWatcherFollowsNewDirectories(t *testing.T) {
	dir := t.TempDir()
	w, err := levels.NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	nested := filepath.Join(dir, "world2")
	if err := os.Mkdir(nested, 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}

	// The directory is added by the watcher goroutine; keep rewriting the
	// file until an event for it arrives.
	path := filepath.Join(nested, "tiny.yaml")
	deadline := time.After(5 * time.Second)
	for {
		if err := os.WriteFile(path, []byte(tinyLevel), 0o644); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		select {
		case got := <-w.Events:
			if got == path {
				return
			}
		case err := <-w.Errors:
			t.Fatalf("watcher error: %v", err)
		case <-time.After(200 * time.Millisecond):
		case <-deadline:
			t.Fatal("timed out waiting for level change in new directory")
		}
	}
}

func waitForEvent(t *testing.T, w *levels.Watcher, path string) {
	t.Helper()
	select {
	case got := <-w.Events:
		if got != path {
			t.Errorf("event for %q, expected %q", got, path)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for level change")
	}
}
