package bindings

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsBindingFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "pad.yaml")
	if err := os.WriteFile(target, []byte("buttons: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if got != target {
			t.Fatalf("expected %s, got %s", target, got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for a change event")
	}
}

func TestWatcherReportsBurstOnceAfterLastWrite(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "pad.yaml")
	if err := os.WriteFile(target, []byte("buttons: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	final := "buttons:\n  jump:\n    keys: [space]\n"
	for _, body := range []string{"buttons:\n", "buttons:\n  jump:\n", final} {
		if err := os.WriteFile(target, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case got := <-w.Events:
		if got != target {
			t.Fatalf("expected %s, got %s", target, got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for a change event")
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != final {
		t.Fatalf("the event should follow the last write, read %q", data)
	}

	select {
	case got := <-w.Events:
		t.Fatalf("expected one event for the burst, got another for %s", got)
	case <-time.After(3 * debounce):
	}
}

func TestSettled(t *testing.T) {
	now := time.Unix(100, 0)
	pending := map[string]time.Time{
		"b.yaml":       now.Add(-debounce),
		"a.tengo":      now.Add(-2 * debounce),
		"recent.yaml":  now.Add(-30 * time.Millisecond),
		"fresher.yaml": now.Add(-10 * time.Millisecond),
	}

	ready, wait := settled(pending, now)
	if len(ready) != 2 || ready[0] != "a.tengo" || ready[1] != "b.yaml" {
		t.Fatalf("unexpected ready paths %v", ready)
	}
	if wait != 70*time.Millisecond {
		t.Fatalf("expected to wait 70ms for the next path, got %v", wait)
	}
	if len(pending) != 2 {
		t.Fatalf("settled paths should leave the pending set, left %v", pending)
	}

	if ready, wait := settled(map[string]time.Time{}, now); ready != nil || wait != 0 {
		t.Fatalf("empty pending set should be a no-op")
	}
}

func TestWatcherFilters(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"bindings/default.yaml", true},
		{"bindings/pad.YML", true},
		{"bindings/scripts/combo.tengo", true},
		{"bindings/readme.md", false},
		{"bindings/default.yaml.swp", false},
	}
	for _, c := range cases {
		if got := isSpecFile(c.path) || isScriptFile(c.path); got != c.want {
			t.Fatalf("%s: expected %v", c.path, c.want)
		}
	}
}
