package logging

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestJSONFileLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "romsort.log")
	logger, err := New(Options{Format: "json", Level: "info", File: path})
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	logger.Info(ctx, "plan built", Fields{"entries": 3})
	logger.Debug(ctx, "filtered below level", nil)
	if err := logger.Close(); err != nil {
		t.Fatal(err)
	}

	lines := readLines(t, path)
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1 (debug filtered)", len(lines))
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["message"] != "plan built" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v", entry["level"])
	}
	if entry["entries"] != float64(3) {
		t.Errorf("entries field = %v", entry["entries"])
	}
}

func TestWithFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "romsort.log")
	logger, err := New(Options{Format: "json", Level: "debug", File: path})
	if err != nil {
		t.Fatal(err)
	}

	bound := logger.WithFields(Fields{"run_id": "abc"})
	bound.Info(context.Background(), "step done", nil)
	logger.Close()

	lines := readLines(t, path)
	if !strings.Contains(lines[0], `"run_id":"abc"`) {
		t.Errorf("bound field missing from %s", lines[0])
	}
}

func TestErrorIncludesErr(t *testing.T) {
	path := filepath.Join(t.TempDir(), "romsort.log")
	logger, err := New(Options{Format: "json", Level: "error", File: path})
	if err != nil {
		t.Fatal(err)
	}

	logger.Error(context.Background(), "move failed", os.ErrPermission, Fields{"path": "/x"})
	logger.Close()

	lines := readLines(t, path)
	if !strings.Contains(lines[0], "permission denied") {
		t.Errorf("error detail missing from %s", lines[0])
	}
}

func TestRotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "romsort.log")
	w, err := newRotatingWriter(path, 64, 2)
	if err != nil {
		t.Fatal(err)
	}

	line := []byte(strings.Repeat("x", 32) + "\n")
	for i := 0; i < 10; i++ {
		if _, err := w.Write(line); err != nil {
			t.Fatal(err)
		}
	}
	w.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("live log file missing: %v", err)
	}
	if _, err := os.Stat(path + ".1"); err != nil {
		t.Errorf("rotated backup missing: %v", err)
	}
	if _, err := os.Stat(path + ".3"); !os.IsNotExist(err) {
		t.Error("rotation kept more backups than configured")
	}
}

func TestRotationRecoversAfterReopenFailure(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	path := filepath.Join(dir, "romsort.log")
	w, err := newRotatingWriter(path, 8, 1)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if _, err := w.Write([]byte("0123456789")); err != nil {
		t.Fatal(err)
	}

	// The next write rotates, and with the directory gone the reopen
	// fails.
	if err := os.RemoveAll(dir); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("lost\n")); err == nil {
		t.Fatal("expected an error while the log directory is missing")
	}

	// Once the directory is back the writer reopens on its own.
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("recovered\n")); err != nil {
		t.Fatalf("writer did not recover: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "recovered") {
		t.Errorf("recovered line missing from log: %q", data)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", DebugLevel},
		{"info", InfoLevel},
		{"warn", WarnLevel},
		{"WARNING", WarnLevel},
		{"error", ErrorLevel},
		{"nonsense", InfoLevel},
		{"", InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
