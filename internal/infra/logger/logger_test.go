package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_WritesToOutputDir(t *testing.T) {
	dir := t.TempDir()
	cleanup, err := Setup(Config{Root: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	L().Info("test.event", "key", "value")
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(dir, "shotcheck.log"))
	if err != nil {
		t.Fatalf("expected log file: %v", err)
	}
	if !strings.Contains(string(b), "test.event") {
		t.Fatalf("expected logged event in file, got:\n%s", b)
	}
}

func TestSetup_CreatesMissingRoot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	cleanup, err := Setup(Config{Root: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = cleanup() }()

	if Path() != filepath.Join(dir, "shotcheck.log") {
		t.Fatalf("unexpected log path %q", Path())
	}
}

func TestCleanup_ResetsPath(t *testing.T) {
	cleanup, err := Setup(Config{Root: t.TempDir()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}
	if Path() != "" {
		t.Fatalf("expected empty path after cleanup, got %q", Path())
	}
}
