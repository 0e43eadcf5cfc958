package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kobayashik-Faber/shotcheck/internal/domain"
)

func TestLoad(t *testing.T) {
	path := filepath.Join("testdata", "shotcheck.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Match.Pattern != `_\d{8}_\d{6}$` {
		t.Errorf("unexpected pattern: %q", cfg.Match.Pattern)
	}
	if cfg.Compare.Threshold != 10 {
		t.Errorf("expected threshold 10, got %d", cfg.Compare.Threshold)
	}
	if cfg.Render.LabelBarHeight != 32 {
		t.Errorf("expected label bar 32, got %d", cfg.Render.LabelBarHeight)
	}
	if cfg.Render.LabelA != "Before" || cfg.Render.LabelDiff != "Delta" {
		t.Errorf("labels did not map: %q %q", cfg.Render.LabelA, cfg.Render.LabelDiff)
	}
	if cfg.Report.Filename != "report.txt" {
		t.Errorf("expected report.txt, got %q", cfg.Report.Filename)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join("testdata", "shotcheck_invalid.yaml")
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "compare.threshold") {
		t.Fatalf("expected field in error, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected path in error, got %v", err)
	}
}

func TestLoad_ExplicitMissingPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found kind, got %v", err)
	}
}

func TestLoad_ImplicitMissingFallsBackToDefaults(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Match.Pattern != domain.DefaultTimestampPattern {
		t.Errorf("expected defaults, got pattern %q", cfg.Match.Pattern)
	}
}
