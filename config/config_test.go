package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Load()
	want := Default()
	if cfg != want {
		t.Errorf("Load() with no file = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadReadsYAML(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", root)

	dir := filepath.Join(root, "progtop")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	yaml := []byte("interval_sec: 5\nsort_key: memory_rss\nthresholds:\n  cpu_warning: 30\n  cpu_critical: 60\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Load()
	if cfg.IntervalSec != 5 {
		t.Errorf("interval_sec = %d, want 5", cfg.IntervalSec)
	}
	if cfg.SortKey != "memory_rss" {
		t.Errorf("sort_key = %q, want memory_rss", cfg.SortKey)
	}
	if cfg.Thresholds.CPUWarning != 30 || cfg.Thresholds.CPUCritical != 60 {
		t.Errorf("cpu thresholds = %v/%v, want 30/60", cfg.Thresholds.CPUWarning, cfg.Thresholds.CPUCritical)
	}
	// Unset keys keep their defaults.
	if cfg.Thresholds.MemWarning != 50 {
		t.Errorf("mem_warning = %v, want default 50", cfg.Thresholds.MemWarning)
	}
}
