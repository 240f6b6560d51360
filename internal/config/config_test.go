package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}

	if cfg.ExportFile != "export.json" {
		t.Errorf("Expected default export file, got %q", cfg.ExportFile)
	}
	if cfg.OutputFile != "leetcode.deck" {
		t.Errorf("Expected default output file, got %q", cfg.OutputFile)
	}
	if cfg.PageSize != 500 {
		t.Errorf("Expected default page size 500, got %d", cfg.PageSize)
	}
	if cfg.ProblemStatus != "AC" {
		t.Errorf("Expected default problem status AC, got %q", cfg.ProblemStatus)
	}
	if !cfg.IncludeSolutions {
		t.Error("Expected solutions to be included by default")
	}
	if cfg.Workers != 8 {
		t.Errorf("Expected default workers 8, got %d", cfg.Workers)
	}
}

func TestLoadFlags(t *testing.T) {
	cfg, err := Load([]string{
		"--start", "10",
		"--stop", "20",
		"--output-file", "mine.deck",
		"--include-solutions=false",
		"--verbose",
	})
	if err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}

	if cfg.Start != 10 || cfg.Stop != 20 {
		t.Errorf("Expected window [10, 20), got [%d, %d)", cfg.Start, cfg.Stop)
	}
	if cfg.OutputFile != "mine.deck" {
		t.Errorf("Expected output file 'mine.deck', got %q", cfg.OutputFile)
	}
	if cfg.IncludeSolutions {
		t.Error("Expected solutions to be excluded")
	}
	if !cfg.Verbose {
		t.Error("Expected verbose to be set")
	}
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("ANKIGEN_OUTPUT_FILE", "from-env.deck")
	t.Setenv("ANKIGEN_WORKERS", "2")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}
	if cfg.OutputFile != "from-env.deck" {
		t.Errorf("Expected env to override the default, got %q", cfg.OutputFile)
	}
	if cfg.Workers != 2 {
		t.Errorf("Expected env workers 2, got %d", cfg.Workers)
	}
}

func TestFlagsBeatEnvironment(t *testing.T) {
	t.Setenv("ANKIGEN_OUTPUT_FILE", "from-env.deck")

	cfg, err := Load([]string{"--output-file", "from-flag.deck"})
	if err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}
	if cfg.OutputFile != "from-flag.deck" {
		t.Errorf("Expected the flag to win, got %q", cfg.OutputFile)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ankigen.yaml")
	content := "output-file: from-file.deck\nworkers: 3\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load([]string{"--config", path})
	if err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}
	if cfg.OutputFile != "from-file.deck" {
		t.Errorf("Expected file value, got %q", cfg.OutputFile)
	}
	if cfg.Workers != 3 {
		t.Errorf("Expected file workers 3, got %d", cfg.Workers)
	}
}

func TestLoadValidation(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{"stop before start", []string{"--start", "10", "--stop", "5"}},
		{"zero page size", []string{"--page-size", "0"}},
		{"zero workers", []string{"--workers", "0"}},
		{"unknown status", []string{"--problem-status", "WRONG"}},
		{"empty output file", []string{"--output-file", ""}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(tc.args); err == nil {
				t.Errorf("Expected Load(%v) to fail validation", tc.args)
			}
		})
	}
}
