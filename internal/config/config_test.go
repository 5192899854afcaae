package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	c := cfg.Compressor
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"RemoveRegions", c.RemoveRegions, true},
		{"RemoveTags", len(c.RemoveTags), 0},
		{"RemoveParamNameUptoNWords", c.RemoveParamNameUptoNWords, 0},
		{"RemoveSummaryUptoNWords", c.RemoveSummaryUptoNWords, 0},
		{"Newline", c.Newline, NewlineAuto},
		{"MatchTimeout", c.MatchTimeout, 10 * time.Second},
		{"Jobs", cfg.Runner.Jobs, 0},
	}

	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, c.got, c.want)
		}
	}

	if !slices.Equal(cfg.Runner.Extensions, []string{".cs"}) {
		t.Errorf("Extensions: got %v", cfg.Runner.Extensions)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yml")

	yaml := `compressor:
  remove_tags:
    - revision
    - history
  remove_param_upto_n_words: 2
  match_timeout: 250ms
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if !slices.Equal(cfg.Compressor.RemoveTags, []string{"revision", "history"}) {
		t.Errorf("RemoveTags: got %v", cfg.Compressor.RemoveTags)
	}
	if cfg.Compressor.RemoveParamNameUptoNWords != 2 {
		t.Errorf("RemoveParamNameUptoNWords: got %d, want 2", cfg.Compressor.RemoveParamNameUptoNWords)
	}
	if cfg.Compressor.MatchTimeout != 250*time.Millisecond {
		t.Errorf("MatchTimeout: got %s, want 250ms", cfg.Compressor.MatchTimeout)
	}

	// Verify unspecified fields retain defaults.
	if !cfg.Compressor.RemoveRegions {
		t.Error("RemoveRegions: got false, want true (default)")
	}
	if cfg.Compressor.Newline != NewlineAuto {
		t.Errorf("Newline: got %q, want %q (default)", cfg.Compressor.Newline, NewlineAuto)
	}
	if !slices.Equal(cfg.Runner.SkipDirs, []string{".git", "bin", "obj"}) {
		t.Errorf("SkipDirs: got %v (want defaults)", cfg.Runner.SkipDirs)
	}
}

func TestLoadNoConfigReturnsDefaults(t *testing.T) {
	// Use an empty temp dir so no config file is discovered.
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	want := DefaultConfig()
	if cfg.Compressor.RemoveRegions != want.Compressor.RemoveRegions ||
		cfg.Compressor.Newline != want.Compressor.Newline ||
		cfg.Runner.Jobs != want.Runner.Jobs {
		t.Errorf("expected default config, got %+v", cfg)
	}
}

func TestDiscoverPriority(t *testing.T) {
	dir := t.TempDir()

	content := []byte("compressor:\n  remove_regions: false\n")

	// Create all four files; doccompress.yml (first in order) should win.
	for _, name := range configFileNames {
		if err := os.WriteFile(filepath.Join(dir, name), content, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	for i, name := range configFileNames {
		got := Discover(dir)
		want := filepath.Join(dir, name)
		if got != want {
			t.Errorf("step %d: Discover = %q, want %q", i, got, want)
		}
		if err := os.Remove(want); err != nil {
			t.Fatal(err)
		}
	}

	if got := Discover(dir); got != "" {
		t.Errorf("after removing all files: Discover = %q, want empty string", got)
	}
}

func TestLoadDiscovery(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".doccompress.yaml")

	yaml := `runner:
  jobs: 3
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Runner.Jobs != 3 {
		t.Errorf("Jobs: got %d, want 3", cfg.Runner.Jobs)
	}
	if !cfg.Compressor.RemoveRegions {
		t.Error("RemoveRegions: got false, want true (default)")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")

	if err := os.WriteFile(path, []byte("{{{{not valid yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}

func TestLoadUnknownKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "typo.yml")

	if err := os.WriteFile(path, []byte("compressor:\n  remove_region: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for unknown key, got nil")
	}
	if !strings.Contains(err.Error(), "remove_region") {
		t.Errorf("error should name the unknown key: %v", err)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	if _, err := Load("/nonexistent/path/config.yml"); err == nil {
		t.Error("expected error for missing explicit path, got nil")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.yml")

	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Compressor.MatchTimeout != DefaultConfig().Compressor.MatchTimeout {
		t.Errorf("expected default config for empty file, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"negative param words", func(c *Config) { c.Compressor.RemoveParamNameUptoNWords = -1 }, "remove_param_upto_n_words"},
		{"negative summary words", func(c *Config) { c.Compressor.RemoveSummaryUptoNWords = -3 }, "remove_summary_upto_n_words"},
		{"empty tag", func(c *Config) { c.Compressor.RemoveTags = []string{""} }, "remove_tags"},
		{"tag with bracket", func(c *Config) { c.Compressor.RemoveTags = []string{"rev>"} }, "remove_tags"},
		{"unknown newline", func(c *Config) { c.Compressor.Newline = "cr" }, "newline"},
		{"negative timeout", func(c *Config) { c.Compressor.MatchTimeout = -time.Second }, "match_timeout"},
		{"negative jobs", func(c *Config) { c.Runner.Jobs = -1 }, "jobs"},
		{"extension without dot", func(c *Config) { c.Runner.Extensions = []string{"cs"} }, "extensions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error should wrap ErrInvalid: %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateReportsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Compressor.RemoveParamNameUptoNWords = -1
	cfg.Runner.Jobs = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	for _, want := range []string{"remove_param_upto_n_words", "jobs"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}

func TestValidateAcceptsQualifiedTagNames(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Compressor.RemoveTags = []string{"revision", "x:history", "change-log", "note_1"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
