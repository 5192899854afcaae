// Package testutil provides shared test helpers for golden file testing.
package testutil

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/donaldgifford/doccompress/internal/config"
)

// Update is a flag that, when set, regenerates golden files from current output.
// Usage: go test ./... -update
var Update = flag.Bool("update", false, "update golden files")

// Golden case file names.
const (
	InputFile    = "input.cs"
	ExpectedFile = "expected.cs"
	ConfigFile   = "doccompress.yml"
)

// FormatFunc compresses the input of the golden case stored in dir.
type FormatFunc func(t *testing.T, dir, input string) string

// CaseConfig returns the configuration of the golden case in dir: its
// doccompress.yml if present, otherwise the defaults.
func CaseConfig(t *testing.T, dir string) *config.Config {
	t.Helper()

	path := filepath.Join(dir, ConfigFile)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return config.DefaultConfig()
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load %s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid %s: %v", path, err)
	}
	return cfg
}

// RunGolden runs a single golden file test in the given directory.
// It reads input.cs, applies formatFn, and compares against expected.cs.
func RunGolden(t *testing.T, dir string, formatFn FormatFunc) {
	t.Helper()

	inputPath := filepath.Join(dir, InputFile)
	expectedPath := filepath.Join(dir, ExpectedFile)

	inputBytes, err := os.ReadFile(inputPath)
	if err != nil {
		t.Fatalf("failed to read %s: %v", inputPath, err)
	}

	actual := formatFn(t, dir, string(inputBytes))

	if *Update {
		if err := os.WriteFile(expectedPath, []byte(actual), 0o644); err != nil {
			t.Fatalf("failed to update golden file %s: %v", expectedPath, err)
		}
		t.Logf("updated golden file: %s", expectedPath)
		return
	}

	expectedBytes, err := os.ReadFile(expectedPath)
	if err != nil {
		t.Fatalf("failed to read %s: %v", expectedPath, err)
	}

	if diff := cmp.Diff(string(expectedBytes), actual); diff != "" {
		t.Errorf("output mismatch for %s (-expected +actual):\n%s", dir, diff)
	}
}

// RunGoldenDir walks all subdirectories under testdataDir and runs
// RunGolden for each as a subtest.
func RunGoldenDir(t *testing.T, testdataDir string, formatFn FormatFunc) {
	t.Helper()

	entries, err := os.ReadDir(testdataDir)
	if err != nil {
		t.Fatalf("failed to read testdata dir %s: %v", testdataDir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		t.Run(entry.Name(), func(t *testing.T) {
			dir := filepath.Join(testdataDir, entry.Name())
			RunGolden(t, dir, formatFn)
		})
	}
}
