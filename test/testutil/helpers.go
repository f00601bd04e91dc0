// Package testutil holds shared helpers for integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// LoadTestJSON reads a fixture from test/testdata by name. The path is
// resolved relative to this file so tests can run from any package
// directory.
func LoadTestJSON(t *testing.T, filename string) []byte {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	path := filepath.Join(filepath.Dir(currentFile), "..", "testdata", filename)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return data
}
