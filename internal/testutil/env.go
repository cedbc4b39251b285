package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestDir creates a temporary directory containing .sieve/config.yaml
// with SampleConfigYAML. The directory is removed when the test completes.
func SetupTestDir(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	WriteTestFile(t, tmpDir, filepath.Join(".sieve", "config.yaml"), SampleConfigYAML)
	return tmpDir
}

// WriteTestFile writes content to path relative to base, creating parent
// directories as needed.
func WriteTestFile(t *testing.T, base, path, content string) {
	t.Helper()

	fullPath := filepath.Join(base, path)
	require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0755))
	require.NoError(t, os.WriteFile(fullPath, []byte(content), 0644))
}

