package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFile writes content to dir/name and returns the full path.
// It fails the test immediately on error.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755), "Failed to create parent dir")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "Failed to write %s", name)
	return path
}

// SetupSchema creates a temporary directory holding a .confgen.yaml with
// content. It returns the absolute directory and the schema path.
func SetupSchema(t *testing.T, content string) (string, string) {
	t.Helper()

	absPath, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	return absPath, WriteFile(t, absPath, ".confgen.yaml", content)
}
