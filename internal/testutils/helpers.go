package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupProject creates a temporary project directory holding
// public/quotes.json with the given content.
// It returns the absolute project directory and the quotes file path.
// It fails the test immediately on error.
func SetupProject(t *testing.T, content string) (string, string) {
	t.Helper()

	absPath, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	path := filepath.Join(absPath, "public", "quotes.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755), "Failed to create public dir")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "Failed to write quotes file")

	return absPath, path
}
