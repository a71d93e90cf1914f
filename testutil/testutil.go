package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFile writes content to name inside dir, creating parent directories,
// and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755), "failed to create dir for %s", name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to write %s", name)
	return path
}

// ReadFile returns the contents of path, failing the test if it cannot be read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err, "failed to read %s", path)
	return string(data)
}

// ProjectDir creates a temporary project directory, switches into it for the
// duration of the test and isolates XDG_CONFIG_HOME so a developer's own
// navcoord config never leaks into tests.
func ProjectDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".xdg"))
	t.Chdir(dir)
	return dir
}

// WriteConfig writes a navcoord.yml into dir and returns its path.
func WriteConfig(t *testing.T, dir, content string) string {
	t.Helper()
	return WriteFile(t, dir, "navcoord.yml", content)
}

// RandomString generates a random string of the specified length
func RandomString(length int) string {
	bytes := make([]byte, length/2+1)
	if _, err := rand.Read(bytes); err != nil {
		panic(err)
	}
	return hex.EncodeToString(bytes)[:length]
}
