package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openRoot opens a fresh temp dir as an *os.Root.
func openRoot(t *testing.T) (*os.Root, string) {
	t.Helper()
	dir := t.TempDir()
	root, err := os.OpenRoot(dir)
	require.NoError(t, err)
	t.Cleanup(func() { root.Close() })
	return root, dir
}

func TestChmod(t *testing.T) {
	root, dir := openRoot(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "run.sh"), []byte("#!/bin/sh\n"), 0o644))

	require.NoError(t, Chmod(root, "run.sh", 0o755))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(filepath.Join(dir, "run.sh"))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
	}
}

func TestChmodIgnoresTypeBits(t *testing.T) {
	root, dir := openRoot(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))

	require.NoError(t, Chmod(root, "src", os.ModeDir|0o700))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(filepath.Join(dir, "src"))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())
	}
}

func TestChmodOutsideRoot(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("chmod is a no-op on windows")
	}
	root, _ := openRoot(t)

	assert.Error(t, Chmod(root, "../escape", 0o755))
}
