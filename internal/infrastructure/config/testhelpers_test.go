package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// isolateXDG points every XDG directory at a fresh temp dir.
func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("TILEMUX_LOG_LEVEL", "")
	t.Setenv("TILEMUX_LOG_FORMAT", "")
	return root
}

func writeConfig(t *testing.T, root, content string) string {
	t.Helper()
	dir := filepath.Join(root, "config", appName)
	require.NoError(t, os.MkdirAll(dir, dirPerm))
	path := filepath.Join(dir, configName)
	require.NoError(t, os.WriteFile(path, []byte(content), filePerm))
	return path
}

func loadManager(t *testing.T) *Manager {
	t.Helper()
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	return mgr
}
