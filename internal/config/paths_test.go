package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPathsRootOverride(t *testing.T) {
	root := t.TempDir()
	t.Setenv("LAYUP_ROOT", root)

	paths, err := DefaultPaths()
	require.NoError(t, err)
	assert.Equal(t, root, paths.Root)
	assert.Equal(t, filepath.Join(root, "objects"), paths.Objects)
}

func TestEnsureDirectories(t *testing.T) {
	root := filepath.Join(t.TempDir(), "layup")
	t.Setenv("LAYUP_ROOT", root)

	paths, err := DefaultPaths()
	require.NoError(t, err)
	require.NoError(t, paths.EnsureDirectories())

	assert.DirExists(t, paths.Root)
	assert.DirExists(t, paths.Objects)
}

func TestWorkspacePaths(t *testing.T) {
	assert.Equal(t, filepath.Join("ws", ".layup"), WorkspaceDir("ws"))
	assert.Equal(t, filepath.Join("ws", ".layup", "tracking.json"), TrackingPath("ws"))
}
