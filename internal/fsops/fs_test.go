package fsops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicWrite(t *testing.T) {
	fs := NewRealFS()
	path := filepath.Join(t.TempDir(), "nested", "state.json")

	require.NoError(t, fs.AtomicWrite(path, []byte(`{}`), 0644))

	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))

	// Overwrite in place.
	require.NoError(t, fs.AtomicWrite(path, []byte(`{"a":1}`), 0644))
	data, err = fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(data))

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileCreatesParents(t *testing.T) {
	fs := NewRealFS()
	path := filepath.Join(t.TempDir(), "a", "b", "c.txt")

	require.NoError(t, fs.WriteFile(path, []byte("x"), 0644))
	assert.FileExists(t, path)
}

func TestExists(t *testing.T) {
	fs := NewRealFS()
	dir := t.TempDir()

	exists, err := fs.Exists(dir)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = fs.Exists(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestValidateRelPath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{path: "a/b/c.txt"},
		{path: "c.txt"},
		{path: "a/../b.txt"},
		{path: "", wantErr: true},
		{path: "/abs/path", wantErr: true},
		{path: "../escape", wantErr: true},
		{path: "a/../../escape", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			err := ValidateRelPath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
