package objectstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/layup-dev/layup/internal/component"
	"github.com/layup-dev/layup/internal/fsops"
	"github.com/layup-dev/layup/internal/hash"
)

func newTestFileStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	root := t.TempDir()
	return NewFileStore(fsops.NewRealFS(), hash.NewSHA256Hasher(), root), root
}

func testSnapshot() *component.Snapshot {
	return &component.Snapshot{
		ID: component.ID{Name: "lib", Version: "1.0.0"},
		Files: []component.FileRecord{
			{RelativePath: "src/index.js", Contents: []byte("export {}\n")},
		},
		Dependencies: []component.Dependency{
			{
				ID:          component.ID{Name: "base", Version: "0.1.0"},
				SourcePaths: []string{"src/base.js"},
			},
		},
	}
}

func TestFileStorePutAndResolve(t *testing.T) {
	store, _ := newTestFileStore(t)
	ctx := context.Background()

	snapshot := testSnapshot()
	require.NoError(t, store.PutVersion(ctx, snapshot))

	got, err := store.ResolveVersion(ctx, snapshot.ID)
	require.NoError(t, err)
	assert.Equal(t, snapshot, got)
}

func TestFileStoreResolveMissing(t *testing.T) {
	store, _ := newTestFileStore(t)

	_, err := store.ResolveVersion(context.Background(), component.ID{Name: "nope", Version: "1.0.0"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreDetectsCorruptObject(t *testing.T) {
	store, root := newTestFileStore(t)
	ctx := context.Background()

	snapshot := testSnapshot()
	require.NoError(t, store.PutVersion(ctx, snapshot))

	// Tamper with the stored object so its digest no longer matches.
	var objectPath string
	err := filepath.WalkDir(filepath.Join(root, "objects"), func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			objectPath = p
		}
		return nil
	})
	require.NoError(t, err)
	require.NotEmpty(t, objectPath)
	require.NoError(t, os.WriteFile(objectPath, []byte(`{"id":{}}`), 0644))

	_, err = store.ResolveVersion(ctx, snapshot.ID)
	require.ErrorIs(t, err, ErrCorrupt)
}
