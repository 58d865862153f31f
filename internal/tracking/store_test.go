package tracking

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/layup-dev/layup/internal/component"
	"github.com/layup-dev/layup/internal/fsops"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(fsops.NewRealFS(), filepath.Join(t.TempDir(), "tracking.json"))
}

func TestGetEntryMissingIsNotAnError(t *testing.T) {
	store := newTestStore(t)

	entry, err := store.GetEntry(component.ID{Name: "lib", Version: "1.0.0"}, GetOptions{})
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestGetEntryVersionSemantics(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveEntry(&Entry{
		ID:     component.ID{Name: "lib", Version: "1.0.0"},
		Origin: component.OriginImported,
	}))

	// Exact lookup of another version misses.
	entry, err := store.GetEntry(component.ID{Name: "lib", Version: "2.0.0"}, GetOptions{})
	require.NoError(t, err)
	assert.Nil(t, entry)

	// Ignore-version lookup of another version resolves to the tracked
	// slot.
	entry, err = store.GetEntry(component.ID{Name: "lib", Version: "2.0.0"}, GetOptions{IgnoreVersion: true})
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "1.0.0", entry.ID.Version)
}

func TestSaveEntryReconcilesNonNested(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveEntry(&Entry{
		ID:     component.ID{Name: "lib", Version: "1.0.0"},
		Origin: component.OriginNested,
	}))
	require.NoError(t, store.SaveEntry(&Entry{
		ID:     component.ID{Name: "lib", Version: "2.0.0"},
		Origin: component.OriginImported,
	}))

	// The imported save reconciled both versions into one slot.
	entries, err := store.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "2.0.0", entries[0].ID.Version)
	assert.Equal(t, component.OriginImported, entries[0].Origin)
}

func TestSaveEntryNestedVersionsCoexist(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveEntry(&Entry{
		ID:     component.ID{Name: "lib", Version: "1.0.0"},
		Origin: component.OriginNested,
	}))
	require.NoError(t, store.SaveEntry(&Entry{
		ID:     component.ID{Name: "lib", Version: "2.0.0"},
		Origin: component.OriginNested,
	}))

	entries, err := store.List()
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestEntryRoundTripsDirValues(t *testing.T) {
	store := newTestStore(t)

	saved := &Entry{
		ID:         component.ID{Name: "lib", Version: "1.0.0"},
		Origin:     component.OriginImported,
		SharedDir:  component.SomeDir("a/b"),
		WrapDir:    component.NoDir(),
		ImportedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.SaveEntry(saved))

	entry, err := store.GetEntry(saved.ID, GetOptions{})
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, component.SomeDir("a/b"), entry.SharedDir)
	assert.Equal(t, component.NoDir(), entry.WrapDir)
	assert.True(t, saved.ImportedAt.Equal(entry.ImportedAt))
}

func TestDeleteEntryRemovesAllVersions(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveEntry(&Entry{
		ID:     component.ID{Name: "lib", Version: "1.0.0"},
		Origin: component.OriginNested,
	}))
	require.NoError(t, store.SaveEntry(&Entry{
		ID:     component.ID{Name: "lib", Version: "2.0.0"},
		Origin: component.OriginNested,
	}))
	require.NoError(t, store.SaveEntry(&Entry{
		ID:     component.ID{Name: "other", Version: "1.0.0"},
		Origin: component.OriginImported,
	}))

	require.NoError(t, store.DeleteEntry("lib"))

	entries, err := store.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "other", entries[0].ID.Name)
}
