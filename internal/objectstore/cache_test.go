package objectstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/layup-dev/layup/internal/component"
)

func TestCachedStoreServesRepeatsFromCache(t *testing.T) {
	inner := NewFakeStore()
	ctx := context.Background()

	snapshot := testSnapshot()
	require.NoError(t, inner.PutVersion(ctx, snapshot))

	cached, err := NewCachedStore(inner, 8)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		got, err := cached.ResolveVersion(ctx, snapshot.ID)
		require.NoError(t, err)
		assert.Equal(t, snapshot, got)
	}
	assert.Equal(t, 1, inner.ResolveCount())
}

func TestCachedStoreDoesNotCacheFailures(t *testing.T) {
	inner := NewFakeStore()
	cached, err := NewCachedStore(inner, 8)
	require.NoError(t, err)

	missing := component.ID{Name: "nope", Version: "1.0.0"}
	ctx := context.Background()

	_, err = cached.ResolveVersion(ctx, missing)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = cached.ResolveVersion(ctx, missing)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 2, inner.ResolveCount())

	// Once the version exists it resolves and is cached.
	snapshot := testSnapshot()
	snapshot.ID = missing
	require.NoError(t, inner.PutVersion(ctx, snapshot))

	_, err = cached.ResolveVersion(ctx, missing)
	require.NoError(t, err)
	_, err = cached.ResolveVersion(ctx, missing)
	require.NoError(t, err)
	assert.Equal(t, 3, inner.ResolveCount())
}

func TestCachedStorePutPrimesCache(t *testing.T) {
	inner := NewFakeStore()
	cached, err := NewCachedStore(inner, 8)
	require.NoError(t, err)

	ctx := context.Background()
	snapshot := testSnapshot()
	require.NoError(t, cached.PutVersion(ctx, snapshot))

	_, err = cached.ResolveVersion(ctx, snapshot.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, inner.ResolveCount())
}
