package objectstore

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeStoreConcurrentResolves(t *testing.T) {
	store := NewFakeStore()
	ctx := context.Background()

	snapshot := testSnapshot()
	require.NoError(t, store.PutVersion(ctx, snapshot))

	// The dirs resolver drives the store from many goroutines at once; the
	// fake must stay consistent under that load.
	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = store.ResolveVersion(ctx, snapshot.ID)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, workers, store.ResolveCount())
}
