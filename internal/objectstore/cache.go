package objectstore

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/layup-dev/layup/internal/component"
)

// CachedStore is a read-through LRU decorator over a Store. Batch operations
// resolve the same versions repeatedly (a component and its dependents both
// reference the dependency's snapshot), so resolved snapshots are kept hot.
// Snapshots are immutable, so cached values never go stale.
type CachedStore struct {
	inner Store
	cache *lru.Cache[string, *component.Snapshot]
}

// NewCachedStore creates a CachedStore holding up to size snapshots.
func NewCachedStore(inner Store, size int) (*CachedStore, error) {
	cache, err := lru.New[string, *component.Snapshot](size)
	if err != nil {
		return nil, err
	}
	return &CachedStore{inner: inner, cache: cache}, nil
}

// ResolveVersion resolves id, serving from cache when possible. Failed
// resolutions are not cached.
func (s *CachedStore) ResolveVersion(ctx context.Context, id component.ID) (*component.Snapshot, error) {
	if snapshot, ok := s.cache.Get(id.String()); ok {
		return snapshot, nil
	}

	snapshot, err := s.inner.ResolveVersion(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Add(id.String(), snapshot)
	return snapshot, nil
}

// PutVersion stores a snapshot through the inner store and primes the cache.
func (s *CachedStore) PutVersion(ctx context.Context, snapshot *component.Snapshot) error {
	if err := s.inner.PutVersion(ctx, snapshot); err != nil {
		return err
	}
	s.cache.Add(snapshot.ID.String(), snapshot)
	return nil
}
