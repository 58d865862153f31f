package objectstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/layup-dev/layup/internal/component"
)

// FakeStore implements Store in memory for testing. The resolver fans out
// over it concurrently, so all state is mutex-guarded.
type FakeStore struct {
	mu           sync.Mutex
	snapshots    map[string]*component.Snapshot
	resolveCalls int
}

// NewFakeStore creates a new empty FakeStore.
func NewFakeStore() *FakeStore {
	return &FakeStore{snapshots: map[string]*component.Snapshot{}}
}

// ResolveVersion resolves id from memory.
func (s *FakeStore) ResolveVersion(ctx context.Context, id component.ID) (*component.Snapshot, error) {
	s.mu.Lock()
	s.resolveCalls++
	snapshot, ok := s.snapshots[id.String()]
	s.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return snapshot, nil
}

// PutVersion stores a snapshot in memory.
func (s *FakeStore) PutVersion(ctx context.Context, snapshot *component.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[snapshot.ID.String()] = snapshot
	return nil
}

// ResolveCount reports how many times ResolveVersion has been called, for
// cache tests.
func (s *FakeStore) ResolveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolveCalls
}
