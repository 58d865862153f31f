package tracking

import (
	"github.com/layup-dev/layup/internal/component"
)

// FakeStore implements Store in memory for testing.
type FakeStore struct {
	entries map[string]*Entry
}

// NewFakeStore creates a new empty FakeStore.
func NewFakeStore() *FakeStore {
	return &FakeStore{entries: map[string]*Entry{}}
}

// GetEntry looks up the entry for id.
func (s *FakeStore) GetEntry(id component.ID, opts GetOptions) (*Entry, error) {
	return lookup(s.entries, id, opts), nil
}

// SaveEntry writes an entry.
func (s *FakeStore) SaveEntry(entry *Entry) error {
	upsert(s.entries, entry)
	return nil
}

// List returns all entries sorted by id.
func (s *FakeStore) List() ([]*Entry, error) {
	return sortedEntries(s.entries), nil
}

// DeleteEntry removes every entry for the given component name.
func (s *FakeStore) DeleteEntry(name string) error {
	for key, entry := range s.entries {
		if entry.ID.Name == name {
			delete(s.entries, key)
		}
	}
	return nil
}
