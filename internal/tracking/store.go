package tracking

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/layup-dev/layup/internal/component"
	"github.com/layup-dev/layup/internal/fsops"
)

// trackingFile is the on-disk JSON document holding all entries for a
// workspace, keyed by "name@version".
type trackingFile struct {
	Entries map[string]*Entry `json:"entries"`
}

// FileStore implements Store using a single JSON file on disk.
type FileStore struct {
	fs   fsops.FS
	path string
}

// NewFileStore creates a new FileStore backed by the file at path.
func NewFileStore(fs fsops.FS, path string) *FileStore {
	return &FileStore{fs: fs, path: path}
}

// load reads the tracking file. A missing file yields an empty document.
func (s *FileStore) load() (*trackingFile, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &trackingFile{Entries: map[string]*Entry{}}, nil
		}
		return nil, fmt.Errorf("failed to read tracking file: %w", err)
	}

	var doc trackingFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse tracking file: %w", err)
	}
	if doc.Entries == nil {
		doc.Entries = map[string]*Entry{}
	}
	return &doc, nil
}

// save writes the tracking file atomically.
func (s *FileStore) save(doc *trackingFile) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode tracking file: %w", err)
	}
	if err := s.fs.AtomicWrite(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write tracking file: %w", err)
	}
	return nil
}

// GetEntry looks up the entry for id. With IgnoreVersion set, an exact
// version match is preferred but any tracked version of the same name
// resolves; without it, only the exact version matches.
func (s *FileStore) GetEntry(id component.ID, opts GetOptions) (*Entry, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return lookup(doc.Entries, id, opts), nil
}

// SaveEntry writes an entry. A non-nested entry reconciles every tracked
// version of the same name into one slot; nested entries are keyed by exact
// version so distinct versions may coexist.
func (s *FileStore) SaveEntry(entry *Entry) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	upsert(doc.Entries, entry)
	return s.save(doc)
}

// List returns all tracked entries sorted by id.
func (s *FileStore) List() ([]*Entry, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return sortedEntries(doc.Entries), nil
}

// DeleteEntry removes every entry for the given component name.
func (s *FileStore) DeleteEntry(name string) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	for key, entry := range doc.Entries {
		if entry.ID.Name == name {
			delete(doc.Entries, key)
		}
	}
	return s.save(doc)
}

// lookup resolves id against an entry map using the Store lookup semantics.
func lookup(entries map[string]*Entry, id component.ID, opts GetOptions) *Entry {
	if entry, ok := entries[id.String()]; ok {
		return entry
	}
	if !opts.IgnoreVersion {
		return nil
	}

	// Any version of the same name resolves; iterate in sorted key order so
	// the result is deterministic.
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if entries[key].ID.Name == id.Name {
			return entries[key]
		}
	}
	return nil
}

// upsert writes entry into an entry map, reconciling same-name slots for
// non-nested origins.
func upsert(entries map[string]*Entry, entry *Entry) {
	if entry.Origin != component.OriginNested {
		for key, existing := range entries {
			if existing.ID.Name == entry.ID.Name {
				delete(entries, key)
			}
		}
	}
	entries[entry.ID.String()] = entry
}

// sortedEntries returns the entries of a map sorted by id string.
func sortedEntries(entries map[string]*Entry) []*Entry {
	result := make([]*Entry, 0, len(entries))
	for _, entry := range entries {
		result = append(result, entry)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID.String() < result[j].ID.String()
	})
	return result
}
