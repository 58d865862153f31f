package objectstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/layup-dev/layup/internal/component"
	"github.com/layup-dev/layup/internal/fsops"
	"github.com/layup-dev/layup/internal/hash"
)

// FileStore implements Store using a local directory.
//
// Layout under root:
//
//	objects/<aa>/<digest>.json   snapshot objects, sharded by digest prefix
//	refs.json                    "name@version" -> digest index
type FileStore struct {
	fs     fsops.FS
	hasher hash.Hasher
	root   string
}

// NewFileStore creates a new FileStore rooted at root.
func NewFileStore(fs fsops.FS, hasher hash.Hasher, root string) *FileStore {
	return &FileStore{fs: fs, hasher: hasher, root: root}
}

// refsPath returns the path to the reference index.
func (s *FileStore) refsPath() string {
	return filepath.Join(s.root, "refs.json")
}

// objectPath returns the sharded path for a digest.
func (s *FileStore) objectPath(digest string) string {
	shard := digest
	if len(shard) > 2 {
		shard = shard[:2]
	}
	return filepath.Join(s.root, "objects", shard, digest+".json")
}

// loadRefs reads the reference index. A missing index is empty.
func (s *FileStore) loadRefs() (map[string]string, error) {
	data, err := s.fs.ReadFile(s.refsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read ref index: %w", err)
	}

	var refs map[string]string
	if err := json.Unmarshal(data, &refs); err != nil {
		return nil, fmt.Errorf("%w: ref index: %v", ErrCorrupt, err)
	}
	return refs, nil
}

// ResolveVersion resolves id to its stored snapshot.
func (s *FileStore) ResolveVersion(ctx context.Context, id component.ID) (*component.Snapshot, error) {
	refs, err := s.loadRefs()
	if err != nil {
		return nil, err
	}

	digest, ok := refs[id.String()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	data, err := s.fs.ReadFile(s.objectPath(digest))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s (dangling ref %s)", ErrNotFound, id, digest)
		}
		return nil, fmt.Errorf("failed to read object %s: %w", digest, err)
	}
	if got := s.hasher.HashBytes(data); got != digest {
		return nil, fmt.Errorf("%w: %s: digest mismatch, want %s got %s", ErrCorrupt, id, digest, got)
	}

	var snapshot component.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, id, err)
	}
	return &snapshot, nil
}

// PutVersion stores a snapshot and indexes it under its id.
func (s *FileStore) PutVersion(ctx context.Context, snapshot *component.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	digest := s.hasher.HashBytes(data)

	if err := s.fs.AtomicWrite(s.objectPath(digest), data, 0644); err != nil {
		return fmt.Errorf("failed to write object %s: %w", digest, err)
	}

	refs, err := s.loadRefs()
	if err != nil {
		return err
	}
	refs[snapshot.ID.String()] = digest

	refData, err := json.MarshalIndent(refs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode ref index: %w", err)
	}
	if err := s.fs.AtomicWrite(s.refsPath(), refData, 0644); err != nil {
		return fmt.Errorf("failed to write ref index: %w", err)
	}
	return nil
}
