// Package objectstore provides content-addressable storage for component
// snapshots.
//
// Snapshots are serialized to canonical JSON and addressed by the SHA-256
// digest of that encoding. A reference index maps "name@version" to a digest
// so versions can be resolved without scanning objects. Implementations:
//   - FileStore: local directory layout under the layup root
//   - S3Store: the same layout in an S3/MinIO bucket
//   - CachedStore: LRU read-through decorator over any Store
//   - FakeStore: in-memory, for tests
package objectstore

import (
	"context"
	"errors"

	"github.com/layup-dev/layup/internal/component"
)

var (
	// ErrNotFound indicates no object is stored for the requested version.
	ErrNotFound = errors.New("object not found")

	// ErrCorrupt indicates a stored object failed to decode or failed its
	// digest check.
	ErrCorrupt = errors.New("object corrupt")
)

// Store resolves component versions to immutable snapshots.
type Store interface {
	// ResolveVersion resolves id to its stored snapshot. A missing or
	// corrupt object is a fatal error; retry policy, if any, belongs to the
	// caller.
	ResolveVersion(ctx context.Context, id component.ID) (*component.Snapshot, error)

	// PutVersion stores a snapshot and indexes it under its id.
	PutVersion(ctx context.Context, snapshot *component.Snapshot) error
}
