// Package tracking persists per-component provenance for a workspace.
//
// The tracking store is the authoritative record of which components exist in
// a workspace, how each one got there (authored, imported, or nested), and
// the shared/wrap directory values that were actually used on disk when the
// component was installed. Directory values are written once at install time
// and treated as immutable historical facts afterwards: dependents recall
// them verbatim instead of recomputing them.
package tracking

import (
	"time"

	"github.com/layup-dev/layup/internal/component"
)

// Entry is the tracked record for one component.
type Entry struct {
	// ID is the component's current tracked version
	ID component.ID `json:"id"`

	// Origin is the component's current provenance
	Origin component.Origin `json:"origin"`

	// SharedDir is the originally shared directory used on disk, if any
	SharedDir component.OptionalDir `json:"originallySharedDir"`

	// WrapDir is the wrapper directory used on disk, if any
	WrapDir component.OptionalDir `json:"wrapDir"`

	// ImportedAt is when the entry was last written
	ImportedAt time.Time `json:"importedAt"`
}

// GetOptions controls entry lookup.
type GetOptions struct {
	// IgnoreVersion matches any tracked version of the component name.
	// Top-level lookups use this so a re-import reconciles to one tracking
	// slot; dependency lookups require an exact version match so two
	// versions of the same component may coexist as distinct entries.
	IgnoreVersion bool
}

// Store provides an interface for reading and writing tracking entries.
type Store interface {
	// GetEntry looks up the entry for id. A missing entry is not an error:
	// it returns (nil, nil).
	GetEntry(id component.ID, opts GetOptions) (*Entry, error)

	// SaveEntry writes an entry, replacing any entry for the same component
	// name when the lookup semantics reconcile to one slot.
	SaveEntry(entry *Entry) error

	// List returns all tracked entries in stable order.
	List() ([]*Entry, error)

	// DeleteEntry removes every entry for the given component name.
	DeleteEntry(name string) error
}
