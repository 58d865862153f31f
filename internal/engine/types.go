package engine

import (
	"time"

	"github.com/layup-dev/layup/internal/component"
)

// ImportRequest represents a request to import a batch of components.
type ImportRequest struct {
	// WorkspaceRoot is the workspace directory files are laid out under
	WorkspaceRoot string

	// Refs are the "name@version" references to import
	Refs []string

	// DryRun computes transforms without persisting or writing files
	DryRun bool
}

// ImportResult represents the result of an import.
type ImportResult struct {
	// Items are the computed transforms, one per distinct component
	Items []component.DirItem

	// Written is the list of workspace-relative paths written (empty if
	// DryRun)
	Written []string
}

// CheckoutRequest represents a request to rematerialize an already-tracked
// component.
type CheckoutRequest struct {
	// WorkspaceRoot is the workspace directory files are laid out under
	WorkspaceRoot string

	// Name is the tracked component name (any tracked version resolves)
	Name string
}

// CheckoutResult represents the result of a checkout.
type CheckoutResult struct {
	// ID is the tracked version that was materialized
	ID component.ID

	// Items are the component's own fresh transform plus its dependencies'
	// recalled transforms
	Items []component.DirItem

	// Written is the list of workspace-relative paths written
	Written []string
}

// StatusRequest represents a request for workspace tracking status.
type StatusRequest struct{}

// StatusResult represents the current tracking status.
type StatusResult struct {
	// Components are the tracked components in stable order
	Components []ComponentInfo
}

// ComponentInfo describes one tracked component.
type ComponentInfo struct {
	// ID is the tracked component version
	ID component.ID

	// Origin is the component's provenance
	Origin component.Origin

	// SharedDir is the recorded originally shared directory, if any
	SharedDir component.OptionalDir

	// WrapDir is the recorded wrapper directory, if any
	WrapDir component.OptionalDir

	// ImportedAt is when the entry was last written
	ImportedAt time.Time
}

// RemoveRequest represents a request to untrack a component and remove its
// files.
type RemoveRequest struct {
	// WorkspaceRoot is the workspace directory
	WorkspaceRoot string

	// Name is the component name to remove
	Name string
}

// RemoveResult represents the result of a remove.
type RemoveResult struct {
	// Removed is the component directory that was deleted, if it existed
	Removed string
}

// RestoreRequest represents a request to write a tracked component's
// original file tree to a directory.
type RestoreRequest struct {
	// WorkspaceRoot is the workspace the component is materialized in
	WorkspaceRoot string

	// Name is the tracked component name
	Name string

	// Dir is the destination directory for the restored tree
	Dir string
}

// RestoreResult represents the result of a restore.
type RestoreResult struct {
	// ID is the tracked version that was restored
	ID component.ID

	// Restored is the list of original relative paths written
	Restored []string
}

// PublishRequest represents a request to capture a directory as a component
// snapshot.
type PublishRequest struct {
	// Dir is the directory whose files are captured
	Dir string

	// Ref is the "name@version" to publish as
	Ref string

	// DependencyRefs are already-published components recorded as the
	// snapshot's resolved dependencies
	DependencyRefs []string
}

// PublishResult represents the result of a publish.
type PublishResult struct {
	// ID is the published component version
	ID component.ID

	// FileCount is the number of captured files
	FileCount int
}
