// Package engine provides the core business logic for layup operations.
//
// The engine is the orchestration layer between CLI commands and the pure
// directory-transform core. It coordinates snapshot resolution, origin
// tracking, transform computation, and the actual laying out of component
// files in the workspace.
//
// Key components:
//   - Engine: main orchestrator called by the CLI
//   - Import/Checkout: batch import and single-component recall
//   - Publish: capturing a directory into the object store
//   - Status/Remove: tracking inspection and teardown
package engine

import (
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/layup-dev/layup/internal/clock"
	"github.com/layup-dev/layup/internal/dirs"
	"github.com/layup-dev/layup/internal/fsops"
	"github.com/layup-dev/layup/internal/objectstore"
	"github.com/layup-dev/layup/internal/tracking"
)

// Engine orchestrates all layup operations.
// It is the main API surface called by the CLI.
type Engine struct {
	tracking tracking.Store
	objects  objectstore.Store
	resolver *dirs.Resolver
	fs       fsops.FS
	clock    clock.Clock
	logger   *log.Logger
}

// New creates a new Engine with the given dependencies.
func New(
	trackingStore tracking.Store,
	objects objectstore.Store,
	fs fsops.FS,
	clk clock.Clock,
	logger *log.Logger,
) *Engine {
	return &Engine{
		tracking: trackingStore,
		objects:  objects,
		resolver: dirs.NewResolver(trackingStore, objects),
		fs:       fs,
		clock:    clk,
		logger:   logger,
	}
}

// componentRoot returns the workspace directory a component's files are laid
// out under.
func componentRoot(workspaceRoot, name string) string {
	return filepath.Join(workspaceRoot, "components", filepath.FromSlash(name))
}
