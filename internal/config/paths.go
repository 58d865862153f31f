// Package config manages layup configuration and filesystem paths.
//
// The global root (default ~/.layup) holds the local object store. Each
// workspace additionally carries a .layup/ directory with its tracking file.
// The root can be overridden with the LAYUP_ROOT environment variable.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths used by layup.
type Paths struct {
	// Root is the base directory for global layup data (default: ~/.layup)
	Root string

	// Objects is the local object store directory
	Objects string
}

// DefaultPaths returns the default global paths for layup.
// LAYUP_ROOT overrides the root directory.
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("LAYUP_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".layup")
	}

	return &Paths{
		Root:    root,
		Objects: filepath.Join(root, "objects"),
	}, nil
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.Root, p.Objects} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// WorkspaceDir returns the per-workspace layup directory under root.
func WorkspaceDir(workspaceRoot string) string {
	return filepath.Join(workspaceRoot, ".layup")
}

// TrackingPath returns the path to a workspace's tracking file.
func TrackingPath(workspaceRoot string) string {
	return filepath.Join(WorkspaceDir(workspaceRoot), "tracking.json")
}
