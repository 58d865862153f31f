// Package component defines the shared data model for layup components.
//
// A component is a named, versioned unit of code. Its files are captured into
// an immutable Snapshot together with the resolved set of dependencies. All
// paths in this package are workspace-relative and POSIX-style (forward
// slashes), independent of the host OS; conversion happens at the filesystem
// boundary.
package component

import (
	"fmt"
	"strings"
)

const (
	// DescriptorFile is the package descriptor layup generates next to a
	// component's files at import time.
	DescriptorFile = "component.json"

	// WrapperDir is the synthetic directory inserted around a component's
	// files when its own descriptor would collide with the generated one.
	WrapperDir = "layup_wrapper_dir"
)

// ID uniquely identifies a component version.
type ID struct {
	// Name is the component name
	Name string `json:"name"`

	// Version is the component version
	Version string `json:"version"`
}

// String returns the canonical "name@version" form of the ID.
func (id ID) String() string {
	return id.Name + "@" + id.Version
}

// ParseID parses a "name@version" reference into an ID.
func ParseID(ref string) (ID, error) {
	at := strings.LastIndex(ref, "@")
	if at <= 0 || at == len(ref)-1 {
		return ID{}, fmt.Errorf("invalid component reference %q: want name@version", ref)
	}
	return ID{Name: ref[:at], Version: ref[at+1:]}, nil
}

// FileRecord is a single file belonging to a component snapshot.
type FileRecord struct {
	// RelativePath is the file's path relative to the component root
	RelativePath string `json:"relativePath"`

	// Contents holds the file contents as captured at publish time
	Contents []byte `json:"contents"`
}

// Dependency is a resolved dependency of a snapshot. The dependency's own
// source paths are carried so that directory arithmetic can consider the
// component and its full dependency set together.
type Dependency struct {
	// ID identifies the dependency version
	ID ID `json:"id"`

	// SourcePaths are the dependency's own file paths, relative to its root
	SourcePaths []string `json:"sourcePaths"`
}

// Snapshot is an immutable capture of one component version: its ordered
// files plus its resolved, flattened dependency set. Snapshots are never
// mutated after retrieval from the object store.
type Snapshot struct {
	// ID identifies the snapshot's component version
	ID ID `json:"id"`

	// Files are the component's own files, in publish order
	Files []FileRecord `json:"files"`

	// Dependencies is the resolved transitive dependency set
	Dependencies []Dependency `json:"dependencies"`
}

// FilePaths returns the relative paths of the snapshot's own files.
func (s *Snapshot) FilePaths() []string {
	paths := make([]string, len(s.Files))
	for i, f := range s.Files {
		paths[i] = f.RelativePath
	}
	return paths
}

// AllPaths returns the union of the snapshot's own file paths and every
// dependency's source paths, in input order.
func (s *Snapshot) AllPaths() []string {
	paths := s.FilePaths()
	for _, dep := range s.Dependencies {
		paths = append(paths, dep.SourcePaths...)
	}
	return paths
}

// Origin classifies a tracked component's provenance.
type Origin string

const (
	// OriginAuthored marks the user's own in-workspace code.
	OriginAuthored Origin = "authored"

	// OriginImported marks a component pulled in directly by the user.
	OriginImported Origin = "imported"

	// OriginNested marks a component present only as someone else's
	// dependency.
	OriginNested Origin = "nested"
)

// DirItem is the computed (or recalled) directory transform for one
// component: the originally shared directory stripped at export time and the
// synthetic wrapper directory, either of which may be absent.
type DirItem struct {
	// ID identifies the component the transform belongs to
	ID ID `json:"id"`

	// SharedDir is the originally shared directory, if any
	SharedDir OptionalDir `json:"originallySharedDir"`

	// WrapDir is the wrapper directory, if any
	WrapDir OptionalDir `json:"wrapDir"`
}
