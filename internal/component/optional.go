package component

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// OptionalDir is an explicit present/absent directory value. The zero value
// is absent. It exists so that "no shared dir" and "no wrap dir" are distinct
// states callers must handle, rather than an empty string with implied
// meaning.
type OptionalDir struct {
	path string
	set  bool
}

// SomeDir returns a present OptionalDir holding path.
func SomeDir(path string) OptionalDir {
	return OptionalDir{path: path, set: true}
}

// NoDir returns an absent OptionalDir.
func NoDir() OptionalDir {
	return OptionalDir{}
}

// IsSet reports whether a directory value is present.
func (d OptionalDir) IsSet() bool {
	return d.set
}

// Value returns the directory path. It is only meaningful when IsSet is true.
func (d OptionalDir) Value() string {
	return d.path
}

// String returns the path, or "<none>" when absent.
func (d OptionalDir) String() string {
	if !d.set {
		return "<none>"
	}
	return d.path
}

// MarshalJSON encodes a present value as a JSON string and an absent one as
// null, matching how tracking entries are persisted.
func (d OptionalDir) MarshalJSON() ([]byte, error) {
	if !d.set {
		return []byte("null"), nil
	}
	return json.Marshal(d.path)
}

// UnmarshalJSON decodes null as absent and a string as present.
func (d *OptionalDir) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*d = OptionalDir{}
		return nil
	}
	var path string
	if err := json.Unmarshal(data, &path); err != nil {
		return fmt.Errorf("failed to decode directory value: %w", err)
	}
	*d = OptionalDir{path: path, set: true}
	return nil
}
