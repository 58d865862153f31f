package dirs

import (
	"strings"

	"github.com/layup-dev/layup/internal/component"
)

// CalcSharedDir computes the originally shared directory across a set of
// paths: the component's own file paths together with every dependency's
// source paths. Paths must already be normalized to forward-slash relative
// form; mixed separators are not supported.
//
// The shared directory is derived from the longest common character-level
// prefix of the whole set. A prefix without a separator is a partial
// filename match, not a directory, and yields none. If, relative to the
// computed shared directory, any path is exactly the package descriptor
// filename, one more trailing segment is dropped so the level that keeps the
// descriptor from colliding with the generated one is preserved.
func CalcSharedDir(paths []string) component.OptionalDir {
	if len(paths) == 0 {
		return component.NoDir()
	}

	prefix := commonPrefix(paths)
	if !strings.Contains(prefix, "/") {
		return component.NoDir()
	}

	// Drop the partial segment after the last separator.
	segments := strings.Split(prefix, "/")
	segments = segments[:len(segments)-1]

	if descriptorAtRoot(paths, strings.Join(segments, "/")) {
		segments = segments[:len(segments)-1]
	}
	if len(segments) == 0 {
		return component.NoDir()
	}
	return component.SomeDir(strings.Join(segments, "/"))
}

// commonPrefix returns the longest common character-level prefix of paths.
func commonPrefix(paths []string) string {
	prefix := paths[0]
	for _, p := range paths[1:] {
		n := len(prefix)
		if len(p) < n {
			n = len(p)
		}
		i := 0
		for i < n && prefix[i] == p[i] {
			i++
		}
		prefix = prefix[:i]
		if prefix == "" {
			break
		}
	}
	return prefix
}

// descriptorAtRoot reports whether any path sits directly at the shared root
// as the package descriptor.
func descriptorAtRoot(paths []string, sharedDir string) bool {
	for _, p := range paths {
		if strings.TrimPrefix(p, sharedDir+"/") == component.DescriptorFile {
			return true
		}
	}
	return false
}
