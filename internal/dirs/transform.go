package dirs

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/layup-dev/layup/internal/component"
)

// ApplyShared prepends the shared directory to a stored path, restoring the
// prefix that was stripped at publish time. The result is normalized to
// forward-slash form. An absent shared dir returns the path unchanged.
func ApplyShared(p string, sharedDir component.OptionalDir) string {
	if !sharedDir.IsSet() {
		return p
	}
	return path.Join(sharedDir.Value(), filepath.ToSlash(p))
}

// StripWrap removes the wrapper directory from a path. This removes the
// first textual occurrence of "<wrapDir>/" anywhere in the path, not an
// anchored prefix strip; the wrapper name is synthetic, so a recurrence
// elsewhere in a path is unlikely. Anchoring it would change layouts already
// on disk.
func StripWrap(p string, wrapDir component.OptionalDir) string {
	if !wrapDir.IsSet() {
		return p
	}
	return strings.Replace(p, wrapDir.Value()+"/", "", 1)
}

// Revert restores a stored path to its workspace form. The shared directory
// is restored strictly before the wrapper is removed: the wrapper wraps the
// already-restored tree as a whole, so unwrapping first would operate on a
// tree that has not yet regained its prefix.
func Revert(p string, sharedDir, wrapDir component.OptionalDir) string {
	return StripWrap(ApplyShared(p, sharedDir), wrapDir)
}

// StripShared removes the shared directory prefix from a workspace path at
// publish time. The inverse of ApplyShared.
func StripShared(p string, sharedDir component.OptionalDir) string {
	if !sharedDir.IsSet() {
		return p
	}
	return strings.TrimPrefix(p, sharedDir.Value()+"/")
}

// InsertWrap prepends the wrapper directory to a path at publish time. The
// inverse of StripWrap.
func InsertWrap(p string, wrapDir component.OptionalDir) string {
	if !wrapDir.IsSet() {
		return p
	}
	return path.Join(wrapDir.Value(), p)
}
