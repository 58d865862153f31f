package dirs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/layup-dev/layup/internal/component"
)

func TestApplyShared(t *testing.T) {
	assert.Equal(t, "a/b/x.js", ApplyShared("x.js", component.SomeDir("a/b")))
	assert.Equal(t, "x.js", ApplyShared("x.js", component.NoDir()))
	assert.Equal(t, "a/b/c/x.js", ApplyShared("./c/x.js", component.SomeDir("a/b")))
}

func TestStripWrap(t *testing.T) {
	wrap := component.SomeDir(component.WrapperDir)

	assert.Equal(t, "x.js",
		StripWrap(component.WrapperDir+"/x.js", wrap))
	assert.Equal(t, "a/b/x.js",
		StripWrap("a/b/"+component.WrapperDir+"/x.js", wrap))
	assert.Equal(t, "x.js", StripWrap("x.js", wrap))
	assert.Equal(t, component.WrapperDir+"/x.js",
		StripWrap(component.WrapperDir+"/x.js", component.NoDir()))

	// First-occurrence removal, not anchored: a repeated wrapper name only
	// loses its first occurrence.
	assert.Equal(t, component.WrapperDir+"/x.js",
		StripWrap(component.WrapperDir+"/"+component.WrapperDir+"/x.js", wrap))
}

func TestStripShared(t *testing.T) {
	assert.Equal(t, "x.js", StripShared("a/b/x.js", component.SomeDir("a/b")))
	assert.Equal(t, "a/b/x.js", StripShared("a/b/x.js", component.NoDir()))
}

func TestInsertWrap(t *testing.T) {
	assert.Equal(t, component.WrapperDir+"/x.js",
		InsertWrap("x.js", component.SomeDir(component.WrapperDir)))
	assert.Equal(t, "x.js", InsertWrap("x.js", component.NoDir()))
}

func TestRevertOrdering(t *testing.T) {
	// Shared-dir restoration happens strictly before wrapper removal: the
	// wrapper wraps the restored tree as a whole.
	shared := component.SomeDir("a/b")
	wrap := component.SomeDir(component.WrapperDir)

	stored := component.WrapperDir + "/x.js"
	assert.Equal(t, "a/b/x.js", Revert(stored, shared, wrap))
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		shared component.OptionalDir
		wrap   component.OptionalDir
	}{
		{
			name:   "shared and wrap",
			path:   "a/b/src/index.js",
			shared: component.SomeDir("a/b"),
			wrap:   component.SomeDir(component.WrapperDir),
		},
		{
			name:   "shared only",
			path:   "a/b/src/index.js",
			shared: component.SomeDir("a/b"),
			wrap:   component.NoDir(),
		},
		{
			name:   "wrap only",
			path:   "src/index.js",
			shared: component.NoDir(),
			wrap:   component.SomeDir(component.WrapperDir),
		},
		{
			name:   "neither",
			path:   "src/index.js",
			shared: component.NoDir(),
			wrap:   component.NoDir(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stored := InsertWrap(StripShared(tt.path, tt.shared), tt.wrap)
			assert.Equal(t, tt.path, Revert(stored, tt.shared, tt.wrap))
		})
	}
}
