package dirs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/layup-dev/layup/internal/component"
)

func TestCalcSharedDir(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  component.OptionalDir
	}{
		{
			name:  "common directory across files",
			paths: []string{"a/b/x.js", "a/b/y.js"},
			want:  component.SomeDir("a/b"),
		},
		{
			name:  "no common directory",
			paths: []string{"a/x.js", "b/y.js"},
			want:  component.NoDir(),
		},
		{
			name:  "partial filename match is not a directory",
			paths: []string{"index.js", "index.spec.js"},
			want:  component.NoDir(),
		},
		{
			name:  "single file in nested directory",
			paths: []string{"src/lib/util.js"},
			want:  component.SomeDir("src/lib"),
		},
		{
			name:  "single file with no separator",
			paths: []string{"index.js"},
			want:  component.NoDir(),
		},
		{
			name:  "no paths",
			paths: nil,
			want:  component.NoDir(),
		},
		{
			name:  "common prefix ends inside a segment",
			paths: []string{"src/lib/a.js", "src/library/b.js"},
			want:  component.SomeDir("src"),
		},
		{
			name:  "descriptor at shared root pops one more level",
			paths: []string{"pkg/" + component.DescriptorFile, "pkg/index.js"},
			want:  component.NoDir(),
		},
		{
			name: "descriptor at deep shared root keeps parent",
			paths: []string{
				"a/pkg/" + component.DescriptorFile,
				"a/pkg/index.js",
			},
			want: component.SomeDir("a"),
		},
		{
			name: "descriptor below shared root is no collision",
			paths: []string{
				"a/b/nested/" + component.DescriptorFile,
				"a/b/index.js",
			},
			want: component.SomeDir("a/b"),
		},
		{
			name: "dependency paths narrow the prefix",
			paths: []string{
				"a/b/x.js",
				"a/b/y.js",
				"a/c/dep.js",
			},
			want: component.SomeDir("a"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcSharedDir(tt.paths)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommonPrefix(t *testing.T) {
	assert.Equal(t, "a/b/", commonPrefix([]string{"a/b/x.js", "a/b/y.js"}))
	assert.Equal(t, "", commonPrefix([]string{"a/x.js", "b/y.js"}))
	assert.Equal(t, "a/b/x.js", commonPrefix([]string{"a/b/x.js"}))
}
