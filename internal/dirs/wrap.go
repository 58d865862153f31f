package dirs

import (
	"github.com/layup-dev/layup/internal/component"
)

// CalcWrapDir decides whether a synthetic wrapper directory is required for
// a component. An authored component is never wrapped: its descriptor is the
// real project one. Otherwise the fixed wrapper name is returned when the
// descriptor filename sits at path root in the component's own files or in
// any dependency's source paths.
func CalcWrapDir(origin component.Origin, paths []string) component.OptionalDir {
	if origin == component.OriginAuthored {
		return component.NoDir()
	}
	for _, p := range paths {
		if p == component.DescriptorFile {
			return component.SomeDir(component.WrapperDir)
		}
	}
	return component.NoDir()
}
