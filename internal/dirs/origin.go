package dirs

import (
	"github.com/layup-dev/layup/internal/component"
	"github.com/layup-dev/layup/internal/tracking"
)

// ClassifyOrigin determines a component's effective provenance from its
// prior tracking entry (nil when never tracked) and whether this occurrence
// is a dependency reference in the current operation:
//
//  1. No prior entry: nested for a dependency reference, imported otherwise.
//  2. Prior nested entry hit by a direct (non-dependency) occurrence: the
//     component is now being imported directly, so it is promoted.
//  3. Otherwise the prior origin is kept. In particular an imported
//     component is never demoted back to nested by appearing as someone's
//     dependency.
func ClassifyOrigin(prior *tracking.Entry, isDependency bool) component.Origin {
	if prior == nil {
		if isDependency {
			return component.OriginNested
		}
		return component.OriginImported
	}
	if prior.Origin == component.OriginNested && !isDependency {
		return component.OriginImported
	}
	return prior.Origin
}

// LookupOrigin reads the prior tracking entry for id and classifies the
// effective origin of this occurrence. Top-level occurrences ignore the
// version so any previously tracked version reconciles to the same slot;
// dependency occurrences match the version exactly so distinct versions stay
// distinct entries.
func LookupOrigin(store tracking.Store, id component.ID, isDependency bool) (component.Origin, error) {
	prior, err := store.GetEntry(id, tracking.GetOptions{IgnoreVersion: !isDependency})
	if err != nil {
		return "", err
	}
	return ClassifyOrigin(prior, isDependency), nil
}
