package dirs

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/layup-dev/layup/internal/component"
	"github.com/layup-dev/layup/internal/objectstore"
	"github.com/layup-dev/layup/internal/tracking"
)

// ErrNotTracked indicates a recall was requested for a component the
// tracking store has no entry for.
var ErrNotTracked = errors.New("component not tracked")

// Resolver computes directory transforms for a component and its full
// dependency set. It only reads its collaborators; persisting the results is
// the caller's concern.
type Resolver struct {
	tracking tracking.Store
	objects  objectstore.Store
}

// NewResolver creates a new Resolver.
func NewResolver(trackingStore tracking.Store, objects objectstore.Store) *Resolver {
	return &Resolver{tracking: trackingStore, objects: objects}
}

// computeItem computes the transform for one snapshot under an effective
// origin. The shared directory is only calculated for imported components;
// the wrap decision applies to anything not authored.
func computeItem(origin component.Origin, snapshot *component.Snapshot) component.DirItem {
	item := component.DirItem{ID: snapshot.ID}
	paths := snapshot.AllPaths()
	if origin == component.OriginImported {
		item.SharedDir = CalcSharedDir(paths)
	}
	item.WrapDir = CalcWrapDir(origin, paths)
	return item
}

// ResolveTracked handles an already-tracked component: its own transform is
// computed fresh from its current origin and version, while its
// dependencies' transforms are recalled verbatim from the tracking store.
// Dependency layouts were fixed when each dependency was first installed and
// are never recomputed opportunistically here; a dependency without a record
// yields absent values.
func (r *Resolver) ResolveTracked(ctx context.Context, id component.ID) ([]component.DirItem, error) {
	entry, err := r.tracking.GetEntry(id, tracking.GetOptions{IgnoreVersion: true})
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotTracked, id.Name)
	}

	snapshot, err := r.objects.ResolveVersion(ctx, entry.ID)
	if err != nil {
		return nil, err
	}

	items := []component.DirItem{computeItem(entry.Origin, snapshot)}
	for _, dep := range snapshot.Dependencies {
		depEntry, err := r.tracking.GetEntry(dep.ID, tracking.GetOptions{})
		if err != nil {
			return nil, err
		}
		item := component.DirItem{ID: dep.ID}
		if depEntry != nil {
			item.SharedDir = depEntry.SharedDir
			item.WrapDir = depEntry.WrapDir
		}
		items = append(items, item)
	}
	return items, nil
}

// ResolveImports handles a batch of components currently being imported.
// Each top-level component is classified as a direct occurrence and every
// transitive dependency as a dependency occurrence, each with its own
// tracking lookup and snapshot resolution. Per-component work runs
// concurrently; results land in index-addressed slots so the merge preserves
// input order regardless of completion order. If any snapshot fails to
// resolve, the whole batch fails.
//
// The flattened result carries one item per distinct component identifier:
// an identifier that is both a top-level import target and somebody's
// dependency surfaces exactly once, with the top-level result taking
// precedence.
func (r *Resolver) ResolveImports(ctx context.Context, ids []component.ID) ([]component.DirItem, error) {
	topItems := make([]component.DirItem, len(ids))
	depItems := make([][]component.DirItem, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			origin, err := LookupOrigin(r.tracking, id, false)
			if err != nil {
				return err
			}
			snapshot, err := r.objects.ResolveVersion(gctx, id)
			if err != nil {
				return err
			}
			topItems[i] = computeItem(origin, snapshot)

			items := make([]component.DirItem, len(snapshot.Dependencies))
			dg, dctx := errgroup.WithContext(gctx)
			for j, dep := range snapshot.Dependencies {
				dg.Go(func() error {
					depOrigin, err := LookupOrigin(r.tracking, dep.ID, true)
					if err != nil {
						return err
					}
					depSnapshot, err := r.objects.ResolveVersion(dctx, dep.ID)
					if err != nil {
						return err
					}
					items[j] = computeItem(depOrigin, depSnapshot)
					return nil
				})
			}
			if err := dg.Wait(); err != nil {
				return err
			}
			depItems[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return flatten(ids, topItems, depItems), nil
}

// flatten merges per-component results into a flat list in input order,
// dropping dependency items whose identifier is a top-level target in the
// same batch and deduplicating repeated dependency identifiers, first
// occurrence winning.
func flatten(ids []component.ID, topItems []component.DirItem, depItems [][]component.DirItem) []component.DirItem {
	topLevel := make(map[string]bool, len(ids))
	for _, id := range ids {
		topLevel[id.String()] = true
	}

	seen := make(map[string]bool)
	var result []component.DirItem
	for i := range topItems {
		if !seen[topItems[i].ID.String()] {
			seen[topItems[i].ID.String()] = true
			result = append(result, topItems[i])
		}
		for _, item := range depItems[i] {
			key := item.ID.String()
			if topLevel[key] || seen[key] {
				continue
			}
			seen[key] = true
			result = append(result, item)
		}
	}
	return result
}
