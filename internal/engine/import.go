package engine

import (
	"context"
	"fmt"

	"github.com/layup-dev/layup/internal/component"
	"github.com/layup-dev/layup/internal/dirs"
	"github.com/layup-dev/layup/internal/tracking"
)

// Import imports a batch of components into the workspace: transforms are
// computed across each component and its full dependency set, the resulting
// origins and directory values are persisted (becoming immutable facts for
// later recalls), and every touched component's files are laid out on disk.
func (e *Engine) Import(ctx context.Context, req *ImportRequest) (*ImportResult, error) {
	ids := make([]component.ID, len(req.Refs))
	for i, ref := range req.Refs {
		id, err := component.ParseID(ref)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		ids[i] = id
	}

	items, err := e.resolver.ResolveImports(ctx, ids)
	if err != nil {
		return nil, err
	}

	// Classify every item's origin against the pre-import tracking state,
	// before any entry is written, so later saves cannot influence earlier
	// classifications.
	topLevel := make(map[string]bool, len(ids))
	for _, id := range ids {
		topLevel[id.String()] = true
	}
	origins := make([]component.Origin, len(items))
	for i, item := range items {
		origin, err := dirs.LookupOrigin(e.tracking, item.ID, !topLevel[item.ID.String()])
		if err != nil {
			return nil, err
		}
		origins[i] = origin
	}

	result := &ImportResult{Items: items}
	if req.DryRun {
		return result, nil
	}

	for i, item := range items {
		entry := &tracking.Entry{
			ID:         item.ID,
			Origin:     origins[i],
			SharedDir:  item.SharedDir,
			WrapDir:    item.WrapDir,
			ImportedAt: e.clock.Now(),
		}
		if err := e.tracking.SaveEntry(entry); err != nil {
			return nil, err
		}

		snapshot, err := e.objects.ResolveVersion(ctx, item.ID)
		if err != nil {
			return nil, err
		}
		written, err := e.materialize(req.WorkspaceRoot, snapshot, item)
		if err != nil {
			return nil, err
		}
		result.Written = append(result.Written, written...)
	}

	e.logger.Info("imported components", "count", len(items), "files", len(result.Written))
	return result, nil
}
