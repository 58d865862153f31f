package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/layup-dev/layup/internal/component"
	"github.com/layup-dev/layup/internal/dirs"
)

// Checkout rematerializes an already-tracked component. The component's own
// transform is computed fresh from its current origin; its dependencies'
// transforms are recalled verbatim from the tracking store, keeping their
// on-disk layouts stable across re-resolution.
func (e *Engine) Checkout(ctx context.Context, req *CheckoutRequest) (*CheckoutResult, error) {
	id := component.ID{Name: req.Name}
	items, err := e.resolver.ResolveTracked(ctx, id)
	if err != nil {
		if errors.Is(err, dirs.ErrNotTracked) {
			return nil, fmt.Errorf("%w: %s", ErrNotTracked, req.Name)
		}
		return nil, err
	}

	// The first item is the component itself; its tracked version carries
	// the snapshot to lay out.
	own := items[0]
	snapshot, err := e.objects.ResolveVersion(ctx, own.ID)
	if err != nil {
		return nil, err
	}
	written, err := e.materialize(req.WorkspaceRoot, snapshot, own)
	if err != nil {
		return nil, err
	}

	e.logger.Info("checked out component", "id", own.ID.String(), "files", len(written))
	return &CheckoutResult{ID: own.ID, Items: items, Written: written}, nil
}
