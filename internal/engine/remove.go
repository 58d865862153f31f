package engine

import (
	"context"
	"fmt"

	"github.com/layup-dev/layup/internal/component"
	"github.com/layup-dev/layup/internal/tracking"
)

// Remove untracks a component and deletes its materialized files.
func (e *Engine) Remove(ctx context.Context, req *RemoveRequest) (*RemoveResult, error) {
	entry, err := e.tracking.GetEntry(component.ID{Name: req.Name}, tracking.GetOptions{IgnoreVersion: true})
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotTracked, req.Name)
	}

	if err := e.tracking.DeleteEntry(req.Name); err != nil {
		return nil, err
	}

	root := componentRoot(req.WorkspaceRoot, req.Name)
	exists, err := e.fs.Exists(root)
	if err != nil {
		return nil, err
	}

	result := &RemoveResult{}
	if exists {
		if err := e.fs.RemoveAll(root); err != nil {
			return nil, fmt.Errorf("failed to remove component directory: %w", err)
		}
		result.Removed = root
	}

	e.logger.Info("removed component", "name", req.Name)
	return result, nil
}
