package engine

import (
	"context"
)

// Status reports the workspace's tracked components.
func (e *Engine) Status(ctx context.Context, req *StatusRequest) (*StatusResult, error) {
	entries, err := e.tracking.List()
	if err != nil {
		return nil, err
	}

	result := &StatusResult{}
	for _, entry := range entries {
		result.Components = append(result.Components, ComponentInfo{
			ID:         entry.ID,
			Origin:     entry.Origin,
			SharedDir:  entry.SharedDir,
			WrapDir:    entry.WrapDir,
			ImportedAt: entry.ImportedAt,
		})
	}
	return result, nil
}
