package engine

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/layup-dev/layup/internal/component"
	"github.com/layup-dev/layup/internal/dirs"
	"github.com/layup-dev/layup/internal/tracking"
)

// Restore writes a tracked component's original file tree to a directory
// outside the workspace. Each stored workspace path is mapped back to its
// captured form with dirs.Revert, using the shared/wrap values recorded at
// install time, and the file contents are read from the workspace layout so
// local edits travel with the restore.
func (e *Engine) Restore(ctx context.Context, req *RestoreRequest) (*RestoreResult, error) {
	entry, err := e.tracking.GetEntry(component.ID{Name: req.Name}, tracking.GetOptions{IgnoreVersion: true})
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotTracked, req.Name)
	}

	snapshot, err := e.objects.ResolveVersion(ctx, entry.ID)
	if err != nil {
		return nil, err
	}

	root := componentRoot(req.WorkspaceRoot, req.Name)
	result := &RestoreResult{ID: entry.ID}
	for _, file := range snapshot.Files {
		storedRel := dirs.InsertWrap(dirs.StripShared(file.RelativePath, entry.SharedDir), entry.WrapDir)
		data, err := e.fs.ReadFile(filepath.Join(root, filepath.FromSlash(storedRel)))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", storedRel, err)
		}

		original := dirs.Revert(storedRel, entry.SharedDir, entry.WrapDir)
		target := filepath.Join(req.Dir, filepath.FromSlash(original))
		if err := e.fs.WriteFile(target, data, 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", original, err)
		}
		result.Restored = append(result.Restored, original)
	}

	e.logger.Info("restored component", "id", entry.ID.String(), "files", len(result.Restored))
	return result, nil
}
