package engine

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/layup-dev/layup/internal/component"
)

// Publish captures a directory's files into the object store as a component
// snapshot. Paths are captured relative to the directory in forward-slash
// form, sorted for a stable encoding. Dependency refs must already be
// published; their snapshots contribute the source paths recorded on the new
// snapshot's resolved dependency set.
func (e *Engine) Publish(ctx context.Context, req *PublishRequest) (*PublishResult, error) {
	id, err := component.ParseID(req.Ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	files, err := e.captureFiles(req.Dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyComponent, req.Dir)
	}

	var deps []component.Dependency
	for _, ref := range req.DependencyRefs {
		depID, err := component.ParseID(ref)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		depSnapshot, err := e.objects.ResolveVersion(ctx, depID)
		if err != nil {
			return nil, err
		}
		deps = append(deps, component.Dependency{
			ID:          depID,
			SourcePaths: depSnapshot.FilePaths(),
		})
	}

	snapshot := &component.Snapshot{ID: id, Files: files, Dependencies: deps}
	if err := e.objects.PutVersion(ctx, snapshot); err != nil {
		return nil, err
	}

	e.logger.Info("published component", "id", id.String(), "files", len(files))
	return &PublishResult{ID: id, FileCount: len(files)}, nil
}

// captureFiles walks dir and reads every regular file into a FileRecord.
func (e *Engine) captureFiles(dir string) ([]component.FileRecord, error) {
	var files []component.FileRecord
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return fmt.Errorf("failed to compute relative path for %q: %w", p, err)
		}
		contents, err := e.fs.ReadFile(p)
		if err != nil {
			return fmt.Errorf("failed to read %q: %w", p, err)
		}
		files = append(files, component.FileRecord{
			RelativePath: filepath.ToSlash(rel),
			Contents:     contents,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to capture %q: %w", dir, err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].RelativePath < files[j].RelativePath
	})
	return files, nil
}
