package engine

import (
	"encoding/json"
	"fmt"
	"path"
	"path/filepath"

	"github.com/layup-dev/layup/internal/component"
	"github.com/layup-dev/layup/internal/dirs"
)

// materialize lays a snapshot's files out under the component's workspace
// directory using the computed transform: the shared directory is stripped
// from each captured path and the wrapper directory inserted, then the
// generated descriptor is written at the component root. Returns the
// workspace-relative paths written, in file order.
func (e *Engine) materialize(workspaceRoot string, snapshot *component.Snapshot, item component.DirItem) ([]string, error) {
	root := componentRoot(workspaceRoot, snapshot.ID.Name)

	var written []string
	for _, file := range snapshot.Files {
		rel := dirs.InsertWrap(dirs.StripShared(file.RelativePath, item.SharedDir), item.WrapDir)
		if err := e.fs.ValidateRelPath(rel); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}

		target := filepath.Join(root, filepath.FromSlash(rel))
		if err := e.fs.WriteFile(target, file.Contents, 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", rel, err)
		}
		written = append(written, path.Join("components", snapshot.ID.Name, rel))
	}

	descriptor, err := e.writeDescriptor(root, snapshot.ID)
	if err != nil {
		return nil, err
	}
	written = append(written, path.Join("components", snapshot.ID.Name, descriptor))

	e.logger.Debug("materialized component",
		"id", snapshot.ID.String(),
		"sharedDir", item.SharedDir.String(),
		"wrapDir", item.WrapDir.String(),
		"files", len(written))
	return written, nil
}

// writeDescriptor writes the generated package descriptor at the component
// root. The wrapper directory exists exactly so a component's own descriptor
// cannot collide with this file.
func (e *Engine) writeDescriptor(root string, id component.ID) (string, error) {
	data, err := json.MarshalIndent(map[string]string{
		"name":    id.Name,
		"version": id.Version,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode descriptor: %w", err)
	}

	target := filepath.Join(root, component.DescriptorFile)
	if err := e.fs.WriteFile(target, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write descriptor: %w", err)
	}
	return component.DescriptorFile, nil
}
