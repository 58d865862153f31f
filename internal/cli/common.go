package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/layup-dev/layup/internal/clock"
	"github.com/layup-dev/layup/internal/config"
	"github.com/layup-dev/layup/internal/engine"
	"github.com/layup-dev/layup/internal/fsops"
	"github.com/layup-dev/layup/internal/hash"
	"github.com/layup-dev/layup/internal/objectstore"
	"github.com/layup-dev/layup/internal/tracking"
)

// snapshotCacheSize bounds the resolved-snapshot LRU shared by one command
// invocation.
const snapshotCacheSize = 128

// newEngine creates a new engine with real implementations of all
// dependencies, rooted at the current workspace.
func newEngine(workspaceRoot string) (*engine.Engine, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}
	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	fs := fsops.NewRealFS()
	hasher := hash.NewSHA256Hasher()

	objects, err := newObjectStore(fs, hasher, paths)
	if err != nil {
		return nil, err
	}
	cached, err := objectstore.NewCachedStore(objects, snapshotCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot cache: %w", err)
	}

	trackingStore := tracking.NewFileStore(fs, config.TrackingPath(workspaceRoot))

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "layup",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	return engine.New(trackingStore, cached, fs, &clock.RealClock{}, logger), nil
}

// newObjectStore selects the object store backend. When LAYUP_S3_ENDPOINT is
// set the S3/MinIO backend is used; otherwise snapshots live in the local
// layup root.
func newObjectStore(fs fsops.FS, hasher hash.Hasher, paths *config.Paths) (objectstore.Store, error) {
	endpoint := os.Getenv("LAYUP_S3_ENDPOINT")
	if endpoint == "" {
		return objectstore.NewFileStore(fs, hasher, paths.Objects), nil
	}

	store, err := objectstore.NewS3Store(objectstore.S3Config{
		Endpoint:  endpoint,
		Region:    os.Getenv("LAYUP_S3_REGION"),
		AccessKey: os.Getenv("LAYUP_S3_ACCESS_KEY"),
		SecretKey: os.Getenv("LAYUP_S3_SECRET_KEY"),
		Bucket:    os.Getenv("LAYUP_S3_BUCKET"),
		UseSSL:    os.Getenv("LAYUP_S3_USE_SSL") == "true",
	}, hasher)
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 object store: %w", err)
	}
	return store, nil
}

// formatJSON formats a value as JSON.
func formatJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
