package objectstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/layup-dev/layup/internal/component"
	"github.com/layup-dev/layup/internal/hash"
)

// S3Config holds connection settings for an S3-compatible object store.
type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// S3Store implements Store against an S3/MinIO bucket. Objects live under
// objects/<digest>.json and refs under refs/<name>@<version>, whose body is
// the digest.
type S3Store struct {
	client   *minio.Client
	bucket   string
	hasher   hash.Hasher
	initOnce sync.Once
	initErr  error
}

// NewS3Store creates a new S3Store from cfg.
func NewS3Store(cfg S3Config, hasher hash.Hasher) (*S3Store, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("s3 endpoint is required")
	}
	access := strings.TrimSpace(cfg.AccessKey)
	secret := strings.TrimSpace(cfg.SecretKey)
	if access == "" || secret == "" {
		return nil, fmt.Errorf("s3 access key and secret key are required")
	}
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "us-east-1"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(access, secret, ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init s3 client: %w", err)
	}

	return &S3Store{client: client, bucket: bucket, hasher: hasher}, nil
}

// ensureBucket verifies the bucket exists, once per store.
func (s *S3Store) ensureBucket(ctx context.Context) error {
	s.initOnce.Do(func() {
		exists, err := s.client.BucketExists(ctx, s.bucket)
		if err != nil {
			s.initErr = fmt.Errorf("failed to check bucket: %w", err)
			return
		}
		if !exists {
			s.initErr = fmt.Errorf("bucket %q does not exist", s.bucket)
		}
	})
	return s.initErr
}

func refKey(id component.ID) string {
	return "refs/" + id.String()
}

func objectKey(digest string) string {
	return "objects/" + digest + ".json"
}

// getBytes fetches a whole object body.
func (s *S3Store) getBytes(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	defer func() {
		_ = obj.Close()
	}()

	data, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

// ResolveVersion resolves id to its stored snapshot.
func (s *S3Store) ResolveVersion(ctx context.Context, id component.ID) (*component.Snapshot, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return nil, err
	}

	digestData, err := s.getBytes(ctx, refKey(id))
	if err != nil {
		return nil, err
	}
	digest := strings.TrimSpace(string(digestData))

	data, err := s.getBytes(ctx, objectKey(digest))
	if err != nil {
		return nil, err
	}
	if got := s.hasher.HashBytes(data); got != digest {
		return nil, fmt.Errorf("%w: %s: digest mismatch, want %s got %s", ErrCorrupt, id, digest, got)
	}

	var snapshot component.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, id, err)
	}
	return &snapshot, nil
}

// PutVersion stores a snapshot and indexes it under its id.
func (s *S3Store) PutVersion(ctx context.Context, snapshot *component.Snapshot) error {
	if err := s.ensureBucket(ctx); err != nil {
		return err
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	digest := s.hasher.HashBytes(data)

	_, err = s.client.PutObject(ctx, s.bucket, objectKey(digest),
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("failed to put object %s: %w", digest, err)
	}

	ref := []byte(digest)
	_, err = s.client.PutObject(ctx, s.bucket, refKey(snapshot.ID),
		bytes.NewReader(ref), int64(len(ref)),
		minio.PutObjectOptions{ContentType: "text/plain"})
	if err != nil {
		return fmt.Errorf("failed to put ref for %s: %w", snapshot.ID, err)
	}
	return nil
}
