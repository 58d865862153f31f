// Package hash provides content hashing for the object store.
//
// Layup addresses stored snapshots by the SHA-256 digest of their canonical
// encoding. The package provides a real implementation using crypto/sha256
// and a fake implementation for testing.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Hasher provides an abstraction for content hashing.
type Hasher interface {
	// HashBytes computes the hex-encoded digest of data.
	HashBytes(data []byte) string
}

// SHA256Hasher implements Hasher using SHA-256.
type SHA256Hasher struct{}

// NewSHA256Hasher creates a new SHA256Hasher.
func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

// HashBytes computes the hex-encoded SHA-256 digest of data.
func (h *SHA256Hasher) HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// FakeHasher implements Hasher with deterministic sequence-based digests for
// testing.
type FakeHasher struct {
	next int
}

// NewFakeHasher creates a new FakeHasher.
func NewFakeHasher() *FakeHasher {
	return &FakeHasher{}
}

// HashBytes returns a deterministic fake digest, a new one per call.
func (h *FakeHasher) HashBytes(data []byte) string {
	h.next++
	return fmt.Sprintf("fake%04d", h.next)
}
