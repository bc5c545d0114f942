// Package storage abstracts where uploaded profile picture binaries live:
// a local uploads directory or an S3-compatible bucket.
package storage

import (
	"context"
	"io"
)

// FileStore writes binaries under opaque keys and resolves their public URLs.
type FileStore interface {
	// Save durably writes the contents of r under key. A nil error means
	// the binary is on stable storage and URL(key) may be handed out.
	Save(ctx context.Context, key string, r io.Reader) error

	// URL returns the public URL for a stored key.
	URL(key string) string
}
