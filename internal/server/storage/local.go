package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore keeps binaries in a directory served by the HTTP layer under
// /uploads/.
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore creates the uploads directory if needed and returns a store
// over it. baseURL is the public prefix, e.g. "http://localhost:5000".
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Dir returns the directory the store writes into.
func (s *LocalStore) Dir() string { return s.dir }

// Save streams r into a file named key and fsyncs it before returning, so a
// nil error means the bytes reached the disk.
func (s *LocalStore) Save(ctx context.Context, key string, r io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := filepath.Join(s.dir, filepath.Base(key))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("sync %s: %w", path, err)
	}

	return f.Close()
}

// URL resolves a stored key to its public address under /uploads/.
func (s *LocalStore) URL(key string) string {
	return s.baseURL + "/uploads/" + key
}
