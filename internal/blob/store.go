// Package blob is the photo store: path-addressed uploads plus public URL
// resolution. The disk implementation is served back over HTTP at /media/.
package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Store interface {
	// Put writes the object at path, creating parents as needed.
	Put(ctx context.Context, path string, data []byte, contentType string) error
	// URL resolves a publicly fetchable URL for a stored path.
	URL(path string) string
}

// DiskStore keeps objects under a media root directory.
type DiskStore struct {
	Root    string
	BaseURL string
}

func NewDiskStore(root, baseURL string) *DiskStore {
	return &DiskStore{Root: root, BaseURL: strings.TrimRight(baseURL, "/")}
}

func (s *DiskStore) Put(ctx context.Context, path string, data []byte, contentType string) error {
	clean := filepath.Clean("/" + path)
	full := filepath.Join(s.Root, clean)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("blob: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("blob: write %s: %w", path, err)
	}
	return nil
}

func (s *DiskStore) URL(path string) string {
	return s.BaseURL + "/media/" + strings.TrimLeft(path, "/")
}
