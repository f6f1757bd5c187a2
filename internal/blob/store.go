// Package blob stores uploaded poster images on local disk and hands
// back durable retrieval references.  Keys are generated uuids with the
// original file extension preserved; the HTTP layer serves the
// directory statically under /uploads, so a reference stays valid for
// the life of the file.
package blob

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DiskStore writes blobs under a single root directory.
type DiskStore struct {
	root string
}

// NewDiskStore creates the root directory if needed and returns a store
// over it.
func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("blob: create root: %w", err)
	}
	return &DiskStore{root: root}, nil
}

// Save streams r into a new blob and returns its key.  The key embeds a
// uuid, so concurrent saves of identically named files never collide.
// Only the extension of filename is kept, lower-cased and restricted to
// a short alphanumeric suffix.
func (s *DiskStore) Save(filename string, r io.Reader) (string, error) {
	key := uuid.NewString() + safeExt(filename)
	f, err := os.OpenFile(filepath.Join(s.root, key), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("blob: create: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("blob: write: %w", err)
	}
	return key, nil
}

// URL returns the public retrieval reference for a stored key.
func (s *DiskStore) URL(key string) string { return "/uploads/" + key }

// Root returns the directory served statically by the HTTP layer.
func (s *DiskStore) Root() string { return s.root }

// safeExt extracts a usable extension from an uploaded filename.
// Anything longer than 10 characters or containing non-alphanumerics is
// dropped rather than sanitized.
func safeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" || len(ext) > 10 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
