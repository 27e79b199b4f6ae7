package artifacts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileStore implements an artifact store backed by the local filesystem.
// Refs handed out by Put are absolute file paths; callers treat them as
// opaque handles.
type FileStore struct {
	basePath string
}

// NewFileStore creates a file-based artifact store rooted at basePath.
func NewFileStore(basePath string) (*FileStore, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create base path: %w", err)
	}
	return &FileStore{basePath: basePath}, nil
}

// Put writes data under a collision-free name derived from name and returns
// the ref. name keeps its extension so probes can sniff the format.
func (s *FileStore) Put(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name = filepath.Base(strings.TrimSpace(name))
	if name == "" || name == "." {
		return "", fmt.Errorf("artifact name is empty")
	}

	path := filepath.Join(s.basePath, uuid.NewString()+"-"+name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write artifact: %w", err)
	}
	return path, nil
}

// BasePath returns the store's root directory.
func (s *FileStore) BasePath() string { return s.basePath }
