// Package blobstore stores detection images and hands back retrievable URLs.
package blobstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/leafcheck/internal/logging"
)

// Store uploads an image blob on behalf of an owner and returns a URL the
// record store can reference.
type Store interface {
	Put(ctx context.Context, ownerID string, data []byte) (string, error)
}

// DiskStore keeps blobs on the local filesystem under one directory per
// owner and serves them from a configured base URL.
type DiskStore struct {
	dir     string
	baseURL string
	logger  *zap.Logger
}

// NewDiskStore constructs a disk-backed store rooted at dir.
func NewDiskStore(dir, baseURL string, logger *zap.Logger) *DiskStore {
	return &DiskStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger.Named("blobstore"),
	}
}

// Put writes the blob under a fresh name and returns its URL.
func (s *DiskStore) Put(ctx context.Context, ownerID string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if ownerID == "" {
		return "", logging.NewOperationError("blobstore.put", "", fmt.Errorf("owner id is required"))
	}

	ownerDir := filepath.Join(s.dir, ownerID)
	if err := os.MkdirAll(ownerDir, 0o755); err != nil {
		return "", logging.NewOperationError("blobstore.mkdir", "", err)
	}

	name := uuid.NewString() + ".jpg"
	path := filepath.Join(ownerDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", logging.NewOperationError("blobstore.write", "", err)
	}

	url := fmt.Sprintf("%s/%s/%s", s.baseURL, ownerID, name)
	s.logger.Debug("stored detection image", zap.String("owner_id", ownerID), zap.String("url", url))
	return url, nil
}
