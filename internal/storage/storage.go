package storage

import (
	"fmt"
	"io"

	cfg "github.com/D1Massacre007/York-Realty/internal/config"
)

// Storage defines the interface for upload storage operations
type Storage interface {
	// Save stores a file at the given path
	Save(path string, file io.Reader) error

	// Delete removes a file at the given path. It is idempotent and
	// tolerates a missing file.
	Delete(path string) error

	// URL returns the public URL for accessing the file
	URL(path string) string
}

// New creates the storage backend selected by config. Local disk is the
// default; "s3" switches to any S3-compatible service.
func New(c *cfg.Config) (Storage, error) {
	switch c.StorageDriver {
	case "s3":
		return NewS3Storage(S3Config{
			Region:    c.S3Region,
			Bucket:    c.S3Bucket,
			AccessKey: c.S3AccessKey,
			SecretKey: c.S3SecretKey,
			Endpoint:  c.S3Endpoint,
		})
	case "local", "":
		return NewLocalStorage(c.UploadDir, c.PublicUploadPath)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}
}
