package media

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/fiufit/trainings/internal/config"
)

var (
	// ErrNotFound means the handle does not point to a stored blob (anymore).
	ErrNotFound = errors.New("media not found")
	// ErrUnavailable marks transient storage failures, worth retrying.
	ErrUnavailable = errors.New("media storage unavailable")
	// ErrInvalidHandle rejects handles that could escape the storage namespace.
	ErrInvalidHandle = errors.New("invalid media handle")
)

// Store persists media blobs outside the relational store.
type Store interface {
	// Save stores content under a fresh name derived from ownerID and returns its handle.
	Save(ctx context.Context, content []byte, ownerID string) (string, error)
	// Read returns the blob for handle, or ErrNotFound.
	Read(ctx context.Context, handle string) ([]byte, error)
}

// NewObjectName returns "<ownerID>-<32 hex chars>", unique per call. The owner part is
// path escaped, so the name is always a single path segment.
func NewObjectName(ownerID string) string {
	return url.PathEscape(ownerID) + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// NewStore builds the configured backend wrapped with retries and timeouts.
func NewStore(ctx context.Context, cfg config.MediaConfig) (Store, error) {
	var backend Store
	switch cfg.Backend {
	case config.MediaBackendDisk:
		diskStore, err := NewDiskStore(cfg.DiskRootPath)
		if err != nil {
			return nil, fmt.Errorf("new disk store: %w", err)
		}
		backend = diskStore
	case config.MediaBackendS3:
		s3Store, err := NewS3Store(ctx, S3Params{
			Endpoint:        cfg.S3Endpoint,
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
		})
		if err != nil {
			return nil, fmt.Errorf("new s3 store: %w", err)
		}
		backend = s3Store
	default:
		return nil, fmt.Errorf("unknown media backend: %s", cfg.Backend)
	}

	return NewRetryingStore(backend, RetryParams{
		Attempts:       cfg.RetryAttempts,
		AttemptTimeout: cfg.Timeout,
	}), nil
}
