package media

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/fiufit/trainings/internal/telemetry/tracing"
	"github.com/fiufit/trainings/pkg"
)

// DiskStore keeps every blob as a flat file under rootPath, named by its handle.
type DiskStore struct {
	rootPath string
}

func NewDiskStore(rootPath string) (*DiskStore, error) {
	if rootPath == "" {
		return nil, errors.New("root path cannot be empty")
	}
	if err := os.MkdirAll(rootPath, 0o750); err != nil {
		return nil, fmt.Errorf("create root dir: %w", err)
	}
	exists, err := pkg.PathExists(rootPath, true)
	if err != nil {
		return nil, fmt.Errorf("check root dir: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("root path is not a directory: %s", rootPath)
	}
	return &DiskStore{
		rootPath: rootPath,
	}, nil
}

func (ds *DiskStore) Save(ctx context.Context, content []byte, ownerID string) (_ string, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "diskStore.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	handle := NewObjectName(ownerID)
	path, err := ds.pathFor(handle)
	if err != nil {
		return "", err
	}
	span.SetAttributes(attribute.String("media.handle", handle))

	// write to a temp file first, a reader never sees a partial blob
	tmp, err := os.CreateTemp(ds.rootPath, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write media: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close media file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("move media file: %w", err)
	}

	log.Debugf("disk store: saved [%s], %d bytes", handle, len(content))
	return handle, nil
}

func (ds *DiskStore) Read(ctx context.Context, handle string) (_ []byte, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "diskStore.read")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("media.handle", handle))

	path, err := ds.pathFor(handle)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read media: %w", err)
	}
	return content, nil
}

func (ds *DiskStore) pathFor(handle string) (string, error) {
	if handle == "" || handle == "." || handle == ".." || filepath.Base(handle) != handle {
		return "", fmt.Errorf("%w: %q", ErrInvalidHandle, handle)
	}
	return filepath.Join(ds.rootPath, handle), nil
}
