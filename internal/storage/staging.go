package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"
)

// Staged is an upload on its way to the backend. When the Stager retains
// uploads it also has a copy in the store at Path.
type Staged struct {
	Filename string
	Size     int64
	Path     string

	header *multipart.FileHeader
	store  Store
}

// Stager prepares multipart uploads for forwarding. With a store it keeps a
// copy of every upload under uploads/<visitor>/ until the forward succeeds,
// so rejected documents can be inspected later. Without one it only
// sanitizes the filename.
type Stager struct {
	store Store
}

// NewStager returns a Stager. A nil store disables retention.
func NewStager(store Store) *Stager {
	return &Stager{store: store}
}

// Retains reports whether uploads are copied into a store.
func (s *Stager) Retains() bool {
	return s.store != nil
}

// Stage prepares fh for forwarding. The caller must call Finish.
func (s *Stager) Stage(ctx context.Context, visitorID string, fh *multipart.FileHeader) (*Staged, error) {
	// Sanitize the filename to prevent path traversal.
	filename := filepath.Base(fh.Filename)
	staged := &Staged{Filename: filename, Size: fh.Size, header: fh}
	if s.store == nil {
		return staged, nil
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	path := filepath.ToSlash(filepath.Join("uploads", visitorID, uuid.NewString()+filepath.Ext(filename)))
	written, err := s.store.Save(ctx, path, src)
	if err != nil {
		_ = s.store.Delete(ctx, path)
		return nil, fmt.Errorf("stage upload %s: %w", filename, err)
	}

	staged.Path = path
	staged.Size = written
	staged.store = s.store
	return staged, nil
}

// Open streams the upload as received.
func (f *Staged) Open() (io.ReadCloser, error) {
	src, err := f.header.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	return src, nil
}

// Finish records the outcome of the forward. A retained copy is removed
// after success and kept after failure.
func (f *Staged) Finish(ctx context.Context, forwardErr error) {
	if f.store == nil {
		return
	}
	if forwardErr != nil {
		slog.WarnContext(ctx, "Keeping upload after failed forward", "path", f.Path, "error", forwardErr)
		return
	}
	if err := f.store.Delete(ctx, f.Path); err != nil {
		slog.WarnContext(ctx, "Failed to remove retained upload", "path", f.Path, "error", err)
	}
}
