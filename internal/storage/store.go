package storage

import (
	"context"
	"io"
)

// Store keeps staged uploads between the multipart read and the backend
// call. Paths are slash separated and relative to the store root.
type Store interface {
	// Save writes reader to path, creating parent directories, and returns
	// the number of bytes written.
	Save(ctx context.Context, path string, reader io.Reader) (int64, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	// Delete removes path. Deleting a missing file is an error.
	Delete(ctx context.Context, path string) error
}
