// Package storage keeps copies of uploaded documents while they are
// forwarded to the backend.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kanoonai/kanoon-web/internal/config"
	"github.com/spf13/afero"
)

// AferoStore implements Store on any afero filesystem.
type AferoStore struct {
	fs afero.Fs
}

func NewAferoStore(fs afero.Fs) *AferoStore {
	return &AferoStore{fs: fs}
}

// NewStore returns a disk-backed store rooted at dir, creating it if needed.
func NewStore(dir string) (*AferoStore, error) {
	osFs := afero.NewOsFs()
	if err := osFs.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create staging dir %s: %w", dir, err)
	}
	return NewAferoStore(afero.NewBasePathFs(osFs, dir)), nil
}

// NewUploadStager retains uploads under UPLOAD_STAGING_DIR when it is set
// and passes them straight through otherwise.
func NewUploadStager(cfg *config.Config) (*Stager, error) {
	if cfg.UploadStagingDir == "" {
		return NewStager(nil), nil
	}
	store, err := NewStore(cfg.UploadStagingDir)
	if err != nil {
		return nil, err
	}
	return NewStager(store), nil
}

// Save writes the content of the reader to path.
func (s *AferoStore) Save(ctx context.Context, path string, reader io.Reader) (int64, error) {
	if err := s.fs.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return 0, err
	}
	f, err := s.fs.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return io.Copy(f, reader)
}

// Open opens path for reading.
func (s *AferoStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	return s.fs.OpenFile(path, os.O_RDONLY, 0)
}

func (s *AferoStore) Delete(ctx context.Context, path string) error {
	return s.fs.Remove(path)
}
