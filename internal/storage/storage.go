package storage

import (
	"context"
	"io"
)

// Storage abstracts where attachment bytes live so the complaint
// service does not care about the filesystem.
type Storage interface {
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
	GetURL(ctx context.Context, path string) (string, error)
}

// Config selects and configures a storage backend.
type Config struct {
	BasePath string // filesystem root for local storage
	BaseURL  string // public URL prefix, e.g. /uploads
}

// NewStorage builds the configured backend. Only local storage is
// supported today; the interface keeps the door open for object
// stores.
func NewStorage(cfg Config) (Storage, error) {
	return NewLocalStorage(cfg)
}
