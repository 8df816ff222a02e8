package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage is the contract with the external object-store collaborator. The
// lifecycle of blobs beyond Save (replacement, garbage collection) is the
// collaborator's concern, not this core's.
type Storage interface {
	// Save stores a blob at the given path.
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// GetURL returns the durable public URL for the blob.
	GetURL(ctx context.Context, path string) (string, error)
}

// Config holds storage configuration.
type Config struct {
	Type       string // local, cloudflare_r2
	BasePath   string // For local storage
	BaseURL    string // Public URL base
	Bucket     string // For R2
	AccessKey  string // For R2
	SecretKey  string // For R2
	Endpoint   string // For R2
	PublicRead bool   // Make files public by default
}

// NewStorage creates a storage instance based on configuration.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "cloudflare_r2":
		return NewCloudflareR2Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
