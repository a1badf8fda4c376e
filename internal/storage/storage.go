package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrNotFound - объекта с таким ключом нет
var ErrNotFound = errors.New("object not found")

// Storage - объектное хранилище. Ключи вида "<profile-id>/<angle>.<ext>",
// Save перезаписывает существующий объект.
type Storage interface {
	// Save stores an object under key, overwriting any previous one
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Get retrieves an object; returns ErrNotFound when missing
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes an object (missing objects are not an error)
	Delete(ctx context.Context, key string) error

	// Exists checks if an object exists
	Exists(ctx context.Context, key string) (bool, error)

	// GetURL returns a public URL for the object
	GetURL(ctx context.Context, key string) (string, error)
}

// Config holds storage configuration
type Config struct {
	Type       string // local, s3, cloudflare_r2
	BasePath   string // For local storage
	BaseURL    string // Public URL base
	Bucket     string // Namespace: каталог для local, бакет для S3/R2
	Region     string // For S3
	AccessKey  string // For S3/R2
	SecretKey  string // For S3/R2
	Endpoint   string // For R2 or custom S3
	UseSSL     bool   // For custom S3 endpoints without scheme
	PublicRead bool   // Make objects public-read on upload
}

// NewStorage creates a storage instance based on configuration
func NewStorage(ctx context.Context, cfg Config) (Storage, error) {
	if cfg.Bucket == "" {
		cfg.Bucket = "actor-images"
	}

	switch cfg.Type {
	case "local", "":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(ctx, cfg)
	case "cloudflare_r2":
		if cfg.Endpoint == "" {
			return nil, errors.New("cloudflare_r2 storage requires an endpoint")
		}
		if cfg.Region == "" {
			cfg.Region = "auto"
		}
		if cfg.BaseURL == "" {
			cfg.BaseURL = fmt.Sprintf("https://%s.r2.dev", cfg.Bucket)
		}
		return NewS3Storage(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
