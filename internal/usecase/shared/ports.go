package shared

import (
	"context"
	"time"

	"neighbiz/internal/pkg/errs"
)

var ErrStorageUnavailable = errs.Dependency("STORAGE_UNAVAILABLE", "file storage is unavailable")

// ObjectStorage holds uploaded images and rendered QR codes.
type ObjectStorage interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
	Exists(ctx context.Context, key string) (bool, error)
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
	PresignPut(ctx context.Context, key, contentType string, ttl time.Duration) (string, error)
}

type QRRenderer interface {
	PNG(content string) ([]byte, error)
}
