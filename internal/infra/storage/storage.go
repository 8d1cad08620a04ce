package storage

import (
	"neighbiz/internal/pkg/config"
	"neighbiz/internal/pkg/errs"
	"neighbiz/internal/usecase/shared"
)

const (
	ProviderS3    = "s3"
	ProviderLocal = "local"
)

var (
	ErrUnknownProvider  = errs.New("unknown storage provider")
	ErrObjectNotFound   = errs.New("object not found")
	ErrInvalidSignature = errs.New("invalid or expired signature")
)

// Provider is an ObjectStorage that may hold resources to release on shutdown.
type Provider interface {
	shared.ObjectStorage
	Close() error
}

func NewProvider(cfg config.StorageConfig) (Provider, error) {
	switch cfg.Provider {
	case ProviderS3:
		return NewS3Storage(cfg)
	case ProviderLocal:
		return NewLocalStorage(cfg)
	default:
		return nil, errs.Wrapf(ErrUnknownProvider, "provider %q", cfg.Provider)
	}
}
