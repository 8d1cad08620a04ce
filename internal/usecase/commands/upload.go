package commands

import (
	"context"
	"path"
	"strings"
	"time"

	"neighbiz/internal/domain/user"
	"neighbiz/internal/pkg/clock"
	"neighbiz/internal/pkg/errs"
	"neighbiz/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidImageType   = errs.Validation("INVALID_IMAGE_TYPE", "image_type must be store or license")
	ErrInvalidContentType = errs.Validation("INVALID_CONTENT_TYPE", "only images and pdf files can be uploaded")
	ErrInvalidFilename    = errs.Validation("INVALID_FILENAME", "filename is required")
)

const maxFilenameLength = 100

var imageTypes = map[string]struct{}{
	"store":   {},
	"license": {},
}

type PresignUploadRequest struct {
	ImageType   string
	Filename    string
	ContentType string
}

type PresignUploadResult struct {
	UploadURL string
	Key       string
	ExpiresAt time.Time
}

type UploadCommands interface {
	PresignUpload(ctx context.Context, principal user.Principal, req PresignUploadRequest) (*PresignUploadResult, error)
}

type uploadUseCaseImpl struct {
	storage shared.ObjectStorage
	clock   clock.Clock
	ttl     time.Duration
}

func NewUploadUseCase(storage shared.ObjectStorage, clk clock.Clock, ttl time.Duration) UploadCommands {
	return &uploadUseCaseImpl{
		storage: storage,
		clock:   clk,
		ttl:     ttl,
	}
}

func (uc *uploadUseCaseImpl) PresignUpload(ctx context.Context, principal user.Principal, req PresignUploadRequest) (*PresignUploadResult, error) {
	if _, err := principal.RequireOwner(); err != nil {
		return nil, err
	}
	if _, ok := imageTypes[req.ImageType]; !ok {
		return nil, ErrInvalidImageType
	}
	if !strings.HasPrefix(req.ContentType, "image/") && req.ContentType != "application/pdf" {
		return nil, ErrInvalidContentType
	}
	filename, err := sanitizeFilename(req.Filename)
	if err != nil {
		return nil, err
	}

	key := req.ImageType + "/" + uuid.NewString() + "_" + filename
	url, err := uc.storage.PresignPut(ctx, key, req.ContentType, uc.ttl)
	if err != nil {
		return nil, errs.WithCause(shared.ErrStorageUnavailable, err)
	}

	return &PresignUploadResult{
		UploadURL: url,
		Key:       key,
		ExpiresAt: uc.clock.Now().Add(uc.ttl),
	}, nil
}

// sanitizeFilename keeps the base name only and drops characters that break object keys.
func sanitizeFilename(name string) (string, error) {
	name = path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	name = strings.Map(func(r rune) rune {
		switch {
		case r == ' ':
			return '_'
		case r < 0x20, r == '?', r == '#', r == '%', r == '&':
			return -1
		default:
			return r
		}
	}, name)
	if name == "" || name == "." || name == "/" || name == ".." {
		return "", ErrInvalidFilename
	}
	if runes := []rune(name); len(runes) > maxFilenameLength {
		name = string(runes[len(runes)-maxFilenameLength:])
	}
	return name, nil
}
