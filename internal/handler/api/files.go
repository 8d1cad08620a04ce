package api

import (
	"context"
	"io"
	"net/http"
	"strings"

	"neighbiz/internal/handler/httperr"
	"neighbiz/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 10 << 20

var (
	errInvalidSignature = errs.Forbidden("INVALID_SIGNATURE", "signed URL is invalid or expired")
	errFileNotFound     = errs.NotFound("FILE_NOT_FOUND", "file not found")
	errFileTooLarge     = errs.Validation("FILE_TOO_LARGE", "file exceeds the upload limit")
)

// FileStore is the local blob store behind signed URLs.
type FileStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
	Get(key string) ([]byte, string, error)
	Verify(method, key, contentType, exp, sig string) error
}

type FilesHandler struct {
	store FileStore
}

func NewFilesHandler(store FileStore) *FilesHandler {
	return &FilesHandler{store: store}
}

// @Summary Download a stored file
// @Description Local storage only. Requires the exp and sig parameters of a presigned URL.
// @Tags files
// @Produce octet-stream
// @Param key path string true "Object key"
// @Param exp query string true "Expiry (unix seconds)"
// @Param sig query string true "Signature"
// @Success 200 {file} binary
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/files/{key} [get]
func (h *FilesHandler) Download(c *gin.Context) {
	key := objectKey(c)
	if err := h.store.Verify(http.MethodGet, key, "", c.Query("exp"), c.Query("sig")); err != nil {
		httperr.Respond(c, errs.WithCause(errInvalidSignature, err))
		return
	}

	data, contentType, err := h.store.Get(key)
	if err != nil {
		httperr.Respond(c, errs.WithCause(errFileNotFound, err))
		return
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(http.StatusOK, contentType, data)
}

// @Summary Upload a file to a presigned URL
// @Description Local storage only. Content-Type must match the one the URL was signed for.
// @Tags files
// @Accept octet-stream
// @Param key path string true "Object key"
// @Param exp query string true "Expiry (unix seconds)"
// @Param sig query string true "Signature"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/files/{key} [put]
func (h *FilesHandler) Upload(c *gin.Context) {
	key := objectKey(c)
	contentType := c.ContentType()
	if err := h.store.Verify(http.MethodPut, key, contentType, c.Query("exp"), c.Query("sig")); err != nil {
		httperr.Respond(c, errs.WithCause(errInvalidSignature, err))
		return
	}

	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxUploadBytes+1))
	if err != nil {
		httperr.BadRequest(c, err, nil)
		return
	}
	if len(data) > maxUploadBytes {
		httperr.Respond(c, errFileTooLarge)
		return
	}

	if err := h.store.Put(c.Request.Context(), key, contentType, data); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func objectKey(c *gin.Context) string {
	return strings.TrimPrefix(c.Param("key"), "/")
}
