package httperr

import (
	"log/slog"
	"net/http"

	"neighbiz/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeUnauthorized   = "UNAUTHORIZED"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

var categoryStatus = map[errs.Category]int{
	errs.CategoryValidation:   http.StatusBadRequest,
	errs.CategoryConflict:     http.StatusConflict,
	errs.CategoryNotFound:     http.StatusNotFound,
	errs.CategoryForbidden:    http.StatusForbidden,
	errs.CategoryUnauthorized: http.StatusUnauthorized,
	errs.CategoryExpired:      http.StatusGone,
	errs.CategoryDependency:   http.StatusBadGateway,
	errs.CategoryInternal:     http.StatusInternalServerError,
}

// Respond maps a use case error to its HTTP status and aborts.
// Unclassified errors are reported as INTERNAL_ERROR without leaking their text.
func Respond(c *gin.Context, err error) {
	if err == nil {
		panic("Respond: err cannot be nil")
	}

	coded, ok := errs.Classify(err)
	if !ok {
		slog.Error("unhandled error",
			"path", c.Request.URL.Path,
			"error", err,
			"stack", errs.ExtractStackLines(err, 12))
		AbortWithError(c, http.StatusInternalServerError, err, errs.CodeInternal, "Internal server error", nil)
		return
	}

	status, ok := categoryStatus[coded.Category()]
	if !ok {
		status = http.StatusInternalServerError
	}
	if status >= http.StatusInternalServerError || coded.Category() == errs.CategoryDependency {
		slog.Error("dependency failure", "code", coded.Code(), "error", err)
	}
	AbortWithError(c, status, err, coded.Code(), coded.Error(), nil)
}

// BadRequest reports a malformed body, query or path parameter.
func BadRequest(c *gin.Context, err error, detail any) {
	AbortWithError(c, http.StatusBadRequest, err, CodeInvalidRequest, "Invalid request", detail)
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
