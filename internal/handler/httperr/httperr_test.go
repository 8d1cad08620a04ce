//go:build unit

package httperr_test

import (
	"context"
	"encoding/json"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"neighbiz/internal/handler/httperr"
	"neighbiz/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(t *testing.T, err error) (*nethttptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := nethttptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = nethttptest.NewRequest(http.MethodGet, "/x", nil)
	httperr.Respond(c, err)
	return rec, c
}

func decode(t *testing.T, rec *nethttptest.ResponseRecorder) httperr.Response {
	t.Helper()
	var resp httperr.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestRespond_CategoryStatus(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "validation", err: errs.Validation("V", "bad input"), status: http.StatusBadRequest},
		{name: "conflict", err: errs.Conflict("C", "taken"), status: http.StatusConflict},
		{name: "not found", err: errs.NotFound("N", "missing"), status: http.StatusNotFound},
		{name: "forbidden", err: errs.Forbidden("F", "nope"), status: http.StatusForbidden},
		{name: "unauthorized", err: errs.Unauthorized("U", "who"), status: http.StatusUnauthorized},
		{name: "expired", err: errs.Expired("E", "gone"), status: http.StatusGone},
		{name: "dependency", err: errs.Dependency("D", "upstream down"), status: http.StatusBadGateway},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec, c := respond(t, tc.err)

			assert.Equal(t, tc.status, rec.Code)
			assert.True(t, c.IsAborted())
			resp := decode(t, rec)
			assert.Equal(t, tc.err.Error(), resp.Error.Message)
			assert.Len(t, c.Errors, 1)
		})
	}
}

func TestRespond_WrappedKeepsCodedMessage(t *testing.T) {
	base := errs.Conflict("BUSY", "store is busy")
	rec, _ := respond(t, errs.Wrap(base, "while locking rows"))

	assert.Equal(t, http.StatusConflict, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, "BUSY", resp.Error.Code)
	assert.Equal(t, "store is busy", resp.Error.Message)
}

func TestRespond_UnclassifiedHidesText(t *testing.T) {
	rec, _ := respond(t, errs.Wrap(context.DeadlineExceeded, "select stores"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, errs.CodeInternal, resp.Error.Code)
	assert.Equal(t, "Internal server error", resp.Error.Message)
	assert.NotContains(t, rec.Body.String(), "select stores")
}

func TestBadRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := nethttptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = nethttptest.NewRequest(http.MethodPost, "/x", nil)

	httperr.BadRequest(c, errs.New("EOF"), gin.H{"id": "must be a UUID"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, httperr.CodeInvalidRequest, resp.Error.Code)
	assert.Equal(t, "Invalid request", resp.Error.Message)
	assert.Equal(t, map[string]any{"id": "must be a UUID"}, resp.Detail)
}

func TestRespond_NilPanics(t *testing.T) {
	assert.Panics(t, func() { respond(t, nil) })
}
