//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"neighbiz/internal/domain/auth"
	"neighbiz/internal/domain/user"
	"neighbiz/internal/handler/middleware"
	usecasemock "neighbiz/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	ownerToken    = "owner-token"
	consumerToken = "consumer-token"
)

// testPrincipals authenticates ownerToken and consumerToken through the real middleware.
type testPrincipals struct {
	owner    user.Principal
	consumer user.Principal
	mw       *middleware.AuthMiddleware
}

func newTestPrincipals(ctrl *gomock.Controller) *testPrincipals {
	p := &testPrincipals{
		owner:    user.NewOwnerPrincipal(uuid.New(), uuid.New()),
		consumer: user.NewConsumerPrincipal(uuid.New()),
	}
	validator := usecasemock.NewMockTokenValidator(ctrl)
	validator.EXPECT().Authenticate(gomock.Any()).DoAndReturn(func(token string) (user.Principal, error) {
		switch token {
		case ownerToken:
			return p.owner, nil
		case consumerToken:
			return p.consumer, nil
		default:
			return user.Principal{}, auth.ErrInvalidToken
		}
	}).AnyTimes()
	p.mw = middleware.NewAuthMiddleware(validator)
	return p
}

func (p *testPrincipals) owners() []gin.HandlerFunc {
	return []gin.HandlerFunc{p.mw.RequireAuth(), p.mw.RequireKind(user.KindOwner)}
}

func (p *testPrincipals) consumers() []gin.HandlerFunc {
	return []gin.HandlerFunc{p.mw.RequireAuth(), p.mw.RequireKind(user.KindConsumer)}
}

func chain(mw []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	return append(append([]gin.HandlerFunc{}, mw...), h)
}

func ptr[T any](v T) *T { return &v }

// newJSONRequest is for cases that need extra headers before serving.
func newJSONRequest(t *testing.T, method, path string, body any, token string) (*http.Request, *nethttptest.ResponseRecorder) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := nethttptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nethttptest.NewRecorder()
}
