//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"neighbiz/internal/domain/user"
	"neighbiz/internal/handler/dto/request"
	"neighbiz/tests/common/dbtest"
	"neighbiz/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginOwner(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/owner/login",
		request.LoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

// CreateAndLoginOwner inserts an owner with a store and logs in through the API.
func CreateAndLoginOwner(t *testing.T, db dbtest.DBLike, router *gin.Engine, username, phone, category string) (dbtest.OwnerFixture, string) {
	t.Helper()
	f := dbtest.CreateTestOwner(t, db, username, phone, category)
	return f, LoginOwner(t, router, username, dbtest.DefaultPassword)
}

// CreateConsumerWithToken inserts a consumer and signs a token for it directly.
func CreateConsumerWithToken(t *testing.T, db dbtest.DBLike, h *JWTHelper, phone string) (user.Principal, string) {
	t.Helper()
	id := dbtest.CreateTestConsumer(t, db, phone)
	p := user.NewConsumerPrincipal(id)
	return p, h.GenerateToken(t, p)
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
