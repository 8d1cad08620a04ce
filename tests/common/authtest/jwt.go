//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"neighbiz/internal/domain/user"
	"neighbiz/internal/pkg/config"
	"neighbiz/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) service(t *testing.T) *jwt.Service {
	t.Helper()
	access, err := time.ParseDuration(h.cfg.AccessTokenDuration)
	require.NoError(t, err)
	refresh, err := time.ParseDuration(h.cfg.RefreshTokenDuration)
	require.NoError(t, err)
	return jwt.NewService(h.cfg.Secret, access, refresh)
}

// GenerateToken signs an access token for p without touching the database.
func (h *JWTHelper) GenerateToken(t *testing.T, p user.Principal) string {
	t.Helper()
	issued, err := h.service(t).GenerateAccessToken(p, time.Now())
	require.NoError(t, err)
	return issued.Token
}

// CreateExpiredToken signs an access token whose lifetime ended a minute ago.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, p user.Principal) string {
	t.Helper()
	svc := h.service(t)
	issued, err := svc.GenerateAccessToken(p, time.Now().Add(-svc.AccessTokenDuration()-time.Minute))
	require.NoError(t, err)
	return issued.Token
}

// GenerateRefreshAsAccess returns a refresh token, which protected routes must reject.
func (h *JWTHelper) GenerateRefreshAsAccess(t *testing.T, p user.Principal) string {
	t.Helper()
	issued, err := h.service(t).GenerateRefreshToken(p, time.Now())
	require.NoError(t, err)
	return issued.Token
}
