//go:build unit

package auth_test

import (
	"testing"
	"time"

	"neighbiz/internal/domain/auth"
	"neighbiz/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVerification(t *testing.T, now time.Time) *auth.PhoneVerification {
	t.Helper()
	phone, err := user.NewPhone("01012345678")
	require.NoError(t, err)
	return auth.NewPhoneVerification(phone, auth.PurposeConsumerLogin, "123456", now, 5*time.Minute)
}

func TestPhoneVerification(t *testing.T) {
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("code is stored hashed", func(t *testing.T) {
		v := newVerification(t, now)
		assert.NotEqual(t, "123456", v.CodeHash())
		assert.Equal(t, auth.HashSecret("123456"), v.CodeHash())
		assert.Equal(t, now.Add(5*time.Minute), v.ExpiresAt())
	})

	t.Run("correct code verifies once", func(t *testing.T) {
		v := newVerification(t, now)
		require.NoError(t, v.Verify("123456", now.Add(time.Minute)))
		assert.True(t, v.IsVerifiedWithin(now.Add(2*time.Minute), 5*time.Minute))
		assert.ErrorIs(t, v.Verify("123456", now.Add(time.Minute)), auth.ErrOTPExpired)
	})

	t.Run("wrong code counts attempts", func(t *testing.T) {
		v := newVerification(t, now)
		for i := 0; i < auth.MaxVerifyAttempts; i++ {
			assert.ErrorIs(t, v.Verify("000000", now), auth.ErrInvalidOTP)
		}
		assert.Equal(t, auth.MaxVerifyAttempts, v.Attempts())
		assert.ErrorIs(t, v.Verify("123456", now), auth.ErrTooManyAttempts)
	})

	t.Run("expired code", func(t *testing.T) {
		v := newVerification(t, now)
		assert.ErrorIs(t, v.Verify("123456", now.Add(5*time.Minute)), auth.ErrOTPExpired)
	})

	t.Run("message format", func(t *testing.T) {
		assert.Equal(t, "[NeighBiz] 인증번호는 [123456]입니다.", auth.OTPMessage("123456"))
	})
}

func TestRefreshToken(t *testing.T) {
	now := time.Now()
	token := auth.NewRefreshToken(uuid.New(), uuid.New(), user.KindConsumer, "raw-token", "ios", now.Add(time.Hour), now)

	assert.Equal(t, auth.HashSecret("raw-token"), token.TokenHash())
	assert.NoError(t, token.CheckUsable(now))
	assert.ErrorIs(t, token.CheckUsable(now.Add(time.Hour)), auth.ErrTokenExpired)

	revokedAt := now
	revoked := auth.ReconstructRefreshToken(token.ID(), token.PrincipalID(), token.Kind(), token.TokenHash(), "", token.ExpiresAt(), &revokedAt, now)
	assert.ErrorIs(t, revoked.CheckUsable(now), auth.ErrTokenRevoked)
}

func TestCredentials(t *testing.T) {
	_, err := auth.NewCredentials("x", "password1")
	assert.Error(t, err)

	c, err := auth.NewCredentials("owner_1", "password1")
	require.NoError(t, err)
	assert.Equal(t, "owner_1", c.Username().Value())
}
