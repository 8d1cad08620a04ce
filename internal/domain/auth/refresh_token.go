package auth

import (
	"time"

	"neighbiz/internal/domain/user"
	"neighbiz/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrTokenRevoked = errs.Unauthorized("TOKEN_REVOKED", "refresh token revoked")
	ErrTokenExpired = errs.Unauthorized("TOKEN_EXPIRED", "token expired")
	ErrInvalidToken = errs.Unauthorized("INVALID_TOKEN", "invalid token")
)

const MaxDeviceInfoLength = 255

type RefreshToken struct {
	id          uuid.UUID
	principalID uuid.UUID
	kind        user.Kind
	tokenHash   string
	deviceInfo  string
	expiresAt   time.Time
	revokedAt   *time.Time
	createdAt   time.Time
}

func NewRefreshToken(id, principalID uuid.UUID, kind user.Kind, rawToken, deviceInfo string, expiresAt, now time.Time) *RefreshToken {
	if len(deviceInfo) > MaxDeviceInfoLength {
		deviceInfo = deviceInfo[:MaxDeviceInfoLength]
	}
	return &RefreshToken{
		id:          id,
		principalID: principalID,
		kind:        kind,
		tokenHash:   HashSecret(rawToken),
		deviceInfo:  deviceInfo,
		expiresAt:   expiresAt,
		createdAt:   now,
	}
}

func ReconstructRefreshToken(id, principalID uuid.UUID, kind user.Kind, tokenHash, deviceInfo string, expiresAt time.Time, revokedAt *time.Time, createdAt time.Time) *RefreshToken {
	return &RefreshToken{
		id:          id,
		principalID: principalID,
		kind:        kind,
		tokenHash:   tokenHash,
		deviceInfo:  deviceInfo,
		expiresAt:   expiresAt,
		revokedAt:   revokedAt,
		createdAt:   createdAt,
	}
}

func (t *RefreshToken) CheckUsable(now time.Time) error {
	if t.revokedAt != nil {
		return ErrTokenRevoked
	}
	if !now.Before(t.expiresAt) {
		return ErrTokenExpired
	}
	return nil
}

func (t *RefreshToken) ID() uuid.UUID          { return t.id }
func (t *RefreshToken) PrincipalID() uuid.UUID { return t.principalID }
func (t *RefreshToken) Kind() user.Kind        { return t.kind }
func (t *RefreshToken) TokenHash() string      { return t.tokenHash }
func (t *RefreshToken) DeviceInfo() string     { return t.deviceInfo }
func (t *RefreshToken) ExpiresAt() time.Time   { return t.expiresAt }
func (t *RefreshToken) RevokedAt() *time.Time  { return t.revokedAt }
func (t *RefreshToken) CreatedAt() time.Time   { return t.createdAt }
