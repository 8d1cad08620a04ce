package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"time"

	"neighbiz/internal/domain/user"
	"neighbiz/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidPurpose  = errs.Validation("INVALID_OTP_PURPOSE", "invalid verification purpose")
	ErrInvalidOTP      = errs.Validation("INVALID_OTP", "verification code does not match")
	ErrOTPExpired      = errs.Expired("OTP_EXPIRED", "verification code expired or not requested")
	ErrOTPNotVerified  = errs.Forbidden("OTP_NOT_VERIFIED", "phone number is not verified")
	ErrOTPRateLimited  = errs.Conflict("OTP_RATE_LIMITED", "too many verification requests")
	ErrTooManyAttempts = errs.Conflict("OTP_TOO_MANY_ATTEMPTS", "too many wrong verification codes")
)

const MaxVerifyAttempts = 5

type Purpose string

const (
	PurposeConsumerLogin Purpose = "consumer_login"
	PurposeOwnerSignup   Purpose = "owner_signup"
	PurposeFindUsername  Purpose = "find_username"
	PurposeResetPassword Purpose = "reset_password"
)

func NewPurpose(s string) (Purpose, error) {
	p := Purpose(s)
	switch p {
	case PurposeConsumerLogin, PurposeOwnerSignup, PurposeFindUsername, PurposeResetPassword:
		return p, nil
	default:
		return "", ErrInvalidPurpose
	}
}

func (p Purpose) String() string { return string(p) }

// PhoneVerification stores only a digest of the delivered code.
type PhoneVerification struct {
	id         uuid.UUID
	phone      user.Phone
	purpose    Purpose
	codeHash   string
	attempts   int
	expiresAt  time.Time
	verifiedAt *time.Time
	createdAt  time.Time
}

func NewPhoneVerification(phone user.Phone, purpose Purpose, code string, now time.Time, ttl time.Duration) *PhoneVerification {
	return &PhoneVerification{
		id:        uuid.New(),
		phone:     phone,
		purpose:   purpose,
		codeHash:  HashSecret(code),
		expiresAt: now.Add(ttl),
		createdAt: now,
	}
}

func ReconstructPhoneVerification(id uuid.UUID, phone string, purpose Purpose, codeHash string, attempts int, expiresAt time.Time, verifiedAt *time.Time, createdAt time.Time) *PhoneVerification {
	return &PhoneVerification{
		id:         id,
		phone:      user.ReconstructPhone(phone),
		purpose:    purpose,
		codeHash:   codeHash,
		attempts:   attempts,
		expiresAt:  expiresAt,
		verifiedAt: verifiedAt,
		createdAt:  createdAt,
	}
}

// Verify checks code at now. Wrong codes count as attempts so the caller must
// persist the verification whether or not Verify succeeds.
func (v *PhoneVerification) Verify(code string, now time.Time) error {
	if v.verifiedAt != nil || !now.Before(v.expiresAt) {
		return ErrOTPExpired
	}
	if v.attempts >= MaxVerifyAttempts {
		return ErrTooManyAttempts
	}
	if !v.Matches(code) {
		v.attempts++
		return ErrInvalidOTP
	}
	v.verifiedAt = &now
	return nil
}

func (v *PhoneVerification) Matches(code string) bool {
	return subtle.ConstantTimeCompare([]byte(HashSecret(code)), []byte(v.codeHash)) == 1
}

// IsVerifiedWithin reports whether the phone was verified and the verification
// is still inside its validity window.
func (v *PhoneVerification) IsVerifiedWithin(now time.Time, window time.Duration) bool {
	return v.verifiedAt != nil && now.Sub(*v.verifiedAt) <= window
}

func (v *PhoneVerification) ID() uuid.UUID          { return v.id }
func (v *PhoneVerification) Phone() user.Phone      { return v.phone }
func (v *PhoneVerification) Purpose() Purpose       { return v.purpose }
func (v *PhoneVerification) CodeHash() string       { return v.codeHash }
func (v *PhoneVerification) Attempts() int          { return v.attempts }
func (v *PhoneVerification) ExpiresAt() time.Time   { return v.expiresAt }
func (v *PhoneVerification) VerifiedAt() *time.Time { return v.verifiedAt }
func (v *PhoneVerification) CreatedAt() time.Time   { return v.createdAt }

// HashSecret is used for OTP codes and refresh tokens, both high-entropy or
// short-lived, so an unsalted digest is sufficient.
func HashSecret(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func OTPMessage(code string) string {
	return "[NeighBiz] 인증번호는 [" + code + "]입니다."
}
