package response

import (
	"time"

	"neighbiz/internal/usecase/commands"
	"neighbiz/internal/usecase/queries"

	"github.com/google/uuid"
)

type PrincipalResponse struct {
	ID      uuid.UUID  `json:"id"`
	Kind    string     `json:"kind"`
	StoreID *uuid.UUID `json:"store_id,omitempty"`
}

type TokenResponse struct {
	AccessToken      string            `json:"access_token"`
	RefreshToken     string            `json:"refresh_token"`
	AccessExpiresAt  time.Time         `json:"access_expires_at"`
	RefreshExpiresAt time.Time         `json:"refresh_expires_at"`
	Principal        PrincipalResponse `json:"principal"`
}

func FromAuthResult(r *commands.AuthResult) *TokenResponse {
	principal := PrincipalResponse{
		ID:   r.Principal.ID(),
		Kind: r.Principal.Kind().String(),
	}
	if r.Principal.IsOwner() {
		storeID := r.Principal.StoreID()
		principal.StoreID = &storeID
	}
	return &TokenResponse{
		AccessToken:      r.Tokens.AccessToken,
		RefreshToken:     r.Tokens.RefreshToken,
		AccessExpiresAt:  r.Tokens.AccessExpiresAt,
		RefreshExpiresAt: r.Tokens.RefreshExpiresAt,
		Principal:        principal,
	}
}

type OTPRequestedResponse struct {
	ExpiresAt time.Time `json:"expires_at"`
}

// OTPVerifiedResponse carries tokens only for consumer login.
type OTPVerifiedResponse struct {
	Verified bool           `json:"verified"`
	Auth     *TokenResponse `json:"auth,omitempty"`
}

type UsernameResponse struct {
	Username string `json:"username"`
}

type AccountResponse struct {
	ID        uuid.UUID  `json:"id"`
	Kind      string     `json:"kind"`
	Phone     string     `json:"phone"`
	Username  *string    `json:"username,omitempty"`
	Name      *string    `json:"name,omitempty"`
	StoreID   *uuid.UUID `json:"store_id,omitempty"`
	StoreName *string    `json:"store_name,omitempty"`
}

func FromAccountView(v *queries.AccountView) *AccountResponse {
	return copyInto[AccountResponse](v)
}

type MessageResponse struct {
	Message string `json:"message"`
}
