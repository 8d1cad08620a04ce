package usecase

import (
	"neighbiz/internal/domain/auth"
	"neighbiz/internal/domain/user"
	"neighbiz/internal/pkg/errs"
	"neighbiz/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	Authenticate(tokenString string) (user.Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

// Authenticate accepts access tokens only; refresh tokens are rejected.
func (t *tokenValidatorImpl) Authenticate(tokenString string) (user.Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString, jwt.TokenTypeAccess)
	if err != nil {
		if errs.Is(err, jwt.ErrExpiredToken) {
			return user.Principal{}, auth.ErrTokenExpired
		}
		return user.Principal{}, auth.ErrInvalidToken
	}

	principal, err := claims.Principal()
	if err != nil {
		return user.Principal{}, auth.ErrInvalidToken
	}

	return principal, nil
}
