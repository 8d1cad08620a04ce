package jwt

import (
	"errors"
	"time"

	"neighbiz/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

type Claims struct {
	PrincipalID uuid.UUID  `json:"pid"`
	Kind        string     `json:"kind"`
	StoreID     *uuid.UUID `json:"store_id,omitempty"`
	TokenType   TokenType  `json:"typ"`
	jwt.RegisteredClaims
}

// Principal rebuilds the authenticated principal carried by the claims.
func (c *Claims) Principal() (user.Principal, error) {
	kind, err := user.NewKind(c.Kind)
	if err != nil {
		return user.Principal{}, ErrInvalidToken
	}
	if kind == user.KindOwner {
		if c.StoreID == nil {
			return user.Principal{}, ErrInvalidToken
		}
		return user.NewOwnerPrincipal(c.PrincipalID, *c.StoreID), nil
	}
	return user.NewConsumerPrincipal(c.PrincipalID), nil
}

type IssuedToken struct {
	Token     string
	JTI       uuid.UUID
	ExpiresAt time.Time
}

type Service struct {
	secretKey            []byte
	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration
}

func NewService(secretKey string, accessTokenDuration, refreshTokenDuration time.Duration) *Service {
	return &Service{
		secretKey:            []byte(secretKey),
		accessTokenDuration:  accessTokenDuration,
		refreshTokenDuration: refreshTokenDuration,
	}
}

func (s *Service) AccessTokenDuration() time.Duration  { return s.accessTokenDuration }
func (s *Service) RefreshTokenDuration() time.Duration { return s.refreshTokenDuration }

func (s *Service) GenerateAccessToken(p user.Principal, now time.Time) (IssuedToken, error) {
	return s.generate(p, TokenTypeAccess, now, s.accessTokenDuration)
}

func (s *Service) GenerateRefreshToken(p user.Principal, now time.Time) (IssuedToken, error) {
	return s.generate(p, TokenTypeRefresh, now, s.refreshTokenDuration)
}

func (s *Service) generate(p user.Principal, typ TokenType, now time.Time, ttl time.Duration) (IssuedToken, error) {
	jti := uuid.New()
	expiresAt := now.Add(ttl)
	claims := Claims{
		PrincipalID: p.ID(),
		Kind:        p.Kind().String(),
		TokenType:   typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti.String(),
			Subject:   p.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	if p.IsOwner() {
		storeID := p.StoreID()
		claims.StoreID = &storeID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return IssuedToken{}, err
	}
	return IssuedToken{Token: signed, JTI: jti, ExpiresAt: expiresAt}, nil
}

// ValidateToken parses tokenString and checks that it is of the expected type.
func (s *Service) ValidateToken(tokenString string, expected TokenType) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.TokenType != expected {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
