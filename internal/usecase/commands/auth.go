package commands

import (
	"context"
	"log/slog"
	"time"

	"neighbiz/internal/domain/auth"
	"neighbiz/internal/domain/store"
	"neighbiz/internal/domain/user"
	"neighbiz/internal/infra"
	"neighbiz/internal/pkg/clock"
	"neighbiz/internal/pkg/errs"
	"neighbiz/internal/pkg/jwt"
	"neighbiz/internal/pkg/password"
	"neighbiz/internal/pkg/random"
	"neighbiz/internal/usecase/shared"
)

var ErrTokenGeneration = errs.New("token generation failed")

type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

type AuthResult struct {
	Principal user.Principal
	Tokens    *TokenPair
}

type RequestOTPRequest struct {
	Phone   string
	Purpose string
}

type RequestOTPResult struct {
	ExpiresAt time.Time
}

type VerifyOTPRequest struct {
	Phone      string
	Purpose    string
	Code       string
	DeviceInfo string
}

// VerifyOTPResult carries tokens only for consumer login.
type VerifyOTPResult struct {
	Verified bool
	Auth     *AuthResult
}

type OwnerSignupRequest struct {
	Username   string
	Password   string
	Name       string
	Phone      string
	Store      store.Profile
	DeviceInfo string
}

type ResetPasswordRequest struct {
	Username    string
	Phone       string
	Code        string
	NewPassword string
}

type AuthCommands interface {
	RequestOTP(ctx context.Context, req RequestOTPRequest) (*RequestOTPResult, error)
	VerifyOTP(ctx context.Context, req VerifyOTPRequest) (*VerifyOTPResult, error)
	OwnerSignup(ctx context.Context, req OwnerSignupRequest) (*AuthResult, error)
	OwnerLogin(ctx context.Context, username, pass, deviceInfo string) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken, deviceInfo string) (*AuthResult, error)
	Logout(ctx context.Context, refreshToken string) error
	FindUsername(ctx context.Context, phone, code string) (string, error)
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
	ChangePassword(ctx context.Context, principal user.Principal, current, next string) error
}

type AuthSettings struct {
	OTPTTL        time.Duration
	OTPCodeLength int
}

type authUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	jwt      *jwt.Service
	sms      SMSSender
	limiter  SendLimiter
	settings AuthSettings
}

func NewAuthUseCase(uow shared.UnitOfWork, clk clock.Clock, jwtService *jwt.Service, sms SMSSender, limiter SendLimiter, settings AuthSettings) AuthCommands {
	return &authUseCaseImpl{
		uow:      uow,
		clock:    clk,
		jwt:      jwtService,
		sms:      sms,
		limiter:  limiter,
		settings: settings,
	}
}

func (uc *authUseCaseImpl) RequestOTP(ctx context.Context, req RequestOTPRequest) (*RequestOTPResult, error) {
	phone, err := user.NewPhone(req.Phone)
	if err != nil {
		return nil, err
	}
	purpose, err := auth.NewPurpose(req.Purpose)
	if err != nil {
		return nil, err
	}
	if !uc.limiter.Allow(phone.Value()) {
		return nil, auth.ErrOTPRateLimited
	}

	code, err := random.Digits(uc.settings.OTPCodeLength)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate verification code")
	}
	v := auth.NewPhoneVerification(phone, purpose, code, uc.clock.Now(), uc.settings.OTPTTL)

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if purpose == auth.PurposeOwnerSignup {
			taken, err := tx.Owners().ExistsByPhone(ctx, tx.DB(), phone.Value())
			if err != nil {
				return err
			}
			if taken {
				return user.ErrPhoneTaken
			}
		}
		return tx.Verifications().Create(ctx, tx.DB(), v)
	})
	if err != nil {
		return nil, err
	}

	// the stored verification stays even if delivery fails
	if err := uc.sms.Send(ctx, phone.Value(), auth.OTPMessage(code)); err != nil {
		slog.Error("failed to send verification sms", "purpose", purpose, "error", err)
		return nil, errs.WithCause(ErrSMSSendFailed, err)
	}

	return &RequestOTPResult{ExpiresAt: v.ExpiresAt()}, nil
}

func (uc *authUseCaseImpl) VerifyOTP(ctx context.Context, req VerifyOTPRequest) (*VerifyOTPResult, error) {
	phone, err := user.NewPhone(req.Phone)
	if err != nil {
		return nil, err
	}
	purpose, err := auth.NewPurpose(req.Purpose)
	if err != nil {
		return nil, err
	}

	var (
		result     = &VerifyOTPResult{}
		verifyFail error
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		v, err := tx.Verifications().LockLatestPending(ctx, tx.DB(), phone.Value(), purpose)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return auth.ErrOTPExpired
			}
			return err
		}

		// wrong attempts must commit, so the failure is reported after the transaction
		verifyFail = v.Verify(req.Code, now)
		if err := tx.Verifications().SaveAttempt(ctx, tx.DB(), v); err != nil {
			return err
		}
		if verifyFail != nil {
			return nil
		}
		result.Verified = true

		if purpose != auth.PurposeConsumerLogin {
			return nil
		}
		if err := tx.Verifications().Consume(ctx, tx.DB(), v.ID(), now); err != nil {
			return err
		}
		consumer, err := tx.Consumers().UpsertByPhone(ctx, tx.DB(), phone, now)
		if err != nil {
			return err
		}
		if !consumer.IsActive() {
			return user.ErrAccountInactive
		}
		result.Auth, err = uc.issueTokens(ctx, tx, user.NewConsumerPrincipal(consumer.ID()), req.DeviceInfo, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	if verifyFail != nil {
		return nil, verifyFail
	}
	return result, nil
}

func (uc *authUseCaseImpl) OwnerSignup(ctx context.Context, req OwnerSignupRequest) (*AuthResult, error) {
	username, err := user.NewUsername(req.Username)
	if err != nil {
		return nil, err
	}
	pass, err := user.NewPassword(req.Password)
	if err != nil {
		return nil, err
	}
	phone, err := user.NewPhone(req.Phone)
	if err != nil {
		return nil, err
	}
	// hashing is slow, keep it outside the transaction
	hash, err := password.HashPassword(pass.Value())
	if err != nil {
		return nil, err
	}

	var result *AuthResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		v, err := tx.Verifications().LockLatestVerified(ctx, tx.DB(), phone.Value(), auth.PurposeOwnerSignup)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return auth.ErrOTPNotVerified
			}
			return err
		}
		if !v.IsVerifiedWithin(now, uc.settings.OTPTTL) {
			return auth.ErrOTPNotVerified
		}

		if taken, err := tx.Owners().ExistsByUsername(ctx, tx.DB(), username.Value()); err != nil {
			return err
		} else if taken {
			return user.ErrUsernameTaken
		}
		if taken, err := tx.Owners().ExistsByPhone(ctx, tx.DB(), phone.Value()); err != nil {
			return err
		} else if taken {
			return user.ErrPhoneTaken
		}

		owner, err := user.NewOwner(username, hash, req.Name, phone, now)
		if err != nil {
			return err
		}
		st, err := store.NewStore(owner.ID(), req.Store, now)
		if err != nil {
			return err
		}
		if err := tx.Owners().Create(ctx, tx.DB(), owner); err != nil {
			return err
		}
		if err := tx.Stores().Create(ctx, tx.DB(), st); err != nil {
			return err
		}
		if err := tx.Verifications().Consume(ctx, tx.DB(), v.ID(), now); err != nil {
			return err
		}

		result, err = uc.issueTokens(ctx, tx, user.NewOwnerPrincipal(owner.ID(), st.ID()), req.DeviceInfo, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *authUseCaseImpl) OwnerLogin(ctx context.Context, username, pass, deviceInfo string) (*AuthResult, error) {
	credentials, err := auth.NewCredentials(username, pass)
	if err != nil {
		// malformed input gets the same answer as a wrong password
		return nil, auth.ErrInvalidCredentials
	}

	var result *AuthResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		owner, err := tx.Owners().FindByUsername(ctx, tx.DB(), credentials.Username().Value())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return auth.ErrInvalidCredentials
			}
			return err
		}
		if err := password.ComparePassword(owner.PasswordHash(), credentials.Password().Value()); err != nil {
			return auth.ErrInvalidCredentials
		}
		if !owner.IsActive() {
			return user.ErrAccountInactive
		}

		st, err := tx.Reads().StoreByOwnerID(ctx, owner.ID())
		if err != nil {
			return err
		}
		result, err = uc.issueTokens(ctx, tx, user.NewOwnerPrincipal(owner.ID(), st.ID), deviceInfo, uc.clock.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Refresh rotates the refresh token: the presented token is revoked and a new pair stored.
func (uc *authUseCaseImpl) Refresh(ctx context.Context, refreshToken, deviceInfo string) (*AuthResult, error) {
	claims, err := uc.jwt.ValidateToken(refreshToken, jwt.TokenTypeRefresh)
	if err != nil {
		return nil, mapTokenError(err)
	}
	principal, err := claims.Principal()
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	var result *AuthResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		stored, err := tx.RefreshTokens().LockByHash(ctx, tx.DB(), auth.HashSecret(refreshToken))
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return auth.ErrInvalidToken
			}
			return err
		}
		if stored.PrincipalID() != principal.ID() {
			return auth.ErrInvalidToken
		}
		if err := stored.CheckUsable(now); err != nil {
			return err
		}
		if err := tx.RefreshTokens().Revoke(ctx, tx.DB(), stored.ID(), now); err != nil {
			return err
		}

		result, err = uc.issueTokens(ctx, tx, principal, deviceInfo, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Logout is idempotent: unknown or already revoked tokens succeed.
func (uc *authUseCaseImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		stored, err := tx.RefreshTokens().LockByHash(ctx, tx.DB(), auth.HashSecret(refreshToken))
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return err
		}
		if stored.RevokedAt() != nil {
			return nil
		}
		return tx.RefreshTokens().Revoke(ctx, tx.DB(), stored.ID(), uc.clock.Now())
	})
}

func (uc *authUseCaseImpl) FindUsername(ctx context.Context, phoneStr, code string) (string, error) {
	phone, err := user.NewPhone(phoneStr)
	if err != nil {
		return "", err
	}

	var (
		username string
		failure  error
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		failure, err = uc.confirmCode(ctx, tx, phone, auth.PurposeFindUsername, code)
		if err != nil || failure != nil {
			return err
		}

		owner, err := tx.Owners().FindByPhone(ctx, tx.DB(), phone.Value())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return user.ErrOwnerNotFound
			}
			return err
		}
		username = owner.Username().Value()
		return nil
	})
	if err != nil {
		return "", err
	}
	if failure != nil {
		return "", failure
	}
	return username, nil
}

func (uc *authUseCaseImpl) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	phone, err := user.NewPhone(req.Phone)
	if err != nil {
		return err
	}
	pass, err := user.NewPassword(req.NewPassword)
	if err != nil {
		return err
	}
	hash, err := password.HashPassword(pass.Value())
	if err != nil {
		return err
	}

	var failure error
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		owner, err := tx.Owners().FindByUsername(ctx, tx.DB(), req.Username)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return user.ErrOwnerNotFound
			}
			return err
		}
		if owner.Phone().Value() != phone.Value() {
			return user.ErrOwnerNotFound
		}

		failure, err = uc.confirmCode(ctx, tx, phone, auth.PurposeResetPassword, req.Code)
		if err != nil || failure != nil {
			return err
		}

		now := uc.clock.Now()
		owner.ChangePasswordHash(hash, now)
		if err := tx.Owners().UpdatePassword(ctx, tx.DB(), owner); err != nil {
			return err
		}
		revoked, err := tx.RefreshTokens().RevokeAllForPrincipal(ctx, tx.DB(), owner.ID(), now)
		if err != nil {
			return err
		}
		slog.Info("password reset", "owner_id", owner.ID(), "revoked_tokens", revoked)
		return nil
	})
	if err != nil {
		return err
	}
	return failure
}

func (uc *authUseCaseImpl) ChangePassword(ctx context.Context, principal user.Principal, current, next string) error {
	if _, err := principal.RequireOwner(); err != nil {
		return err
	}
	pass, err := user.NewPassword(next)
	if err != nil {
		return err
	}
	hash, err := password.HashPassword(pass.Value())
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		owner, err := tx.Owners().FindByID(ctx, tx.DB(), principal.ID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return user.ErrOwnerNotFound
			}
			return err
		}
		if err := password.ComparePassword(owner.PasswordHash(), current); err != nil {
			return auth.ErrInvalidCredentials
		}
		owner.ChangePasswordHash(hash, uc.clock.Now())
		return tx.Owners().UpdatePassword(ctx, tx.DB(), owner)
	})
}

// confirmCode accepts a code already verified through VerifyOTP, or verifies the
// pending one now. The returned failure is a domain error whose attempt counter
// has been written; err is anything that must roll back.
func (uc *authUseCaseImpl) confirmCode(ctx context.Context, tx shared.Tx, phone user.Phone, purpose auth.Purpose, code string) (failure error, err error) {
	now := uc.clock.Now()

	verified, err := tx.Verifications().LockLatestVerified(ctx, tx.DB(), phone.Value(), purpose)
	switch {
	case err == nil:
		if verified.IsVerifiedWithin(now, uc.settings.OTPTTL) && verified.Matches(code) {
			return nil, tx.Verifications().Consume(ctx, tx.DB(), verified.ID(), now)
		}
	case !infra.IsKind(err, infra.KindNotFound):
		return nil, err
	}

	pending, err := tx.Verifications().LockLatestPending(ctx, tx.DB(), phone.Value(), purpose)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return auth.ErrOTPExpired, nil
		}
		return nil, err
	}
	failure = pending.Verify(code, now)
	if err := tx.Verifications().SaveAttempt(ctx, tx.DB(), pending); err != nil {
		return nil, err
	}
	if failure != nil {
		return failure, nil
	}
	return nil, tx.Verifications().Consume(ctx, tx.DB(), pending.ID(), now)
}

func (uc *authUseCaseImpl) issueTokens(ctx context.Context, tx shared.Tx, principal user.Principal, deviceInfo string, now time.Time) (*AuthResult, error) {
	access, err := uc.jwt.GenerateAccessToken(principal, now)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refresh, err := uc.jwt.GenerateRefreshToken(principal, now)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	stored := auth.NewRefreshToken(refresh.JTI, principal.ID(), principal.Kind(), refresh.Token, deviceInfo, refresh.ExpiresAt, now)
	if err := tx.RefreshTokens().Create(ctx, tx.DB(), stored); err != nil {
		return nil, err
	}

	return &AuthResult{
		Principal: principal,
		Tokens: &TokenPair{
			AccessToken:      access.Token,
			RefreshToken:     refresh.Token,
			AccessExpiresAt:  access.ExpiresAt,
			RefreshExpiresAt: refresh.ExpiresAt,
		},
	}, nil
}

func mapTokenError(err error) error {
	if errs.Is(err, jwt.ErrExpiredToken) {
		return auth.ErrTokenExpired
	}
	return auth.ErrInvalidToken
}
