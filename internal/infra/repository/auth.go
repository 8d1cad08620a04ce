package repository

import (
	"context"
	"time"

	"neighbiz/internal/domain/auth"
	"neighbiz/internal/infra"
	"neighbiz/internal/infra/repository/converter"
	sqlc "neighbiz/internal/infra/sqlc/generated"
	"neighbiz/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type VerificationWriteQueries interface {
	CreatePhoneVerification(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePhoneVerificationParams) error
	LockLatestPendingPhoneVerification(ctx context.Context, db sqlc.DBTX, arg sqlc.LockLatestPendingPhoneVerificationParams) (sqlc.PhoneVerifications, error)
	LockLatestVerifiedPhoneVerification(ctx context.Context, db sqlc.DBTX, arg sqlc.LockLatestVerifiedPhoneVerificationParams) (sqlc.PhoneVerifications, error)
	UpdatePhoneVerificationAttempt(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePhoneVerificationAttemptParams) error
	ConsumePhoneVerification(ctx context.Context, db sqlc.DBTX, arg sqlc.ConsumePhoneVerificationParams) error
}

type VerificationRepository struct {
	queries VerificationWriteQueries
	db      sqlc.DBTX
}

func NewVerificationRepository(queries VerificationWriteQueries, db sqlc.DBTX) *VerificationRepository {
	return &VerificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *VerificationRepository) Create(ctx context.Context, tx sqlc.DBTX, v *auth.PhoneVerification) error {
	if err := r.queries.CreatePhoneVerification(ctx, tx, converter.VerificationToCreateParams(v)); err != nil {
		return infra.WrapRepoErr("failed to create phone verification", err)
	}
	return nil
}

func (r *VerificationRepository) LockLatestPending(ctx context.Context, tx sqlc.DBTX, phone string, purpose auth.Purpose) (*auth.PhoneVerification, error) {
	row, err := r.queries.LockLatestPendingPhoneVerification(ctx, tx, sqlc.LockLatestPendingPhoneVerificationParams{
		Phone:   phone,
		Purpose: purpose.String(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock pending phone verification", err)
	}
	return converter.VerificationFromRow(row), nil
}

func (r *VerificationRepository) LockLatestVerified(ctx context.Context, tx sqlc.DBTX, phone string, purpose auth.Purpose) (*auth.PhoneVerification, error) {
	row, err := r.queries.LockLatestVerifiedPhoneVerification(ctx, tx, sqlc.LockLatestVerifiedPhoneVerificationParams{
		Phone:   phone,
		Purpose: purpose.String(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock verified phone verification", err)
	}
	return converter.VerificationFromRow(row), nil
}

func (r *VerificationRepository) SaveAttempt(ctx context.Context, tx sqlc.DBTX, v *auth.PhoneVerification) error {
	params := sqlc.UpdatePhoneVerificationAttemptParams{
		ID:         v.ID(),
		Attempts:   int32(v.Attempts()),
		VerifiedAt: pgconv.TimePtrToPgtype(v.VerifiedAt()),
	}
	if err := r.queries.UpdatePhoneVerificationAttempt(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to save verification attempt", err)
	}
	return nil
}

// Consume prevents a verified code from authorizing a second signup or reset.
func (r *VerificationRepository) Consume(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, now time.Time) error {
	params := sqlc.ConsumePhoneVerificationParams{ID: id, ConsumedAt: pgconv.TimeToPgtype(now)}
	if err := r.queries.ConsumePhoneVerification(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to consume phone verification", err)
	}
	return nil
}

type RefreshTokenWriteQueries interface {
	CreateRefreshToken(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRefreshTokenParams) error
	LockRefreshTokenByHash(ctx context.Context, db sqlc.DBTX, tokenHash string) (sqlc.RefreshTokens, error)
	RevokeRefreshToken(ctx context.Context, db sqlc.DBTX, arg sqlc.RevokeRefreshTokenParams) (int64, error)
	RevokeRefreshTokensByPrincipal(ctx context.Context, db sqlc.DBTX, arg sqlc.RevokeRefreshTokensByPrincipalParams) (int64, error)
}

type RefreshTokenRepository struct {
	queries RefreshTokenWriteQueries
	db      sqlc.DBTX
}

func NewRefreshTokenRepository(queries RefreshTokenWriteQueries, db sqlc.DBTX) *RefreshTokenRepository {
	return &RefreshTokenRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RefreshTokenRepository) Create(ctx context.Context, tx sqlc.DBTX, t *auth.RefreshToken) error {
	if err := r.queries.CreateRefreshToken(ctx, tx, converter.RefreshTokenToCreateParams(t)); err != nil {
		return infra.WrapRepoErr("failed to store refresh token", err)
	}
	return nil
}

func (r *RefreshTokenRepository) LockByHash(ctx context.Context, tx sqlc.DBTX, tokenHash string) (*auth.RefreshToken, error) {
	row, err := r.queries.LockRefreshTokenByHash(ctx, tx, tokenHash)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock refresh token", err)
	}
	return converter.RefreshTokenFromRow(row), nil
}

// Revoke is a no-op for tokens that are already revoked.
func (r *RefreshTokenRepository) Revoke(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, now time.Time) error {
	params := sqlc.RevokeRefreshTokenParams{ID: id, RevokedAt: pgconv.TimeToPgtype(now)}
	if _, err := r.queries.RevokeRefreshToken(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to revoke refresh token", err)
	}
	return nil
}

func (r *RefreshTokenRepository) RevokeAllForPrincipal(ctx context.Context, tx sqlc.DBTX, principalID uuid.UUID, now time.Time) (int64, error) {
	params := sqlc.RevokeRefreshTokensByPrincipalParams{PrincipalID: principalID, RevokedAt: pgconv.TimeToPgtype(now)}
	n, err := r.queries.RevokeRefreshTokensByPrincipal(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to revoke refresh tokens for principal", err)
	}
	return n, nil
}
