package repository

import (
	"context"
	"time"

	"neighbiz/internal/domain/coupon"
	"neighbiz/internal/infra"
	"neighbiz/internal/infra/repository/converter"
	sqlc "neighbiz/internal/infra/sqlc/generated"
	"neighbiz/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CouponWriteQueries interface {
	InsertCouponIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertCouponIfAbsentParams) (int64, error)
	GetCouponForDay(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCouponForDayParams) (sqlc.Coupons, error)
	LockCouponByShortCode(ctx context.Context, db sqlc.DBTX, arg sqlc.LockCouponByShortCodeParams) (sqlc.Coupons, error)
	UpdateCouponStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCouponStatusParams) error
	CountCouponsForPolicySince(ctx context.Context, db sqlc.DBTX, arg sqlc.CountCouponsForPolicySinceParams) (int64, error)
	ExpireOverdueCoupons(ctx context.Context, db sqlc.DBTX, expiredAt pgtype.Timestamptz) (int64, error)
	CreateCouponEventLog(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCouponEventLogParams) error
}

type CouponRepository struct {
	queries CouponWriteQueries
	db      sqlc.DBTX
}

func NewCouponRepository(queries CouponWriteQueries, db sqlc.DBTX) *CouponRepository {
	return &CouponRepository{
		queries: queries,
		db:      db,
	}
}

// InsertIfAbsent uses ON CONFLICT DO NOTHING so a collision on the short code
// or on the daily key leaves the surrounding transaction usable.
func (r *CouponRepository) InsertIfAbsent(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) (bool, error) {
	n, err := r.queries.InsertCouponIfAbsent(ctx, tx, converter.CouponToInsertParams(c))
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert coupon", err)
	}
	return n == 1, nil
}

func (r *CouponRepository) FindForDay(ctx context.Context, tx sqlc.DBTX, consumerID uuid.UUID, slug string, day time.Time) (*coupon.Coupon, error) {
	row, err := r.queries.GetCouponForDay(ctx, tx, sqlc.GetCouponForDayParams{
		ConsumerID:      consumerID,
		PartnershipSlug: slug,
		IssuedOn:        pgconv.DateToPgtype(day),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get coupon for day", err)
	}
	return converter.CouponFromRow(row), nil
}

func (r *CouponRepository) LockByShortCode(ctx context.Context, tx sqlc.DBTX, shortCode string, consumerID uuid.UUID) (*coupon.Coupon, error) {
	row, err := r.queries.LockCouponByShortCode(ctx, tx, sqlc.LockCouponByShortCodeParams{
		ShortCode:  shortCode,
		ConsumerID: consumerID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock coupon", err)
	}
	return converter.CouponFromRow(row), nil
}

func (r *CouponRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error {
	params := sqlc.UpdateCouponStatusParams{
		ID:     c.ID(),
		Status: string(c.Status()),
		UsedAt: pgconv.TimePtrToPgtype(c.UsedAt()),
	}
	if err := r.queries.UpdateCouponStatus(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update coupon status", err)
	}
	return nil
}

func (r *CouponRepository) CountIssuedSince(ctx context.Context, tx sqlc.DBTX, policyID uuid.UUID, since time.Time) (int, error) {
	n, err := r.queries.CountCouponsForPolicySince(ctx, tx, sqlc.CountCouponsForPolicySinceParams{
		PolicyID: policyID,
		IssuedAt: pgconv.TimeToPgtype(since),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count issued coupons", err)
	}
	return int(n), nil
}

func (r *CouponRepository) ExpireOverdue(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error) {
	n, err := r.queries.ExpireOverdueCoupons(ctx, tx, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire overdue coupons", err)
	}
	return n, nil
}

func (r *CouponRepository) AppendEvent(ctx context.Context, tx sqlc.DBTX, e *coupon.EventLog) error {
	if err := r.queries.CreateCouponEventLog(ctx, tx, converter.EventLogToCreateParams(e)); err != nil {
		return infra.WrapRepoErr("failed to write coupon event", err)
	}
	return nil
}
