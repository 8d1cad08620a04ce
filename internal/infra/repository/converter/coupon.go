package converter

import (
	"neighbiz/internal/domain/coupon"
	sqlc "neighbiz/internal/infra/sqlc/generated"
	"neighbiz/internal/pkg/pgconv"
)

func CouponToInsertParams(c *coupon.Coupon) sqlc.InsertCouponIfAbsentParams {
	return sqlc.InsertCouponIfAbsentParams{
		ID:              c.ID(),
		ConsumerID:      c.ConsumerID(),
		PolicyID:        c.PolicyID(),
		PartnershipID:   c.PartnershipID(),
		PartnershipSlug: c.PartnershipSlug(),
		ShortCode:       c.ShortCode(),
		Status:          string(c.Status()),
		IssuedOn:        pgconv.DateToPgtype(c.IssuedOn()),
		IssuedAt:        pgconv.TimeToPgtype(c.IssuedAt()),
		ExpiredAt:       pgconv.TimeToPgtype(c.ExpiredAt()),
	}
}

func CouponFromRow(row sqlc.Coupons) *coupon.Coupon {
	return coupon.ReconstructCoupon(
		row.ID,
		row.ConsumerID,
		row.PolicyID,
		row.PartnershipID,
		row.PartnershipSlug,
		row.ShortCode,
		coupon.Status(row.Status),
		pgconv.DateFromPgtype(row.IssuedOn),
		pgconv.TimeFromPgtype(row.IssuedAt),
		pgconv.TimePtrFromPgtype(row.UsedAt),
		pgconv.TimeFromPgtype(row.ExpiredAt),
	)
}

func EventLogToCreateParams(e *coupon.EventLog) sqlc.CreateCouponEventLogParams {
	return sqlc.CreateCouponEventLogParams{
		ID:         e.ID,
		CouponID:   e.CouponID,
		ConsumerID: e.ConsumerID,
		EventType:  string(e.Type),
		IpAddress:  e.Meta.IP,
		UserAgent:  e.Meta.UserAgent,
		DeviceHash: e.Meta.DeviceHash,
		CreatedAt:  pgconv.TimeToPgtype(e.CreatedAt),
	}
}
