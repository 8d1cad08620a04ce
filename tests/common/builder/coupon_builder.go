//go:build unit || e2e

package builder

import (
	"time"

	"neighbiz/internal/domain/coupon"

	"github.com/google/uuid"
)

type CouponBuilder struct {
	ID              uuid.UUID
	ConsumerID      uuid.UUID
	PolicyID        uuid.UUID
	PartnershipID   uuid.UUID
	PartnershipSlug string
	ShortCode       string
	Status          coupon.Status
	IssuedAt        time.Time
	UsedAt          *time.Time
	Validity        time.Duration
}

func NewCouponBuilder() *CouponBuilder {
	return &CouponBuilder{
		ID:              uuid.New(),
		ConsumerID:      uuid.New(),
		PolicyID:        uuid.New(),
		PartnershipID:   uuid.New(),
		PartnershipSlug: "a1b2c3d4e5",
		ShortCode:       "AB12CD34",
		Status:          coupon.StatusActive,
		IssuedAt:        time.Date(2026, 3, 10, 3, 0, 0, 0, time.UTC),
		Validity:        24 * time.Hour,
	}
}

func (c *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(c)
	return c
}

func (c *CouponBuilder) BuildDomain() *coupon.Coupon {
	issuedOn := time.Date(c.IssuedAt.Year(), c.IssuedAt.Month(), c.IssuedAt.Day(), 0, 0, 0, 0, time.UTC)
	return coupon.ReconstructCoupon(c.ID, c.ConsumerID, c.PolicyID, c.PartnershipID, c.PartnershipSlug,
		c.ShortCode, c.Status, issuedOn, c.IssuedAt, c.UsedAt, c.IssuedAt.Add(c.Validity))
}
