package response

import (
	"time"

	"neighbiz/internal/domain/coupon"
	"neighbiz/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponResponse struct {
	ID            uuid.UUID            `json:"id"`
	ShortCode     string               `json:"short_code"`
	Status        string               `json:"status"`
	IssuedAt      time.Time            `json:"issued_at"`
	UsedAt        *time.Time           `json:"used_at,omitempty"`
	ExpiredAt     time.Time            `json:"expired_at"`
	Store         queries.StoreSummary `json:"store"`
	Description   string               `json:"description"`
	ExpectedValue int                  `json:"expected_value"`
}

func FromCouponList(items []*queries.CouponView) []*CouponResponse {
	return copyAll[CouponResponse](items)
}

type IssuedCouponResponse struct {
	ID            uuid.UUID `json:"id"`
	ShortCode     string    `json:"short_code"`
	Status        string    `json:"status"`
	IssuedAt      time.Time `json:"issued_at"`
	ExpiredAt     time.Time `json:"expired_at"`
	AlreadyIssued bool      `json:"already_issued"`
}

func FromIssuedCoupon(c *coupon.Coupon, alreadyIssued bool, now time.Time) *IssuedCouponResponse {
	return &IssuedCouponResponse{
		ID:            c.ID(),
		ShortCode:     c.ShortCode(),
		Status:        string(c.StatusAt(now)),
		IssuedAt:      c.IssuedAt(),
		ExpiredAt:     c.ExpiredAt(),
		AlreadyIssued: alreadyIssued,
	}
}

type UsedCouponResponse struct {
	ID        uuid.UUID  `json:"id"`
	ShortCode string     `json:"short_code"`
	Status    string     `json:"status"`
	UsedAt    *time.Time `json:"used_at"`
}

func FromUsedCoupon(c *coupon.Coupon) *UsedCouponResponse {
	return &UsedCouponResponse{
		ID:        c.ID(),
		ShortCode: c.ShortCode(),
		Status:    string(c.Status()),
		UsedAt:    c.UsedAt(),
	}
}
