package queries

import (
	"context"
	"time"

	"neighbiz/internal/domain/coupon"
	"neighbiz/internal/domain/user"
	"neighbiz/internal/pkg/clock"

	"github.com/google/uuid"
)

// CouponView is a consumer's coupon with the lazy expiry already applied to Status
type CouponView struct {
	ID            uuid.UUID    `json:"id"`
	ShortCode     string       `json:"short_code"`
	Status        string       `json:"status"`
	IssuedAt      time.Time    `json:"issued_at"`
	UsedAt        *time.Time   `json:"used_at,omitempty"`
	ExpiredAt     time.Time    `json:"expired_at"`
	Store         StoreSummary `json:"store"`
	Description   string       `json:"description"`
	ExpectedValue int          `json:"expected_value"`
}

type CouponQueries interface {
	ListMine(ctx context.Context, principal user.Principal, status *string) ([]*CouponView, error)
}

type CouponReadStore interface {
	ListByConsumer(ctx context.Context, consumerID uuid.UUID, status *string, now time.Time) ([]*CouponView, error)
}

type couponQueriesImpl struct {
	readStore CouponReadStore
	clock     clock.Clock
}

func NewCouponQueries(readStore CouponReadStore, clk clock.Clock) CouponQueries {
	return &couponQueriesImpl{
		readStore: readStore,
		clock:     clk,
	}
}

func (q *couponQueriesImpl) ListMine(ctx context.Context, principal user.Principal, status *string) ([]*CouponView, error) {
	consumerID, err := principal.RequireConsumer()
	if err != nil {
		return nil, err
	}
	if status != nil {
		if _, err := coupon.NewStatus(*status); err != nil {
			return nil, err
		}
	}
	return q.readStore.ListByConsumer(ctx, consumerID, status, q.clock.Now())
}
