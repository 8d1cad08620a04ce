package readstore

import (
	"context"
	"time"

	"neighbiz/internal/infra"
	sqlc "neighbiz/internal/infra/sqlc/generated"
	"neighbiz/internal/pkg/pgconv"
	"neighbiz/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponViewQueries interface {
	ListConsumerCoupons(ctx context.Context, db sqlc.DBTX, arg sqlc.ListConsumerCouponsParams) ([]sqlc.ListConsumerCouponsRow, error)
}

type CouponReadStore struct {
	queries CouponViewQueries
	db      sqlc.DBTX
}

func NewCouponReadStore(queries CouponViewQueries, db sqlc.DBTX) *CouponReadStore {
	return &CouponReadStore{
		queries: queries,
		db:      db,
	}
}

// ListByConsumer reports overdue active coupons as expired without writing.
func (r *CouponReadStore) ListByConsumer(ctx context.Context, consumerID uuid.UUID, status *string, now time.Time) ([]*queries.CouponView, error) {
	rows, err := r.queries.ListConsumerCoupons(ctx, r.db, sqlc.ListConsumerCouponsParams{
		Now:        pgconv.TimeToPgtype(now),
		ConsumerID: consumerID,
		Status:     pgconv.StringPtrToPgtype(status),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list consumer coupons", err)
	}

	views := make([]*queries.CouponView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.CouponView{
			ID:            row.ID,
			ShortCode:     row.ShortCode,
			Status:        row.Status,
			IssuedAt:      pgconv.TimeFromPgtype(row.IssuedAt),
			UsedAt:        pgconv.TimePtrFromPgtype(row.UsedAt),
			ExpiredAt:     pgconv.TimeFromPgtype(row.ExpiredAt),
			Store:         queries.StoreSummary{ID: row.StoreID, Name: row.StoreName},
			Description:   row.PolicyDescription,
			ExpectedValue: int(row.ExpectedValue),
		})
	}
	return views, nil
}
