package readstore

import (
	"context"

	"neighbiz/internal/domain/policy"
	"neighbiz/internal/infra"
	sqlc "neighbiz/internal/infra/sqlc/generated"
	"neighbiz/internal/pkg/pgconv"
	"neighbiz/internal/usecase/queries"

	"github.com/google/uuid"
)

type PolicyViewQueries interface {
	GetActivePolicyByStoreID(ctx context.Context, db sqlc.DBTX, storeID uuid.UUID) (sqlc.CouponPolicies, error)
}

type PolicyReadStore struct {
	queries PolicyViewQueries
	db      sqlc.DBTX
}

func NewPolicyReadStore(queries PolicyViewQueries, db sqlc.DBTX) *PolicyReadStore {
	return &PolicyReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PolicyReadStore) FindActiveByStoreID(ctx context.Context, storeID uuid.UUID) (*queries.PolicyView, error) {
	row, err := r.queries.GetActivePolicyByStoreID(ctx, r.db, storeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get active policy", err)
	}

	// days stay zero for a duration the table no longer knows
	days, _ := policy.Duration(row.ExpectedDuration).Days()

	return &queries.PolicyView{
		ID:               row.ID,
		StoreID:          row.StoreID,
		Description:      row.Description,
		ExpectedValue:    int(row.ExpectedValue),
		ExpectedDuration: row.ExpectedDuration,
		DurationDays:     days,
		MonthlyLimit:     pgconv.IntPtrFromPgtype(row.MonthlyLimit),
		IsActive:         row.IsActive,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
