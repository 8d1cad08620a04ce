package repository

import (
	"context"

	"neighbiz/internal/domain/policy"
	"neighbiz/internal/domain/store"
	"neighbiz/internal/infra"
	"neighbiz/internal/infra/repository/converter"
	sqlc "neighbiz/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type StoreWriteQueries interface {
	CreateStore(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateStoreParams) error
	GetStoreByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Stores, error)
	GetStoreByOwnerID(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) (sqlc.Stores, error)
	UpdateStore(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateStoreParams) error
}

type StoreRepository struct {
	queries StoreWriteQueries
	db      sqlc.DBTX
}

func NewStoreRepository(queries StoreWriteQueries, db sqlc.DBTX) *StoreRepository {
	return &StoreRepository{
		queries: queries,
		db:      db,
	}
}

func (r *StoreRepository) Create(ctx context.Context, tx sqlc.DBTX, s *store.Store) error {
	if err := r.queries.CreateStore(ctx, tx, converter.StoreToCreateParams(s)); err != nil {
		return infra.WrapRepoErr("failed to create store", err)
	}
	return nil
}

func (r *StoreRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*store.Store, error) {
	row, err := r.queries.GetStoreByID(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get store by id", err)
	}
	return converter.StoreFromRow(row), nil
}

func (r *StoreRepository) FindByOwnerID(ctx context.Context, tx sqlc.DBTX, ownerID uuid.UUID) (*store.Store, error) {
	row, err := r.queries.GetStoreByOwnerID(ctx, tx, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get store by owner", err)
	}
	return converter.StoreFromRow(row), nil
}

func (r *StoreRepository) Update(ctx context.Context, tx sqlc.DBTX, s *store.Store) error {
	if err := r.queries.UpdateStore(ctx, tx, converter.StoreToUpdateParams(s)); err != nil {
		return infra.WrapRepoErr("failed to update store", err)
	}
	return nil
}

type PolicyWriteQueries interface {
	CreateCouponPolicy(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCouponPolicyParams) error
	GetActivePolicyByStoreID(ctx context.Context, db sqlc.DBTX, storeID uuid.UUID) (sqlc.CouponPolicies, error)
	ExistsActivePolicyByStoreID(ctx context.Context, db sqlc.DBTX, storeID uuid.UUID) (bool, error)
	LockActivePoliciesByStoreIDs(ctx context.Context, db sqlc.DBTX, storeIds []uuid.UUID) ([]sqlc.CouponPolicies, error)
	UpdateCouponPolicy(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCouponPolicyParams) error
}

type PolicyRepository struct {
	queries PolicyWriteQueries
	db      sqlc.DBTX
}

func NewPolicyRepository(queries PolicyWriteQueries, db sqlc.DBTX) *PolicyRepository {
	return &PolicyRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PolicyRepository) Create(ctx context.Context, tx sqlc.DBTX, p *policy.CouponPolicy) error {
	if err := r.queries.CreateCouponPolicy(ctx, tx, converter.PolicyToCreateParams(p)); err != nil {
		wrapped := infra.WrapRepoErr("failed to create coupon policy", err)
		if infra.IsConstraint(wrapped, infra.ConstraintPolicyActiveStore) {
			return policy.ErrPolicyAlreadyExists
		}
		return wrapped
	}
	return nil
}

func (r *PolicyRepository) FindActiveByStoreID(ctx context.Context, tx sqlc.DBTX, storeID uuid.UUID) (*policy.CouponPolicy, error) {
	row, err := r.queries.GetActivePolicyByStoreID(ctx, tx, storeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get active policy", err)
	}
	return converter.PolicyFromRow(row), nil
}

func (r *PolicyRepository) ExistsActiveByStoreID(ctx context.Context, tx sqlc.DBTX, storeID uuid.UUID) (bool, error) {
	ok, err := r.queries.ExistsActivePolicyByStoreID(ctx, tx, storeID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check active policy", err)
	}
	return ok, nil
}

// LockActiveByStoreIDs takes the row locks in ascending store id order so two
// acceptances touching the same stores cannot deadlock. Stores without an
// active policy are absent from the result.
func (r *PolicyRepository) LockActiveByStoreIDs(ctx context.Context, tx sqlc.DBTX, storeIDs []uuid.UUID) (map[uuid.UUID]*policy.CouponPolicy, error) {
	rows, err := r.queries.LockActivePoliciesByStoreIDs(ctx, tx, storeIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock active policies", err)
	}
	out := make(map[uuid.UUID]*policy.CouponPolicy, len(rows))
	for _, row := range rows {
		out[row.StoreID] = converter.PolicyFromRow(row)
	}
	return out, nil
}

func (r *PolicyRepository) Update(ctx context.Context, tx sqlc.DBTX, p *policy.CouponPolicy) error {
	if err := r.queries.UpdateCouponPolicy(ctx, tx, converter.PolicyToUpdateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to update coupon policy", err)
	}
	return nil
}
