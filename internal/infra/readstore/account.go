package readstore

import (
	"context"

	"neighbiz/internal/domain/user"
	"neighbiz/internal/infra"
	sqlc "neighbiz/internal/infra/sqlc/generated"
	"neighbiz/internal/usecase/queries"

	"github.com/google/uuid"
)

type AccountViewQueries interface {
	GetOwnerByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Owners, error)
	GetStoreByOwnerID(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) (sqlc.Stores, error)
	GetConsumerByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Consumers, error)
}

type AccountReadStore struct {
	queries AccountViewQueries
	db      sqlc.DBTX
}

func NewAccountReadStore(queries AccountViewQueries, db sqlc.DBTX) *AccountReadStore {
	return &AccountReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AccountReadStore) FindOwner(ctx context.Context, id uuid.UUID) (*queries.AccountView, error) {
	owner, err := r.queries.GetOwnerByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get owner account", err)
	}
	st, err := r.queries.GetStoreByOwnerID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get owner store", err)
	}

	return &queries.AccountView{
		ID:        owner.ID,
		Kind:      user.KindOwner.String(),
		Phone:     owner.Phone,
		Username:  &owner.Username,
		Name:      &owner.Name,
		StoreID:   &st.ID,
		StoreName: &st.Name,
		IsActive:  owner.IsActive,
	}, nil
}

func (r *AccountReadStore) FindConsumer(ctx context.Context, id uuid.UUID) (*queries.AccountView, error) {
	c, err := r.queries.GetConsumerByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get consumer account", err)
	}
	return &queries.AccountView{
		ID:       c.ID,
		Kind:     user.KindConsumer.String(),
		Phone:    c.Phone,
		IsActive: c.IsActive,
	}, nil
}
