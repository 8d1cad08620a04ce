package queries

import (
	"context"

	"neighbiz/internal/domain/policy"
	"neighbiz/internal/domain/user"
	"neighbiz/internal/infra"

	"github.com/google/uuid"
)

type PolicyQueries interface {
	GetMine(ctx context.Context, principal user.Principal) (*PolicyView, error)
}

type PolicyReadStore interface {
	FindActiveByStoreID(ctx context.Context, storeID uuid.UUID) (*PolicyView, error)
}

type policyQueriesImpl struct {
	readStore PolicyReadStore
}

func NewPolicyQueries(readStore PolicyReadStore) PolicyQueries {
	return &policyQueriesImpl{
		readStore: readStore,
	}
}

func (q *policyQueriesImpl) GetMine(ctx context.Context, principal user.Principal) (*PolicyView, error) {
	storeID, err := principal.RequireOwner()
	if err != nil {
		return nil, err
	}
	view, err := q.readStore.FindActiveByStoreID(ctx, storeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, policy.ErrPolicyNotFound
		}
		return nil, err
	}
	return view, nil
}
