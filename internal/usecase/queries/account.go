package queries

import (
	"context"

	"neighbiz/internal/domain/user"
	"neighbiz/internal/infra"

	"github.com/google/uuid"
)

// AccountView represents the authenticated principal's profile
type AccountView struct {
	ID        uuid.UUID  `json:"id"`
	Kind      string     `json:"kind"`
	Phone     string     `json:"phone"`
	Username  *string    `json:"username,omitempty"`
	Name      *string    `json:"name,omitempty"`
	StoreID   *uuid.UUID `json:"store_id,omitempty"`
	StoreName *string    `json:"store_name,omitempty"`
	IsActive  bool       `json:"is_active"`
}

type AccountQueries interface {
	GetCurrent(ctx context.Context, principal user.Principal) (*AccountView, error)
}

type AccountReadStore interface {
	FindOwner(ctx context.Context, id uuid.UUID) (*AccountView, error)
	FindConsumer(ctx context.Context, id uuid.UUID) (*AccountView, error)
}

type accountQueriesImpl struct {
	readStore AccountReadStore
}

func NewAccountQueries(readStore AccountReadStore) AccountQueries {
	return &accountQueriesImpl{
		readStore: readStore,
	}
}

func (q *accountQueriesImpl) GetCurrent(ctx context.Context, principal user.Principal) (*AccountView, error) {
	var (
		view     *AccountView
		err      error
		notFound error
	)
	if principal.IsOwner() {
		view, err = q.readStore.FindOwner(ctx, principal.ID())
		notFound = user.ErrOwnerNotFound
	} else {
		view, err = q.readStore.FindConsumer(ctx, principal.ID())
		notFound = user.ErrConsumerNotFound
	}
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, notFound
		}
		return nil, err
	}

	if !view.IsActive {
		return nil, user.ErrAccountInactive
	}

	return view, nil
}
