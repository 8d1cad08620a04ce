package queries

import (
	"context"
	"time"

	"neighbiz/internal/domain/proposal"
	"neighbiz/internal/domain/user"
	"neighbiz/internal/infra"

	"github.com/google/uuid"
)

// ProposalView represents a single proposal seen by one of its participants
type ProposalView struct {
	ID        uuid.UUID    `json:"id"`
	Proposer  StoreSummary `json:"proposer"`
	Recipient StoreSummary `json:"recipient"`
	Status    string       `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// ProposalListItemView shows the other store and its offer
type ProposalListItemView struct {
	ID          uuid.UUID      `json:"id"`
	Status      string         `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	Counterpart StoreSummary   `json:"counterpart"`
	Policy      *PolicySummary `json:"policy,omitempty"`
}

type ProposalQueries interface {
	ListReceived(ctx context.Context, principal user.Principal, status *string) ([]*ProposalListItemView, error)
	ListSent(ctx context.Context, principal user.Principal, status *string) ([]*ProposalListItemView, error)
	Get(ctx context.Context, principal user.Principal, id uuid.UUID) (*ProposalView, error)
}

type ProposalReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProposalView, error)
	ListReceived(ctx context.Context, storeID uuid.UUID, status *string) ([]*ProposalListItemView, error)
	ListSent(ctx context.Context, storeID uuid.UUID, status *string) ([]*ProposalListItemView, error)
}

type proposalQueriesImpl struct {
	readStore ProposalReadStore
}

func NewProposalQueries(readStore ProposalReadStore) ProposalQueries {
	return &proposalQueriesImpl{
		readStore: readStore,
	}
}

func (q *proposalQueriesImpl) ListReceived(ctx context.Context, principal user.Principal, status *string) ([]*ProposalListItemView, error) {
	storeID, err := principal.RequireOwner()
	if err != nil {
		return nil, err
	}
	if err := validateProposalStatus(status); err != nil {
		return nil, err
	}
	return q.readStore.ListReceived(ctx, storeID, status)
}

func (q *proposalQueriesImpl) ListSent(ctx context.Context, principal user.Principal, status *string) ([]*ProposalListItemView, error) {
	storeID, err := principal.RequireOwner()
	if err != nil {
		return nil, err
	}
	if err := validateProposalStatus(status); err != nil {
		return nil, err
	}
	return q.readStore.ListSent(ctx, storeID, status)
}

func (q *proposalQueriesImpl) Get(ctx context.Context, principal user.Principal, id uuid.UUID) (*ProposalView, error) {
	storeID, err := principal.RequireOwner()
	if err != nil {
		return nil, err
	}
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, proposal.ErrProposalNotFound
		}
		return nil, err
	}
	if view.Proposer.ID != storeID && view.Recipient.ID != storeID {
		return nil, proposal.ErrNotParticipant
	}
	return view, nil
}

func validateProposalStatus(status *string) error {
	if status == nil {
		return nil
	}
	_, err := proposal.NewStatus(*status)
	return err
}
