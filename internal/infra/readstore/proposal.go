package readstore

import (
	"context"

	"neighbiz/internal/infra"
	sqlc "neighbiz/internal/infra/sqlc/generated"
	"neighbiz/internal/pkg/pgconv"
	"neighbiz/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ProposalViewQueries interface {
	GetProposalView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetProposalViewRow, error)
	ListReceivedProposals(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReceivedProposalsParams) ([]sqlc.ListReceivedProposalsRow, error)
	ListSentProposals(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSentProposalsParams) ([]sqlc.ListSentProposalsRow, error)
}

type ProposalReadStore struct {
	queries ProposalViewQueries
	db      sqlc.DBTX
}

func NewProposalReadStore(queries ProposalViewQueries, db sqlc.DBTX) *ProposalReadStore {
	return &ProposalReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ProposalReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProposalView, error) {
	row, err := r.queries.GetProposalView(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get proposal view", err)
	}
	return &queries.ProposalView{
		ID:        row.ID,
		Proposer:  queries.StoreSummary{ID: row.ProposerStoreID, Name: row.ProposerStoreName},
		Recipient: queries.StoreSummary{ID: row.RecipientStoreID, Name: row.RecipientStoreName},
		Status:    row.Status,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *ProposalReadStore) ListReceived(ctx context.Context, storeID uuid.UUID, status *string) ([]*queries.ProposalListItemView, error) {
	rows, err := r.queries.ListReceivedProposals(ctx, r.db, sqlc.ListReceivedProposalsParams{
		StoreID: storeID,
		Status:  pgconv.StringPtrToPgtype(status),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list received proposals", err)
	}

	items := make([]*queries.ProposalListItemView, 0, len(rows))
	for _, row := range rows {
		items = append(items, toProposalListItem(proposalListRow(row)))
	}
	return items, nil
}

func (r *ProposalReadStore) ListSent(ctx context.Context, storeID uuid.UUID, status *string) ([]*queries.ProposalListItemView, error) {
	rows, err := r.queries.ListSentProposals(ctx, r.db, sqlc.ListSentProposalsParams{
		StoreID: storeID,
		Status:  pgconv.StringPtrToPgtype(status),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sent proposals", err)
	}

	items := make([]*queries.ProposalListItemView, 0, len(rows))
	for _, row := range rows {
		items = append(items, toProposalListItem(proposalListRow(row)))
	}
	return items, nil
}

// proposalListRow is the shape shared by the received and sent list queries.
type proposalListRow struct {
	ID                   uuid.UUID
	Status               string
	CreatedAt            pgtype.Timestamptz
	CounterpartStoreID   uuid.UUID
	CounterpartStoreName string
	CounterpartCategory  string
	PolicyDescription    pgtype.Text
	ExpectedValue        pgtype.Int4
	ExpectedDuration     pgtype.Text
	MonthlyLimit         pgtype.Int4
}

func toProposalListItem(row proposalListRow) *queries.ProposalListItemView {
	return &queries.ProposalListItemView{
		ID:        row.ID,
		Status:    row.Status,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		Counterpart: queries.StoreSummary{
			ID:       row.CounterpartStoreID,
			Name:     row.CounterpartStoreName,
			Category: row.CounterpartCategory,
		},
		Policy: policySummaryFromNullable(row.PolicyDescription, row.ExpectedValue, row.ExpectedDuration, row.MonthlyLimit),
	}
}
