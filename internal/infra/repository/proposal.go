package repository

import (
	"context"
	"time"

	"neighbiz/internal/domain/proposal"
	"neighbiz/internal/infra"
	"neighbiz/internal/infra/repository/converter"
	sqlc "neighbiz/internal/infra/sqlc/generated"
	"neighbiz/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ProposalWriteQueries interface {
	CreateProposal(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateProposalParams) error
	GetProposalByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Proposals, error)
	LockProposalByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Proposals, error)
	LockPendingProposalByProposer(ctx context.Context, db sqlc.DBTX, proposerStoreID uuid.UUID) (sqlc.Proposals, error)
	ExistsPendingProposalByProposer(ctx context.Context, db sqlc.DBTX, proposerStoreID uuid.UUID) (bool, error)
	ExistsPendingProposalTouchingStore(ctx context.Context, db sqlc.DBTX, storeID uuid.UUID) (bool, error)
	UpdateProposalStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateProposalStatusParams) error
	RejectPendingProposalsTouchingStores(ctx context.Context, db sqlc.DBTX, arg sqlc.RejectPendingProposalsTouchingStoresParams) (int64, error)
}

type ProposalRepository struct {
	queries ProposalWriteQueries
	db      sqlc.DBTX
}

func NewProposalRepository(queries ProposalWriteQueries, db sqlc.DBTX) *ProposalRepository {
	return &ProposalRepository{
		queries: queries,
		db:      db,
	}
}

// Create maps a hit on the pending-per-proposer index to ErrProposalInFlight;
// the index closes the race between two concurrent creates.
func (r *ProposalRepository) Create(ctx context.Context, tx sqlc.DBTX, p *proposal.Proposal) error {
	if err := r.queries.CreateProposal(ctx, tx, converter.ProposalToCreateParams(p)); err != nil {
		wrapped := infra.WrapRepoErr("failed to create proposal", err)
		if infra.IsConstraint(wrapped, infra.ConstraintProposalsPending) {
			return proposal.ErrProposalInFlight
		}
		return wrapped
	}
	return nil
}

func (r *ProposalRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*proposal.Proposal, error) {
	row, err := r.queries.GetProposalByID(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get proposal", err)
	}
	return converter.ProposalFromRow(row), nil
}

func (r *ProposalRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*proposal.Proposal, error) {
	row, err := r.queries.LockProposalByID(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock proposal", err)
	}
	return converter.ProposalFromRow(row), nil
}

func (r *ProposalRepository) LockPendingByProposer(ctx context.Context, tx sqlc.DBTX, proposerStoreID uuid.UUID) (*proposal.Proposal, error) {
	row, err := r.queries.LockPendingProposalByProposer(ctx, tx, proposerStoreID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock pending proposal", err)
	}
	return converter.ProposalFromRow(row), nil
}

func (r *ProposalRepository) ExistsPendingByProposer(ctx context.Context, tx sqlc.DBTX, proposerStoreID uuid.UUID) (bool, error) {
	ok, err := r.queries.ExistsPendingProposalByProposer(ctx, tx, proposerStoreID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check pending proposal", err)
	}
	return ok, nil
}

func (r *ProposalRepository) ExistsPendingTouching(ctx context.Context, tx sqlc.DBTX, storeID uuid.UUID) (bool, error) {
	ok, err := r.queries.ExistsPendingProposalTouchingStore(ctx, tx, storeID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check proposals touching store", err)
	}
	return ok, nil
}

func (r *ProposalRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, p *proposal.Proposal) error {
	params := sqlc.UpdateProposalStatusParams{
		ID:        p.ID(),
		Status:    string(p.Status()),
		UpdatedAt: pgconv.TimeToPgtype(p.UpdatedAt()),
	}
	if err := r.queries.UpdateProposalStatus(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update proposal status", err)
	}
	return nil
}

func (r *ProposalRepository) RejectPendingTouching(ctx context.Context, tx sqlc.DBTX, storeIDs []uuid.UUID, exceptID uuid.UUID, now time.Time) (int64, error) {
	n, err := r.queries.RejectPendingProposalsTouchingStores(ctx, tx, sqlc.RejectPendingProposalsTouchingStoresParams{
		UpdatedAt: pgconv.TimeToPgtype(now),
		ExceptID:  exceptID,
		StoreIds:  storeIDs,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to reject pending proposals", err)
	}
	return n, nil
}
