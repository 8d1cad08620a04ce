package repository

import (
	"context"
	"time"

	"neighbiz/internal/domain/partnership"
	"neighbiz/internal/infra"
	"neighbiz/internal/infra/repository/converter"
	sqlc "neighbiz/internal/infra/sqlc/generated"
	"neighbiz/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PartnershipWriteQueries interface {
	CreatePartnership(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePartnershipParams) error
	LockPartnershipByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Partnerships, error)
	GetOngoingPartnershipForStore(ctx context.Context, db sqlc.DBTX, storeID uuid.UUID) (sqlc.Partnerships, error)
	GetPartnershipBySlug(ctx context.Context, db sqlc.DBTX, slug string) (sqlc.Partnerships, error)
	ExistsOngoingPartnershipForStores(ctx context.Context, db sqlc.DBTX, storeIds []uuid.UUID) (bool, error)
	ExistsOngoingPartnershipBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.ExistsOngoingPartnershipBetweenParams) (bool, error)
	SlugExists(ctx context.Context, db sqlc.DBTX, slug string) (bool, error)
	UpdatePartnershipTerm(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePartnershipTermParams) error
	EndExpiredPartnerships(ctx context.Context, db sqlc.DBTX, arg sqlc.EndExpiredPartnershipsParams) (int64, error)
}

type PartnershipRepository struct {
	queries PartnershipWriteQueries
	db      sqlc.DBTX
}

func NewPartnershipRepository(queries PartnershipWriteQueries, db sqlc.DBTX) *PartnershipRepository {
	return &PartnershipRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PartnershipRepository) Create(ctx context.Context, tx sqlc.DBTX, p *partnership.Partnership) error {
	if err := r.queries.CreatePartnership(ctx, tx, converter.PartnershipToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create partnership", err)
	}
	return nil
}

func (r *PartnershipRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*partnership.Partnership, error) {
	row, err := r.queries.LockPartnershipByID(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock partnership", err)
	}
	return converter.PartnershipFromRow(row), nil
}

func (r *PartnershipRepository) FindOngoingForStore(ctx context.Context, tx sqlc.DBTX, storeID uuid.UUID) (*partnership.Partnership, error) {
	row, err := r.queries.GetOngoingPartnershipForStore(ctx, tx, storeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get ongoing partnership", err)
	}
	return converter.PartnershipFromRow(row), nil
}

func (r *PartnershipRepository) FindBySlug(ctx context.Context, tx sqlc.DBTX, slug string) (*partnership.Partnership, error) {
	row, err := r.queries.GetPartnershipBySlug(ctx, tx, slug)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get partnership by slug", err)
	}
	return converter.PartnershipFromRow(row), nil
}

func (r *PartnershipRepository) ExistsOngoingForStores(ctx context.Context, tx sqlc.DBTX, storeIDs []uuid.UUID) (bool, error) {
	ok, err := r.queries.ExistsOngoingPartnershipForStores(ctx, tx, storeIDs)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check ongoing partnerships", err)
	}
	return ok, nil
}

func (r *PartnershipRepository) ExistsOngoingBetween(ctx context.Context, tx sqlc.DBTX, storeX, storeY uuid.UUID) (bool, error) {
	ok, err := r.queries.ExistsOngoingPartnershipBetween(ctx, tx, sqlc.ExistsOngoingPartnershipBetweenParams{
		StoreX: storeX,
		StoreY: storeY,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check partnership between stores", err)
	}
	return ok, nil
}

func (r *PartnershipRepository) SlugExists(ctx context.Context, tx sqlc.DBTX, slug string) (bool, error) {
	ok, err := r.queries.SlugExists(ctx, tx, slug)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check slug", err)
	}
	return ok, nil
}

func (r *PartnershipRepository) UpdateTerm(ctx context.Context, tx sqlc.DBTX, p *partnership.Partnership) error {
	params := sqlc.UpdatePartnershipTermParams{
		ID:        p.ID(),
		EndDate:   pgconv.DateToPgtype(p.EndDate()),
		Status:    string(p.Status()),
		UpdatedAt: pgconv.TimeToPgtype(p.UpdatedAt()),
	}
	if err := r.queries.UpdatePartnershipTerm(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update partnership term", err)
	}
	return nil
}

// EndExpired closes every running partnership whose end date is before today.
func (r *PartnershipRepository) EndExpired(ctx context.Context, tx sqlc.DBTX, today, now time.Time) (int64, error) {
	n, err := r.queries.EndExpiredPartnerships(ctx, tx, sqlc.EndExpiredPartnershipsParams{
		EndDate:   pgconv.DateToPgtype(today),
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to end expired partnerships", err)
	}
	return n, nil
}

type ChangeRequestWriteQueries interface {
	CreateChangeRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateChangeRequestParams) error
	LockChangeRequestByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.PartnershipChangeRequests, error)
	ExistsPendingChangeRequest(ctx context.Context, db sqlc.DBTX, partnershipID uuid.UUID) (bool, error)
	UpdateChangeRequestStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateChangeRequestStatusParams) error
}

type ChangeRequestRepository struct {
	queries ChangeRequestWriteQueries
	db      sqlc.DBTX
}

func NewChangeRequestRepository(queries ChangeRequestWriteQueries, db sqlc.DBTX) *ChangeRequestRepository {
	return &ChangeRequestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ChangeRequestRepository) Create(ctx context.Context, tx sqlc.DBTX, cr *partnership.ChangeRequest) error {
	if err := r.queries.CreateChangeRequest(ctx, tx, converter.ChangeRequestToCreateParams(cr)); err != nil {
		wrapped := infra.WrapRepoErr("failed to create change request", err)
		if infra.IsConstraint(wrapped, infra.ConstraintChangeRequestsPending) {
			return partnership.ErrChangeRequestPending
		}
		return wrapped
	}
	return nil
}

func (r *ChangeRequestRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*partnership.ChangeRequest, error) {
	row, err := r.queries.LockChangeRequestByID(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock change request", err)
	}
	return converter.ChangeRequestFromRow(row), nil
}

func (r *ChangeRequestRepository) ExistsPending(ctx context.Context, tx sqlc.DBTX, partnershipID uuid.UUID) (bool, error) {
	ok, err := r.queries.ExistsPendingChangeRequest(ctx, tx, partnershipID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check pending change request", err)
	}
	return ok, nil
}

func (r *ChangeRequestRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, cr *partnership.ChangeRequest) error {
	params := sqlc.UpdateChangeRequestStatusParams{
		ID:          cr.ID(),
		Status:      string(cr.Status()),
		RespondedAt: pgconv.TimePtrToPgtype(cr.RespondedAt()),
	}
	if err := r.queries.UpdateChangeRequestStatus(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update change request", err)
	}
	return nil
}
