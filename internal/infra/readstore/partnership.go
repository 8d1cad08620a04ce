package readstore

import (
	"context"

	"neighbiz/internal/infra"
	sqlc "neighbiz/internal/infra/sqlc/generated"
	"neighbiz/internal/pkg/pgconv"
	"neighbiz/internal/usecase/queries"

	"github.com/google/uuid"
)

type PartnershipViewQueries interface {
	GetOngoingPartnershipForStore(ctx context.Context, db sqlc.DBTX, storeID uuid.UUID) (sqlc.Partnerships, error)
	GetPartnershipBySlug(ctx context.Context, db sqlc.DBTX, slug string) (sqlc.Partnerships, error)
	ListChangeRequestsByPartnership(ctx context.Context, db sqlc.DBTX, partnershipID uuid.UUID) ([]sqlc.PartnershipChangeRequests, error)
}

type PartnershipReadStore struct {
	queries PartnershipViewQueries
	db      sqlc.DBTX
}

func NewPartnershipReadStore(queries PartnershipViewQueries, db sqlc.DBTX) *PartnershipReadStore {
	return &PartnershipReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PartnershipReadStore) FindOngoingForStore(ctx context.Context, storeID uuid.UUID) (*queries.PartnershipRecord, error) {
	row, err := r.queries.GetOngoingPartnershipForStore(ctx, r.db, storeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get ongoing partnership", err)
	}
	return toPartnershipRecord(row), nil
}

func (r *PartnershipReadStore) FindBySlug(ctx context.Context, slug string) (*queries.PartnershipRecord, error) {
	row, err := r.queries.GetPartnershipBySlug(ctx, r.db, slug)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get partnership by slug", err)
	}
	return toPartnershipRecord(row), nil
}

func (r *PartnershipReadStore) ListChangeRequests(ctx context.Context, partnershipID uuid.UUID) ([]*queries.ChangeRequestView, error) {
	rows, err := r.queries.ListChangeRequestsByPartnership(ctx, r.db, partnershipID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list change requests", err)
	}

	views := make([]*queries.ChangeRequestView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.ChangeRequestView{
			ID:               row.ID,
			RequesterStoreID: row.RequesterStoreID,
			Type:             row.ChangeType,
			Reason:           row.Reason,
			Status:           row.Status,
			CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
			RespondedAt:      pgconv.TimePtrFromPgtype(row.RespondedAt),
		})
	}
	return views, nil
}

func toPartnershipRecord(row sqlc.Partnerships) *queries.PartnershipRecord {
	return &queries.PartnershipRecord{
		ID:         row.ID,
		ProposalID: row.ProposalID,
		StoreAID:   row.StoreAID,
		StoreBID:   row.StoreBID,
		SlugForA:   row.SlugForA,
		SlugForB:   row.SlugForB,
		StartDate:  pgconv.DateFromPgtype(row.StartDate),
		EndDate:    pgconv.DateFromPgtype(row.EndDate),
		Status:     row.Status,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
