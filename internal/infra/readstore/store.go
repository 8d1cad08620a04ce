package readstore

import (
	"context"
	"log/slog"

	"neighbiz/internal/domain/store"
	"neighbiz/internal/infra"
	sqlc "neighbiz/internal/infra/sqlc/generated"
	"neighbiz/internal/pkg/pgconv"
	"neighbiz/internal/usecase/queries"
	"neighbiz/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type StoreViewQueries interface {
	GetStoreByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Stores, error)
	GetStoreByOwnerID(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) (sqlc.Stores, error)
	GetStoreDetail(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetStoreDetailRow, error)
	SearchStoreDirectory(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchStoreDirectoryParams) ([]sqlc.SearchStoreDirectoryRow, error)
	CountStoreDirectory(ctx context.Context, db sqlc.DBTX, arg sqlc.CountStoreDirectoryParams) (int64, error)
}

type StoreReadStore struct {
	queries StoreViewQueries
	db      sqlc.DBTX
}

func NewStoreReadStore(queries StoreViewQueries, db sqlc.DBTX) *StoreReadStore {
	return &StoreReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *StoreReadStore) FindDetail(ctx context.Context, id uuid.UUID) (*queries.StoreDetailView, error) {
	row, err := r.queries.GetStoreDetail(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get store detail", err)
	}

	hours, err := store.ParseBusinessHours(row.BusinessHours)
	if err != nil {
		slog.Warn("stored business hours are invalid", "store_id", row.ID, "error", err)
		hours = store.BusinessHours{}
	}

	view := &queries.StoreDetailView{
		ID:            row.ID,
		Name:          row.Name,
		Category:      row.Category,
		Phone:         row.Phone,
		Address:       row.Address,
		Description:   pgconv.StringPtrFromPgtype(row.Description),
		ImageKey:      pgconv.StringPtrFromPgtype(row.ImageKey),
		BusinessHours: hours,
		IsActive:      row.IsActive,
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
		IsPartnered:   row.IsPartnered,
	}
	if row.PolicyID.Valid {
		view.Policy = policySummaryFromNullable(row.PolicyDescription, row.ExpectedValue, row.ExpectedDuration, row.MonthlyLimit)
	}
	return view, nil
}

func (r *StoreReadStore) FindSummary(ctx context.Context, id uuid.UUID) (*queries.StoreSummary, error) {
	row, err := r.queries.GetStoreByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get store summary", err)
	}
	return &queries.StoreSummary{
		ID:       row.ID,
		Name:     row.Name,
		Category: row.Category,
		Address:  row.Address,
	}, nil
}

// FindSnapshot serves command-side validation reads.
func (r *StoreReadStore) FindSnapshot(ctx context.Context, id uuid.UUID) (*shared.StoreSnapshot, error) {
	row, err := r.queries.GetStoreByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get store snapshot", err)
	}
	return toStoreSnapshot(row), nil
}

func (r *StoreReadStore) FindSnapshotByOwner(ctx context.Context, ownerID uuid.UUID) (*shared.StoreSnapshot, error) {
	row, err := r.queries.GetStoreByOwnerID(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get store snapshot by owner", err)
	}
	return toStoreSnapshot(row), nil
}

func (r *StoreReadStore) Search(ctx context.Context, excludeStoreID uuid.UUID, f queries.DirectoryFilter) ([]*queries.DirectoryItemView, int64, error) {
	filter := sqlc.CountStoreDirectoryParams{
		ExcludeStoreID: excludeStoreID,
		Category:       pgconv.StringPtrToPgtype(f.Category),
		Keyword:        pgconv.StringPtrToPgtype(f.Keyword),
		ValueMin:       pgconv.IntPtrToPgtype(f.ValueMin),
		ValueMax:       pgconv.IntPtrToPgtype(f.ValueMax),
		Duration:       pgconv.StringPtrToPgtype(f.Duration),
		LimitMin:       pgconv.IntPtrToPgtype(f.LimitMin),
		LimitMax:       pgconv.IntPtrToPgtype(f.LimitMax),
		IsPartnered:    toPgBool(f.IsPartnered),
	}

	total, err := r.queries.CountStoreDirectory(ctx, r.db, filter)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count store directory", err)
	}
	if total == 0 {
		return []*queries.DirectoryItemView{}, 0, nil
	}

	rows, err := r.queries.SearchStoreDirectory(ctx, r.db, sqlc.SearchStoreDirectoryParams{
		ExcludeStoreID: filter.ExcludeStoreID,
		Category:       filter.Category,
		Keyword:        filter.Keyword,
		ValueMin:       filter.ValueMin,
		ValueMax:       filter.ValueMax,
		Duration:       filter.Duration,
		LimitMin:       filter.LimitMin,
		LimitMax:       filter.LimitMax,
		IsPartnered:    filter.IsPartnered,
		SortKey:        f.Ordering,
		PageLimit:      f.Limit(),
		PageOffset:     f.Offset(),
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to search store directory", err)
	}

	items := make([]*queries.DirectoryItemView, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.DirectoryItemView{
			ID:       row.ID,
			Name:     row.Name,
			Category: row.Category,
			Address:  row.Address,
			ImageKey: pgconv.StringPtrFromPgtype(row.ImageKey),
			Policy: queries.PolicySummary{
				Description:      row.PolicyDescription,
				ExpectedValue:    int(row.ExpectedValue),
				ExpectedDuration: row.ExpectedDuration,
				MonthlyLimit:     pgconv.IntPtrFromPgtype(row.MonthlyLimit),
			},
			IsPartnered: row.IsPartnered,
			UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return items, total, nil
}

func toStoreSnapshot(row sqlc.Stores) *shared.StoreSnapshot {
	return &shared.StoreSnapshot{
		ID:       row.ID,
		OwnerID:  row.OwnerID,
		Name:     row.Name,
		IsActive: row.IsActive,
	}
}

func policySummaryFromNullable(desc pgtype.Text, value pgtype.Int4, duration pgtype.Text, limit pgtype.Int4) *queries.PolicySummary {
	if !desc.Valid {
		return nil
	}
	return &queries.PolicySummary{
		Description:      desc.String,
		ExpectedValue:    int(value.Int32),
		ExpectedDuration: duration.String,
		MonthlyLimit:     pgconv.IntPtrFromPgtype(limit),
	}
}

func toPgBool(b *bool) pgtype.Bool {
	if b == nil {
		return pgtype.Bool{}
	}
	return pgtype.Bool{Bool: *b, Valid: true}
}
