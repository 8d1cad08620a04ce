package repository

import (
	"context"
	"time"

	"neighbiz/internal/domain/user"
	"neighbiz/internal/infra"
	"neighbiz/internal/infra/repository/converter"
	sqlc "neighbiz/internal/infra/sqlc/generated"
	"neighbiz/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OwnerWriteQueries interface {
	CreateOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOwnerParams) error
	GetOwnerByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Owners, error)
	GetOwnerByUsername(ctx context.Context, db sqlc.DBTX, username string) (sqlc.Owners, error)
	GetOwnerByPhone(ctx context.Context, db sqlc.DBTX, phone string) (sqlc.Owners, error)
	ExistsOwnerByUsername(ctx context.Context, db sqlc.DBTX, username string) (bool, error)
	ExistsOwnerByPhone(ctx context.Context, db sqlc.DBTX, phone string) (bool, error)
	UpdateOwnerPassword(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOwnerPasswordParams) error
}

type OwnerRepository struct {
	queries OwnerWriteQueries
	db      sqlc.DBTX
}

func NewOwnerRepository(queries OwnerWriteQueries, db sqlc.DBTX) *OwnerRepository {
	return &OwnerRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OwnerRepository) Create(ctx context.Context, tx sqlc.DBTX, o *user.Owner) error {
	if err := r.queries.CreateOwner(ctx, tx, converter.OwnerToCreateParams(o)); err != nil {
		wrapped := infra.WrapRepoErr("failed to create owner", err)
		switch {
		case infra.IsConstraint(wrapped, infra.ConstraintOwnersUsername):
			return user.ErrUsernameTaken
		case infra.IsConstraint(wrapped, infra.ConstraintOwnersPhone):
			return user.ErrPhoneTaken
		}
		return wrapped
	}
	return nil
}

func (r *OwnerRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*user.Owner, error) {
	row, err := r.queries.GetOwnerByID(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get owner by id", err)
	}
	return converter.OwnerFromRow(row), nil
}

func (r *OwnerRepository) FindByUsername(ctx context.Context, tx sqlc.DBTX, username string) (*user.Owner, error) {
	row, err := r.queries.GetOwnerByUsername(ctx, tx, username)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get owner by username", err)
	}
	return converter.OwnerFromRow(row), nil
}

func (r *OwnerRepository) FindByPhone(ctx context.Context, tx sqlc.DBTX, phone string) (*user.Owner, error) {
	row, err := r.queries.GetOwnerByPhone(ctx, tx, phone)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get owner by phone", err)
	}
	return converter.OwnerFromRow(row), nil
}

func (r *OwnerRepository) ExistsByUsername(ctx context.Context, tx sqlc.DBTX, username string) (bool, error) {
	ok, err := r.queries.ExistsOwnerByUsername(ctx, tx, username)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check username", err)
	}
	return ok, nil
}

func (r *OwnerRepository) ExistsByPhone(ctx context.Context, tx sqlc.DBTX, phone string) (bool, error) {
	ok, err := r.queries.ExistsOwnerByPhone(ctx, tx, phone)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check owner phone", err)
	}
	return ok, nil
}

func (r *OwnerRepository) UpdatePassword(ctx context.Context, tx sqlc.DBTX, o *user.Owner) error {
	params := sqlc.UpdateOwnerPasswordParams{
		ID:           o.ID(),
		PasswordHash: o.PasswordHash(),
		UpdatedAt:    pgconv.TimeToPgtype(o.UpdatedAt()),
	}
	if err := r.queries.UpdateOwnerPassword(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update owner password", err)
	}
	return nil
}

type ConsumerWriteQueries interface {
	UpsertConsumerByPhone(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertConsumerByPhoneParams) (sqlc.Consumers, error)
	GetConsumerByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Consumers, error)
}

type ConsumerRepository struct {
	queries ConsumerWriteQueries
	db      sqlc.DBTX
}

func NewConsumerRepository(queries ConsumerWriteQueries, db sqlc.DBTX) *ConsumerRepository {
	return &ConsumerRepository{
		queries: queries,
		db:      db,
	}
}

// UpsertByPhone creates the consumer on first login and stamps last_login_at.
func (r *ConsumerRepository) UpsertByPhone(ctx context.Context, tx sqlc.DBTX, phone user.Phone, now time.Time) (*user.Consumer, error) {
	row, err := r.queries.UpsertConsumerByPhone(ctx, tx, sqlc.UpsertConsumerByPhoneParams{
		ID:          uuid.New(),
		Phone:       phone.Value(),
		LastLoginAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert consumer", err)
	}
	return converter.ConsumerFromRow(row), nil
}

func (r *ConsumerRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*user.Consumer, error) {
	row, err := r.queries.GetConsumerByID(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get consumer by id", err)
	}
	return converter.ConsumerFromRow(row), nil
}
