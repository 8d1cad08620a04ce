package components

import (
	"neighbiz/internal/infra/readstore"
	sqlc "neighbiz/internal/infra/sqlc/generated"
	"neighbiz/internal/infra/uow"
	"neighbiz/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Account
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AccountViewQueries)),
		),
		fx.Annotate(
			readstore.NewAccountReadStore,
			fx.As(new(queries.AccountReadStore)),
		),
		// Store
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.StoreViewQueries)),
		),
		fx.Annotate(
			readstore.NewStoreReadStore,
			fx.As(new(queries.StoreReadStore)),
		),
		// Policy
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PolicyViewQueries)),
		),
		fx.Annotate(
			readstore.NewPolicyReadStore,
			fx.As(new(queries.PolicyReadStore)),
		),
		// Proposal
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ProposalViewQueries)),
		),
		fx.Annotate(
			readstore.NewProposalReadStore,
			fx.As(new(queries.ProposalReadStore)),
		),
		// Partnership
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PartnershipViewQueries)),
		),
		fx.Annotate(
			readstore.NewPartnershipReadStore,
			fx.As(new(queries.PartnershipReadStore)),
		),
		// Coupon
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CouponViewQueries)),
		),
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponReadStore)),
		),
	),
)

// Write repositories are built per transaction by the unit of work.
var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
