package shared

import (
	"context"
	"time"

	"neighbiz/internal/domain/auth"
	"neighbiz/internal/domain/coupon"
	"neighbiz/internal/domain/partnership"
	"neighbiz/internal/domain/policy"
	"neighbiz/internal/domain/proposal"
	"neighbiz/internal/domain/store"
	"neighbiz/internal/domain/user"
	sqlc "neighbiz/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Owners() OwnerRepository
	Consumers() ConsumerRepository
	Verifications() VerificationRepository
	RefreshTokens() RefreshTokenRepository
	Stores() StoreRepository
	Policies() PolicyRepository
	Proposals() ProposalRepository
	Partnerships() PartnershipRepository
	ChangeRequests() ChangeRequestRepository
	Coupons() CouponRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	StoreByID(ctx context.Context, id uuid.UUID) (*StoreSnapshot, error)
	StoreByOwnerID(ctx context.Context, ownerID uuid.UUID) (*StoreSnapshot, error)
}

type OwnerRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, o *user.Owner) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*user.Owner, error)
	FindByUsername(ctx context.Context, tx sqlc.DBTX, username string) (*user.Owner, error)
	FindByPhone(ctx context.Context, tx sqlc.DBTX, phone string) (*user.Owner, error)
	ExistsByUsername(ctx context.Context, tx sqlc.DBTX, username string) (bool, error)
	ExistsByPhone(ctx context.Context, tx sqlc.DBTX, phone string) (bool, error)
	UpdatePassword(ctx context.Context, tx sqlc.DBTX, o *user.Owner) error
}

type ConsumerRepository interface {
	UpsertByPhone(ctx context.Context, tx sqlc.DBTX, phone user.Phone, now time.Time) (*user.Consumer, error)
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*user.Consumer, error)
}

type VerificationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, v *auth.PhoneVerification) error
	LockLatestPending(ctx context.Context, tx sqlc.DBTX, phone string, purpose auth.Purpose) (*auth.PhoneVerification, error)
	LockLatestVerified(ctx context.Context, tx sqlc.DBTX, phone string, purpose auth.Purpose) (*auth.PhoneVerification, error)
	SaveAttempt(ctx context.Context, tx sqlc.DBTX, v *auth.PhoneVerification) error
	Consume(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, now time.Time) error
}

type RefreshTokenRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, t *auth.RefreshToken) error
	LockByHash(ctx context.Context, tx sqlc.DBTX, tokenHash string) (*auth.RefreshToken, error)
	Revoke(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, now time.Time) error
	RevokeAllForPrincipal(ctx context.Context, tx sqlc.DBTX, principalID uuid.UUID, now time.Time) (int64, error)
}

type StoreRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, s *store.Store) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*store.Store, error)
	FindByOwnerID(ctx context.Context, tx sqlc.DBTX, ownerID uuid.UUID) (*store.Store, error)
	Update(ctx context.Context, tx sqlc.DBTX, s *store.Store) error
}

type PolicyRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *policy.CouponPolicy) error
	FindActiveByStoreID(ctx context.Context, tx sqlc.DBTX, storeID uuid.UUID) (*policy.CouponPolicy, error)
	ExistsActiveByStoreID(ctx context.Context, tx sqlc.DBTX, storeID uuid.UUID) (bool, error)
	// LockActiveByStoreIDs locks rows in ascending store id order.
	LockActiveByStoreIDs(ctx context.Context, tx sqlc.DBTX, storeIDs []uuid.UUID) (map[uuid.UUID]*policy.CouponPolicy, error)
	Update(ctx context.Context, tx sqlc.DBTX, p *policy.CouponPolicy) error
}

type ProposalRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *proposal.Proposal) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*proposal.Proposal, error)
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*proposal.Proposal, error)
	LockPendingByProposer(ctx context.Context, tx sqlc.DBTX, proposerStoreID uuid.UUID) (*proposal.Proposal, error)
	ExistsPendingByProposer(ctx context.Context, tx sqlc.DBTX, proposerStoreID uuid.UUID) (bool, error)
	ExistsPendingTouching(ctx context.Context, tx sqlc.DBTX, storeID uuid.UUID) (bool, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, p *proposal.Proposal) error
	RejectPendingTouching(ctx context.Context, tx sqlc.DBTX, storeIDs []uuid.UUID, exceptID uuid.UUID, now time.Time) (int64, error)
}

type PartnershipRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *partnership.Partnership) error
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*partnership.Partnership, error)
	FindOngoingForStore(ctx context.Context, tx sqlc.DBTX, storeID uuid.UUID) (*partnership.Partnership, error)
	FindBySlug(ctx context.Context, tx sqlc.DBTX, slug string) (*partnership.Partnership, error)
	ExistsOngoingForStores(ctx context.Context, tx sqlc.DBTX, storeIDs []uuid.UUID) (bool, error)
	ExistsOngoingBetween(ctx context.Context, tx sqlc.DBTX, storeX, storeY uuid.UUID) (bool, error)
	SlugExists(ctx context.Context, tx sqlc.DBTX, slug string) (bool, error)
	UpdateTerm(ctx context.Context, tx sqlc.DBTX, p *partnership.Partnership) error
	EndExpired(ctx context.Context, tx sqlc.DBTX, today, now time.Time) (int64, error)
}

type ChangeRequestRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *partnership.ChangeRequest) error
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*partnership.ChangeRequest, error)
	ExistsPending(ctx context.Context, tx sqlc.DBTX, partnershipID uuid.UUID) (bool, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, r *partnership.ChangeRequest) error
}

type CouponRepository interface {
	// InsertIfAbsent reports false when a unique key already holds the row.
	InsertIfAbsent(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) (bool, error)
	FindForDay(ctx context.Context, tx sqlc.DBTX, consumerID uuid.UUID, slug string, day time.Time) (*coupon.Coupon, error)
	LockByShortCode(ctx context.Context, tx sqlc.DBTX, shortCode string, consumerID uuid.UUID) (*coupon.Coupon, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error
	CountIssuedSince(ctx context.Context, tx sqlc.DBTX, policyID uuid.UUID, since time.Time) (int, error)
	ExpireOverdue(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error)
	AppendEvent(ctx context.Context, tx sqlc.DBTX, e *coupon.EventLog) error
}
