package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"neighbiz/internal/infra/readstore"
	"neighbiz/internal/infra/repository"
	sqlc "neighbiz/internal/infra/sqlc/generated"
	"neighbiz/internal/pkg/errs"
	"neighbiz/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	ownerRepo         shared.OwnerRepository
	consumerRepo      shared.ConsumerRepository
	verificationRepo  shared.VerificationRepository
	refreshTokenRepo  shared.RefreshTokenRepository
	storeRepo         shared.StoreRepository
	policyRepo        shared.PolicyRepository
	proposalRepo      shared.ProposalRepository
	partnershipRepo   shared.PartnershipRepository
	changeRequestRepo shared.ChangeRequestRepository
	couponRepo        shared.CouponRepository
	commandReads      shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Owners() shared.OwnerRepository {
	if t.ownerRepo == nil {
		t.ownerRepo = repository.NewOwnerRepository(t.uow.q, t.dbtx)
	}
	return t.ownerRepo
}

func (t *pgTx) Consumers() shared.ConsumerRepository {
	if t.consumerRepo == nil {
		t.consumerRepo = repository.NewConsumerRepository(t.uow.q, t.dbtx)
	}
	return t.consumerRepo
}

func (t *pgTx) Verifications() shared.VerificationRepository {
	if t.verificationRepo == nil {
		t.verificationRepo = repository.NewVerificationRepository(t.uow.q, t.dbtx)
	}
	return t.verificationRepo
}

func (t *pgTx) RefreshTokens() shared.RefreshTokenRepository {
	if t.refreshTokenRepo == nil {
		t.refreshTokenRepo = repository.NewRefreshTokenRepository(t.uow.q, t.dbtx)
	}
	return t.refreshTokenRepo
}

func (t *pgTx) Stores() shared.StoreRepository {
	if t.storeRepo == nil {
		t.storeRepo = repository.NewStoreRepository(t.uow.q, t.dbtx)
	}
	return t.storeRepo
}

func (t *pgTx) Policies() shared.PolicyRepository {
	if t.policyRepo == nil {
		t.policyRepo = repository.NewPolicyRepository(t.uow.q, t.dbtx)
	}
	return t.policyRepo
}

func (t *pgTx) Proposals() shared.ProposalRepository {
	if t.proposalRepo == nil {
		t.proposalRepo = repository.NewProposalRepository(t.uow.q, t.dbtx)
	}
	return t.proposalRepo
}

func (t *pgTx) Partnerships() shared.PartnershipRepository {
	if t.partnershipRepo == nil {
		t.partnershipRepo = repository.NewPartnershipRepository(t.uow.q, t.dbtx)
	}
	return t.partnershipRepo
}

func (t *pgTx) ChangeRequests() shared.ChangeRequestRepository {
	if t.changeRequestRepo == nil {
		t.changeRequestRepo = repository.NewChangeRequestRepository(t.uow.q, t.dbtx)
	}
	return t.changeRequestRepo
}

func (t *pgTx) Coupons() shared.CouponRepository {
	if t.couponRepo == nil {
		t.couponRepo = repository.NewCouponRepository(t.uow.q, t.dbtx)
	}
	return t.couponRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstore
	storeStore *readstore.StoreReadStore
}

func (r *commandReads) stores() *readstore.StoreReadStore {
	if r.storeStore == nil {
		r.storeStore = readstore.NewStoreReadStore(r.uow.q, r.dbtx)
	}
	return r.storeStore
}

func (r *commandReads) StoreByID(ctx context.Context, id uuid.UUID) (*shared.StoreSnapshot, error) {
	return r.stores().FindSnapshot(ctx, id)
}

func (r *commandReads) StoreByOwnerID(ctx context.Context, ownerID uuid.UUID) (*shared.StoreSnapshot, error) {
	return r.stores().FindSnapshotByOwner(ctx, ownerID)
}
