//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"neighbiz/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DefaultPassword is the plain password of every owner created here.
const DefaultPassword = "password123"

var (
	hashOnce    sync.Once
	defaultHash string
)

func passwordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := password.HashPassword(DefaultPassword)
		if err == nil {
			defaultHash = h
		}
	})
	require.NotEmpty(t, defaultHash, "failed to hash fixture password")
	return defaultHash
}

type OwnerFixture struct {
	OwnerID  uuid.UUID
	StoreID  uuid.UUID
	Username string
	Phone    string
}

// CreateTestOwner inserts an owner with an active store of the given category.
func CreateTestOwner(t *testing.T, db DBLike, username, phone, category string) OwnerFixture {
	t.Helper()
	ctx := context.Background()

	f := OwnerFixture{OwnerID: uuid.New(), StoreID: uuid.New(), Username: username, Phone: phone}
	_, err := db.Exec(ctx,
		"INSERT INTO owners (id, username, password_hash, name, phone) VALUES ($1, $2, $3, $4, $5)",
		f.OwnerID, username, passwordHash(t), "Owner "+username, phone)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		`INSERT INTO stores (id, owner_id, name, category, phone, address, business_hours)
		 VALUES ($1, $2, $3, $4, $5, $6, '{"mon":{"open":"09:00","close":"21:00"}}'::jsonb)`,
		f.StoreID, f.OwnerID, "Store "+username, category, phone, "1 Test-ro, Mapo-gu, Seoul")
	require.NoError(t, err)

	return f
}

// CreateTestPolicy inserts an active coupon policy for storeID.
func CreateTestPolicy(t *testing.T, db DBLike, storeID uuid.UUID, value int, duration string, monthlyLimit *int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO coupon_policies (id, store_id, description, expected_value, expected_duration, monthly_limit)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, storeID, fmt.Sprintf("%d won off", value), value, duration, monthlyLimit)
	require.NoError(t, err)
	return id
}

func CreateTestConsumer(t *testing.T, db DBLike, phone string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO consumers (id, phone) VALUES ($1, $2)", id, phone)
	require.NoError(t, err)
	return id
}

// ShiftCouponExpiry moves every coupon's expiry by d so expiry paths can be exercised without waiting.
func ShiftCouponExpiry(t *testing.T, db DBLike, d time.Duration) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE coupons SET expired_at = expired_at + make_interval(secs => $1)", d.Seconds())
	require.NoError(t, err)
}

// CountRows counts rows of table matching an optional WHERE clause.
func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	query := "SELECT COUNT(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
