//go:build unit

package pgconv_test

import (
	"testing"
	"time"

	"neighbiz/internal/pkg/pgconv"
	"neighbiz/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestDateConversion(t *testing.T) {
	seoul := time.FixedZone("KST", 9*60*60)
	// 00:30 in Seoul is still the previous day in UTC
	instant := time.Date(2025, 3, 10, 0, 30, 0, 0, seoul)

	pd := pgconv.DateToPgtype(instant)
	assert.True(t, pd.Valid)
	assert.Equal(t, 10, pd.Time.Day())

	back := pgconv.DateFromPgtype(pd)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), back)
}

func TestNullableConversions(t *testing.T) {
	assert.Nil(t, pgconv.IntPtrFromPgtype(pgtype.Int4{}))
	assert.Equal(t, ptr.Of(3), pgconv.IntPtrFromPgtype(pgconv.IntPtrToPgtype(ptr.Of(3))))
	assert.False(t, pgconv.IntPtrToPgtype(nil).Valid)

	assert.Nil(t, pgconv.StringPtrFromPgtype(pgconv.StringPtrToPgtype(nil)))
	assert.Equal(t, "x", *pgconv.StringPtrFromPgtype(pgconv.StringToPgtype("x")))

	id := uuid.New()
	assert.Equal(t, id, *pgconv.UUIDPtrFromPgtype(pgconv.UUIDToPgtype(id)))
	assert.Nil(t, pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(nil)))

	assert.Nil(t, pgconv.TimePtrFromPgtype(pgconv.TimePtrToPgtype(nil)))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.False(t, pgconv.IsNoRows(assert.AnError))
}
