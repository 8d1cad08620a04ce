//go:build unit

package partnership_test

import (
	"regexp"
	"testing"
	"time"

	"neighbiz/internal/domain/partnership"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var slugPattern = regexp.MustCompile(`^[0-9a-f]{20}$`)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newPartnership(t *testing.T, today time.Time, days int) (*partnership.Partnership, uuid.UUID, uuid.UUID) {
	t.Helper()
	a, b := uuid.New(), uuid.New()
	slugA, err := partnership.NewSlug()
	require.NoError(t, err)
	slugB, err := partnership.NewSlug()
	require.NoError(t, err)
	p, err := partnership.NewPartnership(uuid.New(), a, b, slugA, slugB, today, days, time.Now())
	require.NoError(t, err)
	return p, a, b
}

func TestNewPartnership(t *testing.T) {
	today := date(2025, 1, 31)

	t.Run("period derives from duration days", func(t *testing.T) {
		p, _, _ := newPartnership(t, today, 90)
		assert.Equal(t, date(2025, 2, 1), p.StartDate())
		assert.Equal(t, p.StartDate().AddDate(0, 0, 90), p.EndDate())
		assert.Equal(t, partnership.StatusActive, p.Status())
	})

	t.Run("slugs are opaque hex", func(t *testing.T) {
		p, _, _ := newPartnership(t, today, 30)
		assert.Regexp(t, slugPattern, p.SlugForA())
		assert.Regexp(t, slugPattern, p.SlugForB())
		assert.NotEqual(t, p.SlugForA(), p.SlugForB())
	})

	t.Run("slugs carry 80 random bits", func(t *testing.T) {
		slug, err := partnership.NewSlug()
		require.NoError(t, err)
		assert.Len(t, slug, partnership.SlugLength)
		assert.Regexp(t, slugPattern, slug)
	})

	t.Run("non positive days", func(t *testing.T) {
		_, err := partnership.NewPartnership(uuid.New(), uuid.New(), uuid.New(), "a", "b", today, 0, time.Now())
		assert.ErrorIs(t, err, partnership.ErrInvalidPeriod)
	})
}

func TestSides(t *testing.T) {
	p, a, b := newPartnership(t, date(2025, 1, 1), 30)

	side, ok := p.SideOf(p.SlugForA())
	require.True(t, ok)
	assert.Equal(t, partnership.SideA, side)
	assert.Equal(t, a, p.ScanningStore(side))
	assert.Equal(t, b, p.TargetStore(side))

	side, ok = p.SideOf(p.SlugForB())
	require.True(t, ok)
	assert.Equal(t, partnership.SideB, side)
	assert.Equal(t, b, p.ScanningStore(side))
	assert.Equal(t, a, p.TargetStore(side))

	_, ok = p.SideOf("0000000000")
	assert.False(t, ok)

	other, err := p.Counterparty(a)
	require.NoError(t, err)
	assert.Equal(t, b, other)
	_, err = p.Counterparty(uuid.New())
	assert.ErrorIs(t, err, partnership.ErrNotParticipant)

	slug, err := p.SlugFor(b)
	require.NoError(t, err)
	assert.Equal(t, p.SlugForB(), slug)
}

func TestEligibleForIssuance(t *testing.T) {
	today := date(2025, 1, 1)
	p, _, _ := newPartnership(t, today, 30)

	assert.False(t, p.EligibleForIssuance(today, true), "before start date")
	assert.True(t, p.EligibleForIssuance(p.StartDate(), true))
	assert.True(t, p.EligibleForIssuance(p.EndDate(), true))
	assert.False(t, p.EligibleForIssuance(p.EndDate().AddDate(0, 0, 1), true), "after end date")

	require.NoError(t, p.Extend(30, time.Now()))
	assert.Equal(t, partnership.StatusExtended, p.Status())
	assert.True(t, p.EligibleForIssuance(p.StartDate(), true), "extended allowed")
	assert.False(t, p.EligibleForIssuance(p.StartDate(), false), "extended blocked")

	require.NoError(t, p.Terminate(p.StartDate(), time.Now()))
	assert.False(t, p.EligibleForIssuance(p.StartDate(), true))
	assert.ErrorIs(t, p.Extend(30, time.Now()), partnership.ErrPartnershipClosed)
}

func TestChangeRequest(t *testing.T) {
	now := time.Now()
	p, a, b := newPartnership(t, date(2025, 1, 1), 30)

	t.Run("outsider cannot request", func(t *testing.T) {
		_, err := partnership.NewChangeRequest(p, uuid.New(), partnership.ChangeExtend, "", now)
		assert.ErrorIs(t, err, partnership.ErrNotParticipant)
	})

	t.Run("requester cannot approve own request", func(t *testing.T) {
		req, err := partnership.NewChangeRequest(p, a, partnership.ChangeExtend, "more time", now)
		require.NoError(t, err)
		assert.ErrorIs(t, req.Resolve(p, a, true, now), partnership.ErrNotCounterparty)
		assert.ErrorIs(t, req.Resolve(p, uuid.New(), true, now), partnership.ErrNotCounterparty)
	})

	t.Run("counterparty resolves once", func(t *testing.T) {
		req, err := partnership.NewChangeRequest(p, a, partnership.ChangeTerminate, "closing", now)
		require.NoError(t, err)
		require.NoError(t, req.Resolve(p, b, false, now))
		assert.Equal(t, partnership.ChangeRejected, req.Status())
		assert.NotNil(t, req.RespondedAt())
		assert.ErrorIs(t, req.Resolve(p, b, true, now), partnership.ErrChangeRequestResolved)
	})

	t.Run("invalid type", func(t *testing.T) {
		_, err := partnership.NewChangeType("pause")
		assert.ErrorIs(t, err, partnership.ErrInvalidChangeType)
	})
}
