//go:build unit

package coupon_test

import (
	"regexp"
	"testing"
	"time"

	"neighbiz/internal/domain/coupon"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issue(t *testing.T, now time.Time) *coupon.Coupon {
	t.Helper()
	code, err := coupon.NewShortCode()
	require.NoError(t, err)
	return coupon.Issue(coupon.IssueParams{
		ConsumerID:      uuid.New(),
		PolicyID:        uuid.New(),
		PartnershipID:   uuid.New(),
		PartnershipSlug: "abcdef0123",
		ShortCode:       code,
		IssuedOn:        time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		Validity:        24 * time.Hour,
	}, now)
}

func TestIssue(t *testing.T) {
	now := time.Now()
	c := issue(t, now)

	assert.Equal(t, coupon.StatusActive, c.Status())
	assert.Equal(t, now.Add(24*time.Hour), c.ExpiredAt())
	assert.Regexp(t, regexp.MustCompile(`^[A-Z0-9]{8}$`), c.ShortCode())
	assert.Nil(t, c.UsedAt())
}

func TestRedeem(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("before expiry", func(t *testing.T) {
		c := issue(t, issuedAt)
		usedAt := issuedAt.Add(time.Hour)
		require.NoError(t, c.Redeem(usedAt))
		assert.Equal(t, coupon.StatusUsed, c.Status())
		assert.Equal(t, usedAt, *c.UsedAt())
		assert.ErrorIs(t, c.Redeem(usedAt), coupon.ErrCouponResolved)
	})

	t.Run("25 hours later expires", func(t *testing.T) {
		c := issue(t, issuedAt)
		err := c.Redeem(issuedAt.Add(25 * time.Hour))
		assert.ErrorIs(t, err, coupon.ErrCouponExpired)
		assert.Equal(t, coupon.StatusExpired, c.Status())
		assert.Nil(t, c.UsedAt())

		assert.ErrorIs(t, c.Redeem(issuedAt.Add(26*time.Hour)), coupon.ErrCouponResolved)
		assert.Equal(t, coupon.StatusExpired, c.Status())
	})

	t.Run("exact expiry instant is still usable", func(t *testing.T) {
		c := issue(t, issuedAt)
		require.NoError(t, c.Redeem(c.ExpiredAt()))
	})
}

func TestStatusAt(t *testing.T) {
	issuedAt := time.Now()
	c := issue(t, issuedAt)

	assert.Equal(t, coupon.StatusActive, c.StatusAt(issuedAt))
	assert.Equal(t, coupon.StatusExpired, c.StatusAt(issuedAt.Add(48*time.Hour)))
	assert.Equal(t, coupon.StatusActive, c.Status(), "read view does not mutate")
}

func TestNormalizeShortCode(t *testing.T) {
	code, err := coupon.NormalizeShortCode("ab12cd34")
	require.NoError(t, err)
	assert.Equal(t, "AB12CD34", code)

	_, err = coupon.NormalizeShortCode("AB12CD3")
	assert.ErrorIs(t, err, coupon.ErrInvalidShortCode)
	_, err = coupon.NormalizeShortCode("AB12CD3-")
	assert.ErrorIs(t, err, coupon.ErrInvalidShortCode)
}

func TestEventLogTruncatesMeta(t *testing.T) {
	c := issue(t, time.Now())
	long := make([]byte, 400)
	for i := range long {
		long[i] = 'x'
	}
	log := coupon.NewEventLog(c, coupon.EventIssued, coupon.RequestMeta{UserAgent: string(long)}, time.Now())
	assert.Len(t, log.Meta.UserAgent, 255)
	assert.Equal(t, c.ID(), log.CouponID)
	assert.Equal(t, c.ConsumerID(), log.ConsumerID)
}
