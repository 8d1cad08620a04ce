//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"neighbiz/internal/domain/coupon"
	"neighbiz/internal/domain/partnership"
	"neighbiz/internal/domain/policy"
	"neighbiz/internal/domain/user"
	"neighbiz/internal/pkg/clock"
	"neighbiz/internal/pkg/errs"
	"neighbiz/internal/usecase/commands"
	"neighbiz/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCouponUseCase(m *txMocks, now time.Time, allowExtended bool) commands.CouponCommands {
	return commands.NewCouponUseCase(m.uow, clock.NewMockClock(now), commands.CouponSettings{
		Location:      seoul,
		Validity:      24 * time.Hour,
		AllowExtended: allowExtended,
	})
}

func TestCouponUseCase_Issue(t *testing.T) {
	ctx := context.Background()
	consumerID := uuid.New()
	principal := user.NewConsumerPrincipal(consumerID)
	meta := coupon.RequestMeta{IP: "203.0.113.7", UserAgent: "test-agent", DeviceHash: "device-1"}
	today := clock.DateIn(fixedNow, seoul)

	p := builder.NewPartnershipBuilder().BuildDomain()
	// entering through A's slug yields B's offer
	pol := builder.NewPolicyBuilder().With(func(b *builder.PolicyBuilder) { b.StoreID = p.StoreBID() }).BuildDomain()

	t.Run("success: issues a new coupon for the target store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)

		m.partnerships.EXPECT().FindBySlug(gomock.Any(), gomock.Any(), p.SlugForA()).Return(p, nil)
		m.policies.EXPECT().LockActiveByStoreIDs(gomock.Any(), gomock.Any(), []uuid.UUID{p.StoreBID()}).
			Return(map[uuid.UUID]*policy.CouponPolicy{p.StoreBID(): pol}, nil)
		m.coupons.EXPECT().FindForDay(gomock.Any(), gomock.Any(), consumerID, p.SlugForA(), today).Return(nil, notFound)
		m.coupons.EXPECT().CountIssuedSince(gomock.Any(), gomock.Any(), pol.ID(), gomock.Any()).Return(3, nil)
		m.coupons.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		m.coupons.EXPECT().AppendEvent(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, e *coupon.EventLog) error {
				assert.Equal(t, coupon.EventIssued, e.Type)
				assert.Equal(t, meta.DeviceHash, e.Meta.DeviceHash)
				return nil
			})

		result, err := newCouponUseCase(m, fixedNow, true).Issue(ctx, principal, p.SlugForA(), meta)

		require.NoError(t, err)
		assert.False(t, result.AlreadyIssued)
		assert.Equal(t, pol.ID(), result.Coupon.PolicyID())
		assert.Equal(t, p.ID(), result.Coupon.PartnershipID())
		assert.Equal(t, coupon.StatusActive, result.Coupon.Status())
		assert.Equal(t, fixedNow.Add(24*time.Hour), result.Coupon.ExpiredAt())
		assert.Len(t, result.Coupon.ShortCode(), coupon.ShortCodeLength)
	})

	t.Run("success: a second request on the same day returns the existing coupon", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		existing := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
			b.ConsumerID = consumerID
			b.PartnershipSlug = p.SlugForA()
		}).BuildDomain()

		m.partnerships.EXPECT().FindBySlug(gomock.Any(), gomock.Any(), p.SlugForA()).Return(p, nil)
		m.policies.EXPECT().LockActiveByStoreIDs(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(map[uuid.UUID]*policy.CouponPolicy{p.StoreBID(): pol}, nil)
		m.coupons.EXPECT().FindForDay(gomock.Any(), gomock.Any(), consumerID, p.SlugForA(), today).Return(existing, nil)

		result, err := newCouponUseCase(m, fixedNow, true).Issue(ctx, principal, p.SlugForA(), meta)

		require.NoError(t, err)
		assert.True(t, result.AlreadyIssued)
		assert.Equal(t, existing.ID(), result.Coupon.ID())
	})

	t.Run("success: a lost insert race returns the winner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		winner := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) { b.ConsumerID = consumerID }).BuildDomain()

		m.partnerships.EXPECT().FindBySlug(gomock.Any(), gomock.Any(), gomock.Any()).Return(p, nil)
		m.policies.EXPECT().LockActiveByStoreIDs(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(map[uuid.UUID]*policy.CouponPolicy{p.StoreBID(): pol}, nil)
		gomock.InOrder(
			m.coupons.EXPECT().FindForDay(gomock.Any(), gomock.Any(), consumerID, p.SlugForA(), today).Return(nil, notFound),
			m.coupons.EXPECT().FindForDay(gomock.Any(), gomock.Any(), consumerID, p.SlugForA(), today).Return(winner, nil),
		)
		m.coupons.EXPECT().CountIssuedSince(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
		m.coupons.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

		result, err := newCouponUseCase(m, fixedNow, true).Issue(ctx, principal, p.SlugForA(), meta)

		require.NoError(t, err)
		assert.True(t, result.AlreadyIssued)
		assert.Equal(t, winner.ID(), result.Coupon.ID())
	})

	t.Run("error: monthly limit reached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		capped := builder.NewPolicyBuilder().WithMonthlyLimit(10).
			With(func(b *builder.PolicyBuilder) { b.StoreID = p.StoreBID() }).BuildDomain()

		m.partnerships.EXPECT().FindBySlug(gomock.Any(), gomock.Any(), gomock.Any()).Return(p, nil)
		m.policies.EXPECT().LockActiveByStoreIDs(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(map[uuid.UUID]*policy.CouponPolicy{p.StoreBID(): capped}, nil)
		m.coupons.EXPECT().FindForDay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, notFound)
		m.coupons.EXPECT().CountIssuedSince(gomock.Any(), gomock.Any(), capped.ID(), clock.MonthStartIn(fixedNow, seoul)).Return(10, nil)

		_, err := newCouponUseCase(m, fixedNow, true).Issue(ctx, principal, p.SlugForA(), meta)

		assert.ErrorIs(t, err, coupon.ErrMonthlyLimitReached)
	})

	t.Run("error: unknown slug", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		m.partnerships.EXPECT().FindBySlug(gomock.Any(), gomock.Any(), "0000000000").Return(nil, notFound)

		_, err := newCouponUseCase(m, fixedNow, true).Issue(ctx, principal, "0000000000", meta)

		assert.ErrorIs(t, err, partnership.ErrInvalidOrInactivePartnership)
	})

	t.Run("error: before the partnership starts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		m.partnerships.EXPECT().FindBySlug(gomock.Any(), gomock.Any(), gomock.Any()).Return(p, nil)

		early := time.Date(2026, 3, 1, 3, 0, 0, 0, time.UTC)
		_, err := newCouponUseCase(m, early, true).Issue(ctx, principal, p.SlugForA(), meta)

		assert.ErrorIs(t, err, partnership.ErrInvalidOrInactivePartnership)
	})

	t.Run("extended partnerships follow the setting", func(t *testing.T) {
		extended := builder.NewPartnershipBuilder().
			With(func(b *builder.PartnershipBuilder) { b.Status = partnership.StatusExtended }).BuildDomain()

		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		m.partnerships.EXPECT().FindBySlug(gomock.Any(), gomock.Any(), gomock.Any()).Return(extended, nil)

		_, err := newCouponUseCase(m, fixedNow, false).Issue(ctx, principal, extended.SlugForB(), meta)
		assert.ErrorIs(t, err, partnership.ErrInvalidOrInactivePartnership)

		m2 := newTxMocks(ctrl)
		target := extended.StoreAID()
		targetPolicy := builder.NewPolicyBuilder().With(func(b *builder.PolicyBuilder) { b.StoreID = target }).BuildDomain()
		m2.partnerships.EXPECT().FindBySlug(gomock.Any(), gomock.Any(), gomock.Any()).Return(extended, nil)
		m2.policies.EXPECT().LockActiveByStoreIDs(gomock.Any(), gomock.Any(), []uuid.UUID{target}).
			Return(map[uuid.UUID]*policy.CouponPolicy{target: targetPolicy}, nil)
		m2.coupons.EXPECT().FindForDay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, notFound)
		m2.coupons.EXPECT().CountIssuedSince(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
		m2.coupons.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		m2.coupons.EXPECT().AppendEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		result, err := newCouponUseCase(m2, fixedNow, true).Issue(ctx, principal, extended.SlugForB(), meta)
		require.NoError(t, err)
		assert.Equal(t, targetPolicy.ID(), result.Coupon.PolicyID())
	})

	t.Run("error: target store has no active policy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		m.partnerships.EXPECT().FindBySlug(gomock.Any(), gomock.Any(), gomock.Any()).Return(p, nil)
		m.policies.EXPECT().LockActiveByStoreIDs(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(map[uuid.UUID]*policy.CouponPolicy{}, nil)

		_, err := newCouponUseCase(m, fixedNow, true).Issue(ctx, principal, p.SlugForA(), meta)

		assert.ErrorIs(t, err, coupon.ErrNoActivePolicy)
	})

	t.Run("error: owners cannot receive coupons", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)

		_, err := newCouponUseCase(m, fixedNow, true).Issue(ctx, user.NewOwnerPrincipal(uuid.New(), uuid.New()), p.SlugForA(), meta)

		assert.ErrorIs(t, err, user.ErrNotConsumer)
	})
}

func TestCouponUseCase_Use(t *testing.T) {
	ctx := context.Background()
	consumerID := uuid.New()
	principal := user.NewConsumerPrincipal(consumerID)
	meta := coupon.RequestMeta{IP: "203.0.113.7"}

	t.Run("success: marks an active coupon used", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		c := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) { b.ConsumerID = consumerID }).BuildDomain()
		now := c.IssuedAt().Add(time.Hour)

		m.coupons.EXPECT().LockByShortCode(gomock.Any(), gomock.Any(), "AB12CD34", consumerID).Return(c, nil)
		m.coupons.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), c).Return(nil)
		m.coupons.EXPECT().AppendEvent(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, e *coupon.EventLog) error {
				assert.Equal(t, coupon.EventUsed, e.Type)
				return nil
			})

		used, err := newCouponUseCase(m, now, true).Use(ctx, principal, "ab12cd34", meta)

		require.NoError(t, err)
		assert.Equal(t, coupon.StatusUsed, used.Status())
		require.NotNil(t, used.UsedAt())
		assert.Equal(t, now, *used.UsedAt())
	})

	t.Run("error: overdue coupon is persisted as expired and rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		c := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) { b.ConsumerID = consumerID }).BuildDomain()
		now := c.ExpiredAt().Add(time.Minute)

		m.coupons.EXPECT().LockByShortCode(gomock.Any(), gomock.Any(), gomock.Any(), consumerID).Return(c, nil)
		m.coupons.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), c).
			DoAndReturn(func(_ context.Context, _ any, saved *coupon.Coupon) error {
				assert.Equal(t, coupon.StatusExpired, saved.Status())
				return nil
			})
		m.coupons.EXPECT().AppendEvent(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, e *coupon.EventLog) error {
				assert.Equal(t, coupon.EventExpired, e.Type)
				return nil
			})

		_, err := newCouponUseCase(m, now, true).Use(ctx, principal, "AB12CD34", meta)

		assert.ErrorIs(t, err, coupon.ErrCouponExpired)
	})

	t.Run("error: already used", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		usedAt := time.Date(2026, 3, 10, 4, 0, 0, 0, time.UTC)
		c := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
			b.ConsumerID = consumerID
			b.Status = coupon.StatusUsed
			b.UsedAt = &usedAt
		}).BuildDomain()

		m.coupons.EXPECT().LockByShortCode(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(c, nil)

		_, err := newCouponUseCase(m, usedAt.Add(time.Hour), true).Use(ctx, principal, "AB12CD34", meta)

		assert.ErrorIs(t, err, coupon.ErrCouponResolved)
	})

	t.Run("error: another consumer's code is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		m.coupons.EXPECT().LockByShortCode(gomock.Any(), gomock.Any(), gomock.Any(), consumerID).Return(nil, notFound)

		_, err := newCouponUseCase(m, fixedNow, true).Use(ctx, principal, "ZZ99ZZ99", meta)

		assert.ErrorIs(t, err, coupon.ErrCouponNotFound)
	})

	t.Run("error: malformed short code is rejected before any lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)

		_, err := newCouponUseCase(m, fixedNow, true).Use(ctx, principal, "AB-12", meta)

		assert.ErrorIs(t, err, coupon.ErrInvalidShortCode)
	})

	t.Run("error: database failure is not classified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		m.coupons.EXPECT().LockByShortCode(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errDB)

		_, err := newCouponUseCase(m, fixedNow, true).Use(ctx, principal, "AB12CD34", meta)

		require.Error(t, err)
		_, classified := errs.Classify(err)
		assert.False(t, classified)
	})
}
