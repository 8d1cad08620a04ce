//go:build unit

package queries_test

import (
	"context"
	"testing"

	"neighbiz/internal/domain/coupon"
	"neighbiz/internal/domain/policy"
	"neighbiz/internal/domain/proposal"
	"neighbiz/internal/domain/user"
	"neighbiz/internal/pkg/clock"
	"neighbiz/internal/usecase/queries"
	"neighbiz/tests/common/builder"
	queriesmock "neighbiz/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAccountQueries_GetCurrent(t *testing.T) {
	ctx := context.Background()

	t.Run("success: owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockAccountReadStore(ctrl)
		principal := user.NewOwnerPrincipal(uuid.New(), uuid.New())
		view := &queries.AccountView{ID: principal.ID(), Kind: "owner", Username: ptr("baker01"), IsActive: true}
		rs.EXPECT().FindOwner(gomock.Any(), principal.ID()).Return(view, nil)

		got, err := queries.NewAccountQueries(rs).GetCurrent(ctx, principal)

		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("success: consumer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockAccountReadStore(ctrl)
		principal := user.NewConsumerPrincipal(uuid.New())
		rs.EXPECT().FindConsumer(gomock.Any(), principal.ID()).
			Return(&queries.AccountView{ID: principal.ID(), Kind: "consumer", IsActive: true}, nil)

		got, err := queries.NewAccountQueries(rs).GetCurrent(ctx, principal)

		require.NoError(t, err)
		assert.Equal(t, "consumer", got.Kind)
	})

	t.Run("error: owner deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockAccountReadStore(ctrl)
		rs.EXPECT().FindOwner(gomock.Any(), gomock.Any()).Return(nil, notFound)

		_, err := queries.NewAccountQueries(rs).GetCurrent(ctx, user.NewOwnerPrincipal(uuid.New(), uuid.New()))

		assert.ErrorIs(t, err, user.ErrOwnerNotFound)
	})

	t.Run("error: consumer deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockAccountReadStore(ctrl)
		rs.EXPECT().FindConsumer(gomock.Any(), gomock.Any()).Return(nil, notFound)

		_, err := queries.NewAccountQueries(rs).GetCurrent(ctx, user.NewConsumerPrincipal(uuid.New()))

		assert.ErrorIs(t, err, user.ErrConsumerNotFound)
	})

	t.Run("error: deactivated account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockAccountReadStore(ctrl)
		rs.EXPECT().FindConsumer(gomock.Any(), gomock.Any()).Return(&queries.AccountView{IsActive: false}, nil)

		_, err := queries.NewAccountQueries(rs).GetCurrent(ctx, user.NewConsumerPrincipal(uuid.New()))

		assert.ErrorIs(t, err, user.ErrAccountInactive)
	})
}

func TestPolicyQueries_GetMine(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockPolicyReadStore(ctrl)
		view := builder.NewPolicyBuilder().WithMonthlyLimit(50).BuildView()
		rs.EXPECT().FindActiveByStoreID(gomock.Any(), view.StoreID).Return(view, nil)

		got, err := queries.NewPolicyQueries(rs).GetMine(ctx, user.NewOwnerPrincipal(uuid.New(), view.StoreID))

		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("error: no active policy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockPolicyReadStore(ctrl)
		rs.EXPECT().FindActiveByStoreID(gomock.Any(), gomock.Any()).Return(nil, notFound)

		_, err := queries.NewPolicyQueries(rs).GetMine(ctx, user.NewOwnerPrincipal(uuid.New(), uuid.New()))

		assert.ErrorIs(t, err, policy.ErrPolicyNotFound)
	})
}

func TestProposalQueries(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New()
	owner := user.NewOwnerPrincipal(uuid.New(), storeID)

	t.Run("ListReceived: passes status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockProposalReadStore(ctrl)
		items := []*queries.ProposalListItemView{{ID: uuid.New(), Status: "pending"}}
		rs.EXPECT().ListReceived(gomock.Any(), storeID, ptr("pending")).Return(items, nil)

		got, err := queries.NewProposalQueries(rs).ListReceived(ctx, owner, ptr("pending"))

		require.NoError(t, err)
		assert.Equal(t, items, got)
	})

	t.Run("ListSent: no filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockProposalReadStore(ctrl)
		rs.EXPECT().ListSent(gomock.Any(), storeID, gomock.Nil()).Return(nil, nil)

		_, err := queries.NewProposalQueries(rs).ListSent(ctx, owner, nil)

		require.NoError(t, err)
	})

	t.Run("ListSent: unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockProposalReadStore(ctrl)

		_, err := queries.NewProposalQueries(rs).ListSent(ctx, owner, ptr("archived"))

		assert.ErrorIs(t, err, proposal.ErrInvalidStatus)
	})

	t.Run("Get: participant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockProposalReadStore(ctrl)
		view := &queries.ProposalView{
			ID:        uuid.New(),
			Proposer:  queries.StoreSummary{ID: uuid.New()},
			Recipient: queries.StoreSummary{ID: storeID},
			Status:    "pending",
		}
		rs.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := queries.NewProposalQueries(rs).Get(ctx, owner, view.ID)

		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("Get: outsider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockProposalReadStore(ctrl)
		view := &queries.ProposalView{
			ID:        uuid.New(),
			Proposer:  queries.StoreSummary{ID: uuid.New()},
			Recipient: queries.StoreSummary{ID: uuid.New()},
		}
		rs.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := queries.NewProposalQueries(rs).Get(ctx, owner, view.ID)

		assert.ErrorIs(t, err, proposal.ErrNotParticipant)
	})

	t.Run("Get: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockProposalReadStore(ctrl)
		rs.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, notFound)

		_, err := queries.NewProposalQueries(rs).Get(ctx, owner, uuid.New())

		assert.ErrorIs(t, err, proposal.ErrProposalNotFound)
	})
}

func TestCouponQueries_ListMine(t *testing.T) {
	ctx := context.Background()
	consumer := user.NewConsumerPrincipal(uuid.New())

	t.Run("success: evaluates expiry at the current instant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockCouponReadStore(ctrl)
		items := []*queries.CouponView{{ID: uuid.New(), ShortCode: "AB12CD34", Status: "active"}}
		rs.EXPECT().ListByConsumer(gomock.Any(), consumer.ID(), ptr("active"), fixedNow).Return(items, nil)

		got, err := queries.NewCouponQueries(rs, clock.NewMockClock(fixedNow)).ListMine(ctx, consumer, ptr("active"))

		require.NoError(t, err)
		assert.Equal(t, items, got)
	})

	t.Run("error: unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockCouponReadStore(ctrl)

		_, err := queries.NewCouponQueries(rs, clock.NewMockClock(fixedNow)).ListMine(ctx, consumer, ptr("void"))

		assert.ErrorIs(t, err, coupon.ErrInvalidStatus)
	})

	t.Run("error: owner caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rs := queriesmock.NewMockCouponReadStore(ctrl)

		_, err := queries.NewCouponQueries(rs, clock.NewMockClock(fixedNow)).
			ListMine(ctx, user.NewOwnerPrincipal(uuid.New(), uuid.New()), nil)

		assert.ErrorIs(t, err, user.ErrNotConsumer)
	})
}
