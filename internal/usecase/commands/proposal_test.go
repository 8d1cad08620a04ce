//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"neighbiz/internal/domain/partnership"
	"neighbiz/internal/domain/policy"
	"neighbiz/internal/domain/proposal"
	"neighbiz/internal/domain/user"
	"neighbiz/internal/pkg/clock"
	"neighbiz/internal/usecase/commands"
	"neighbiz/internal/usecase/shared"
	"neighbiz/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newProposalUseCase(m *txMocks) commands.ProposalCommands {
	return commands.NewProposalUseCase(m.uow, clock.NewMockClock(fixedNow), seoul)
}

func TestProposalUseCase_CreateProposal(t *testing.T) {
	ctx := context.Background()
	proposerStore := uuid.New()
	recipientStore := uuid.New()
	principal := user.NewOwnerPrincipal(uuid.New(), proposerStore)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)

		m.reads.EXPECT().StoreByID(gomock.Any(), recipientStore).
			Return(&shared.StoreSnapshot{ID: recipientStore, IsActive: true}, nil)
		m.partnerships.EXPECT().ExistsOngoingBetween(gomock.Any(), gomock.Any(), proposerStore, recipientStore).Return(false, nil)
		m.proposals.EXPECT().ExistsPendingByProposer(gomock.Any(), gomock.Any(), proposerStore).Return(false, nil)
		m.policies.EXPECT().ExistsActiveByStoreID(gomock.Any(), gomock.Any(), proposerStore).Return(true, nil)
		m.proposals.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, p *proposal.Proposal) error {
				assert.Equal(t, proposal.StatusPending, p.Status())
				assert.Equal(t, recipientStore, p.RecipientStoreID())
				return nil
			})

		id, err := newProposalUseCase(m).CreateProposal(ctx, principal, recipientStore)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
	})

	tests := []struct {
		name    string
		setup   func(m *txMocks)
		wantErr error
	}{
		{
			name: "error: recipient missing",
			setup: func(m *txMocks) {
				m.reads.EXPECT().StoreByID(gomock.Any(), recipientStore).Return(nil, notFound)
			},
			wantErr: proposal.ErrRecipientNotFound,
		},
		{
			name: "error: recipient inactive",
			setup: func(m *txMocks) {
				m.reads.EXPECT().StoreByID(gomock.Any(), recipientStore).
					Return(&shared.StoreSnapshot{ID: recipientStore, IsActive: false}, nil)
			},
			wantErr: proposal.ErrRecipientNotFound,
		},
		{
			name: "error: already partnered",
			setup: func(m *txMocks) {
				m.reads.EXPECT().StoreByID(gomock.Any(), gomock.Any()).Return(&shared.StoreSnapshot{IsActive: true}, nil)
				m.partnerships.EXPECT().ExistsOngoingBetween(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: proposal.ErrAlreadyPartnered,
		},
		{
			name: "error: a proposal is already in flight",
			setup: func(m *txMocks) {
				m.reads.EXPECT().StoreByID(gomock.Any(), gomock.Any()).Return(&shared.StoreSnapshot{IsActive: true}, nil)
				m.partnerships.EXPECT().ExistsOngoingBetween(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				m.proposals.EXPECT().ExistsPendingByProposer(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: proposal.ErrProposalInFlight,
		},
		{
			name: "error: proposer has no active policy",
			setup: func(m *txMocks) {
				m.reads.EXPECT().StoreByID(gomock.Any(), gomock.Any()).Return(&shared.StoreSnapshot{IsActive: true}, nil)
				m.partnerships.EXPECT().ExistsOngoingBetween(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				m.proposals.EXPECT().ExistsPendingByProposer(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				m.policies.EXPECT().ExistsActiveByStoreID(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr: proposal.ErrPolicyMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newTxMocks(ctrl)
			tt.setup(m)

			_, err := newProposalUseCase(m).CreateProposal(ctx, principal, recipientStore)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("error: proposing to self", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)

		_, err := newProposalUseCase(m).CreateProposal(ctx, principal, proposerStore)

		assert.ErrorIs(t, err, proposal.ErrSelfProposal)
	})

	t.Run("error: consumers cannot propose", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)

		_, err := newProposalUseCase(m).CreateProposal(ctx, user.NewConsumerPrincipal(uuid.New()), recipientStore)

		assert.ErrorIs(t, err, user.ErrNotOwner)
	})
}

func TestProposalUseCase_CancelProposal(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New()
	principal := user.NewOwnerPrincipal(uuid.New(), storeID)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		p := builder.NewProposalBuilder().With(func(b *builder.ProposalBuilder) { b.ProposerStoreID = storeID }).BuildDomain()

		m.proposals.EXPECT().LockPendingByProposer(gomock.Any(), gomock.Any(), storeID).Return(p, nil)
		m.proposals.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), p).Return(nil)

		id, err := newProposalUseCase(m).CancelProposal(ctx, principal)

		require.NoError(t, err)
		assert.Equal(t, p.ID(), id)
		assert.Equal(t, proposal.StatusCancelled, p.Status())
	})

	t.Run("error: nothing pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		m.proposals.EXPECT().LockPendingByProposer(gomock.Any(), gomock.Any(), storeID).Return(nil, notFound)

		_, err := newProposalUseCase(m).CancelProposal(ctx, principal)

		assert.ErrorIs(t, err, proposal.ErrNoCancellableProposal)
	})
}

func TestProposalUseCase_RespondToProposal(t *testing.T) {
	ctx := context.Background()
	proposerStore := uuid.New()
	recipientStore := uuid.New()
	recipient := user.NewOwnerPrincipal(uuid.New(), recipientStore)

	pending := func() *proposal.Proposal {
		return builder.NewProposalBuilder().With(func(b *builder.ProposalBuilder) {
			b.ProposerStoreID = proposerStore
			b.RecipientStoreID = recipientStore
		}).BuildDomain()
	}
	policies := func() map[uuid.UUID]*policy.CouponPolicy {
		return map[uuid.UUID]*policy.CouponPolicy{
			proposerStore: builder.NewPolicyBuilder().With(func(b *builder.PolicyBuilder) {
				b.StoreID = proposerStore
				b.ExpectedDuration = string(policy.DurationThreeMonths)
			}).BuildDomain(),
			recipientStore: builder.NewPolicyBuilder().With(func(b *builder.PolicyBuilder) {
				b.StoreID = recipientStore
			}).BuildDomain(),
		}
	}

	t.Run("success: approve creates a partnership on the recipient's duration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		p := pending()

		// policy rows are locked before the proposal row
		gomock.InOrder(
			m.proposals.EXPECT().FindByID(gomock.Any(), gomock.Any(), p.ID()).Return(pending(), nil),
			m.policies.EXPECT().LockActiveByStoreIDs(gomock.Any(), gomock.Any(), []uuid.UUID{proposerStore, recipientStore}).
				Return(policies(), nil),
			m.proposals.EXPECT().LockByID(gomock.Any(), gomock.Any(), p.ID()).Return(p, nil),
			m.partnerships.EXPECT().ExistsOngoingForStores(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil),
		)
		m.partnerships.EXPECT().SlugExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
		m.partnerships.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, created *partnership.Partnership) error {
				// starts the day after acceptance in Seoul time
				start := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
				assert.Equal(t, proposerStore, created.StoreAID())
				assert.Equal(t, recipientStore, created.StoreBID())
				assert.Equal(t, start, created.StartDate())
				assert.Equal(t, start.AddDate(0, 0, 30), created.EndDate())
				assert.NotEqual(t, created.SlugForA(), created.SlugForB())
				assert.Equal(t, partnership.StatusActive, created.Status())
				return nil
			})
		m.proposals.EXPECT().RejectPendingTouching(gomock.Any(), gomock.Any(), []uuid.UUID{proposerStore, recipientStore}, p.ID(), fixedNow).
			Return(int64(2), nil)
		m.proposals.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), p).Return(nil)

		result, err := newProposalUseCase(m).RespondToProposal(ctx, recipient, p.ID(), "approve")

		require.NoError(t, err)
		assert.Equal(t, proposal.StatusAccepted, result.Status)
		require.NotNil(t, result.PartnershipID)
	})

	t.Run("success: reject", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		p := pending()

		m.proposals.EXPECT().LockByID(gomock.Any(), gomock.Any(), p.ID()).Return(p, nil)
		m.proposals.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), p).Return(nil)

		result, err := newProposalUseCase(m).RespondToProposal(ctx, recipient, p.ID(), "reject")

		require.NoError(t, err)
		assert.Equal(t, proposal.StatusRejected, result.Status)
		assert.Nil(t, result.PartnershipID)
	})

	t.Run("error: proposer cannot respond to their own proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		p := pending()
		m.proposals.EXPECT().FindByID(gomock.Any(), gomock.Any(), p.ID()).Return(p, nil)

		_, err := newProposalUseCase(m).RespondToProposal(ctx, user.NewOwnerPrincipal(uuid.New(), proposerStore), p.ID(), "approve")

		assert.ErrorIs(t, err, proposal.ErrNotRecipient)
	})

	t.Run("error: already resolved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		p := builder.NewProposalBuilder().With(func(b *builder.ProposalBuilder) {
			b.ProposerStoreID = proposerStore
			b.RecipientStoreID = recipientStore
			b.Status = proposal.StatusRejected
		}).BuildDomain()
		m.proposals.EXPECT().FindByID(gomock.Any(), gomock.Any(), p.ID()).Return(p, nil)

		_, err := newProposalUseCase(m).RespondToProposal(ctx, recipient, p.ID(), "approve")

		assert.ErrorIs(t, err, proposal.ErrAlreadyResolved)
	})

	t.Run("error: resolved while waiting for the policy locks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		p := pending()
		cancelled := builder.NewProposalBuilder().With(func(b *builder.ProposalBuilder) {
			b.ID = p.ID()
			b.ProposerStoreID = proposerStore
			b.RecipientStoreID = recipientStore
			b.Status = proposal.StatusCancelled
		}).BuildDomain()

		gomock.InOrder(
			m.proposals.EXPECT().FindByID(gomock.Any(), gomock.Any(), p.ID()).Return(p, nil),
			m.policies.EXPECT().LockActiveByStoreIDs(gomock.Any(), gomock.Any(), gomock.Any()).Return(policies(), nil),
			m.proposals.EXPECT().LockByID(gomock.Any(), gomock.Any(), p.ID()).Return(cancelled, nil),
		)

		_, err := newProposalUseCase(m).RespondToProposal(ctx, recipient, p.ID(), "approve")

		assert.ErrorIs(t, err, proposal.ErrAlreadyResolved)
	})

	t.Run("error: a store already has an ongoing partnership", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		p := pending()

		m.proposals.EXPECT().FindByID(gomock.Any(), gomock.Any(), p.ID()).Return(pending(), nil)
		m.policies.EXPECT().LockActiveByStoreIDs(gomock.Any(), gomock.Any(), gomock.Any()).Return(policies(), nil)
		m.proposals.EXPECT().LockByID(gomock.Any(), gomock.Any(), p.ID()).Return(p, nil)
		m.partnerships.EXPECT().ExistsOngoingForStores(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := newProposalUseCase(m).RespondToProposal(ctx, recipient, p.ID(), "approve")

		assert.ErrorIs(t, err, partnership.ErrActivePartnershipExists)
		assert.True(t, p.IsPending())
	})

	t.Run("error: proposer policy was deactivated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		p := pending()
		only := policies()
		delete(only, proposerStore)

		m.proposals.EXPECT().FindByID(gomock.Any(), gomock.Any(), p.ID()).Return(pending(), nil)
		m.policies.EXPECT().LockActiveByStoreIDs(gomock.Any(), gomock.Any(), gomock.Any()).Return(only, nil)
		m.proposals.EXPECT().LockByID(gomock.Any(), gomock.Any(), p.ID()).Return(p, nil)

		_, err := newProposalUseCase(m).RespondToProposal(ctx, recipient, p.ID(), "approve")

		assert.ErrorIs(t, err, proposal.ErrPolicyMissing)
	})

	t.Run("error: unknown decision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)

		_, err := newProposalUseCase(m).RespondToProposal(ctx, recipient, uuid.New(), "maybe")

		assert.ErrorIs(t, err, proposal.ErrInvalidDecision)
	})

	t.Run("error: proposal not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		m.proposals.EXPECT().FindByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, notFound)

		_, err := newProposalUseCase(m).RespondToProposal(ctx, recipient, uuid.New(), "approve")

		assert.ErrorIs(t, err, proposal.ErrProposalNotFound)
	})

	t.Run("error: rejecting an unknown proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		m.proposals.EXPECT().LockByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, notFound)

		_, err := newProposalUseCase(m).RespondToProposal(ctx, recipient, uuid.New(), "reject")

		assert.ErrorIs(t, err, proposal.ErrProposalNotFound)
	})
}
