//go:build unit

package commands_test

import (
	"context"
	"time"

	"neighbiz/internal/infra"
	"neighbiz/internal/usecase/shared"
	sharedmock "neighbiz/tests/mock/shared"

	"github.com/jackc/pgx/v5"
	"go.uber.org/mock/gomock"
)

var (
	seoul = mustLoadLocation("Asia/Seoul")
	// 2026-03-10 12:00 KST
	fixedNow = time.Date(2026, 3, 10, 3, 0, 0, 0, time.UTC)
	errDB    = infra.WrapRepoErr("query failed", context.DeadlineExceeded)
	notFound = infra.WrapRepoErr("not found", pgx.ErrNoRows)
)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("KST", 9*60*60)
	}
	return loc
}

// txMocks wires a mock unit of work whose Within runs fn against a mock Tx.
type txMocks struct {
	uow            *sharedmock.MockUnitOfWork
	tx             *sharedmock.MockTx
	reads          *sharedmock.MockCommandReads
	owners         *sharedmock.MockOwnerRepository
	consumers      *sharedmock.MockConsumerRepository
	verifications  *sharedmock.MockVerificationRepository
	refreshTokens  *sharedmock.MockRefreshTokenRepository
	stores         *sharedmock.MockStoreRepository
	policies       *sharedmock.MockPolicyRepository
	proposals      *sharedmock.MockProposalRepository
	partnerships   *sharedmock.MockPartnershipRepository
	changeRequests *sharedmock.MockChangeRequestRepository
	coupons        *sharedmock.MockCouponRepository
}

func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:            sharedmock.NewMockUnitOfWork(ctrl),
		tx:             sharedmock.NewMockTx(ctrl),
		reads:          sharedmock.NewMockCommandReads(ctrl),
		owners:         sharedmock.NewMockOwnerRepository(ctrl),
		consumers:      sharedmock.NewMockConsumerRepository(ctrl),
		verifications:  sharedmock.NewMockVerificationRepository(ctrl),
		refreshTokens:  sharedmock.NewMockRefreshTokenRepository(ctrl),
		stores:         sharedmock.NewMockStoreRepository(ctrl),
		policies:       sharedmock.NewMockPolicyRepository(ctrl),
		proposals:      sharedmock.NewMockProposalRepository(ctrl),
		partnerships:   sharedmock.NewMockPartnershipRepository(ctrl),
		changeRequests: sharedmock.NewMockChangeRequestRepository(ctrl),
		coupons:        sharedmock.NewMockCouponRepository(ctrl),
	}

	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.uow.EXPECT().CommandReads().Return(m.reads).AnyTimes()

	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Owners().Return(m.owners).AnyTimes()
	m.tx.EXPECT().Consumers().Return(m.consumers).AnyTimes()
	m.tx.EXPECT().Verifications().Return(m.verifications).AnyTimes()
	m.tx.EXPECT().RefreshTokens().Return(m.refreshTokens).AnyTimes()
	m.tx.EXPECT().Stores().Return(m.stores).AnyTimes()
	m.tx.EXPECT().Policies().Return(m.policies).AnyTimes()
	m.tx.EXPECT().Proposals().Return(m.proposals).AnyTimes()
	m.tx.EXPECT().Partnerships().Return(m.partnerships).AnyTimes()
	m.tx.EXPECT().ChangeRequests().Return(m.changeRequests).AnyTimes()
	m.tx.EXPECT().Coupons().Return(m.coupons).AnyTimes()
	return m
}
