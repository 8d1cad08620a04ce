//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"neighbiz/internal/domain/coupon"
	"neighbiz/internal/infra"
	"neighbiz/internal/infra/repository"
	sqlc "neighbiz/internal/infra/sqlc/generated"
	"neighbiz/internal/pkg/pgconv"
	"neighbiz/tests/common/builder"
	repositorymock "neighbiz/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// InsertIfAbsent
// =============================================================================

func TestCouponRepository_InsertIfAbsent(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockCouponWriteQueries, sqlc.DBTX)
		expectedWrote bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: row inserted",
			setupMock: func(mock *repositorymock.MockCouponWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().InsertCouponIfAbsent(ctx, tx, gomock.Any()).Return(int64(1), nil)
			},
			expectedWrote: true,
		},
		{
			name: "success: conflict leaves nothing written",
			setupMock: func(mock *repositorymock.MockCouponWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().InsertCouponIfAbsent(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			expectedWrote: false,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockCouponWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().InsertCouponIfAbsent(ctx, tx, gomock.Any()).Return(int64(0), errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockCouponWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewCouponRepository(mockQueries, mockDB)
			tc.setupMock(mockQueries, mockDB)

			wrote, err := repo.InsertIfAbsent(ctx, mockDB, builder.NewCouponBuilder().BuildDomain())

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedWrote, wrote)
		})
	}
}

func TestCouponRepository_InsertParams(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockCouponWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewCouponRepository(mockQueries, mockDB)

	b := builder.NewCouponBuilder()
	c := b.BuildDomain()

	mockQueries.EXPECT().InsertCouponIfAbsent(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.InsertCouponIfAbsentParams) (int64, error) {
			assert.Equal(t, b.ID, arg.ID)
			assert.Equal(t, b.ShortCode, arg.ShortCode)
			assert.Equal(t, b.PartnershipSlug, arg.PartnershipSlug)
			assert.Equal(t, "active", arg.Status)
			assert.True(t, arg.IssuedOn.Valid)
			assert.True(t, b.IssuedAt.Add(b.Validity).Equal(arg.ExpiredAt.Time))
			return 1, nil
		})

	_, err := repo.InsertIfAbsent(ctx, mockDB, c)
	require.NoError(t, err)
}

// =============================================================================
// LockByShortCode / FindForDay
// =============================================================================

func TestCouponRepository_LockByShortCode(t *testing.T) {
	ctx := context.Background()
	consumerID := uuid.New()
	issuedAt := time.Date(2026, 3, 10, 3, 0, 0, 0, time.UTC)
	usedAt := issuedAt.Add(2 * time.Hour)

	t.Run("success: row converted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCouponWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewCouponRepository(mockQueries, mockDB)

		row := sqlc.Coupons{
			ID:              uuid.New(),
			ConsumerID:      consumerID,
			PolicyID:        uuid.New(),
			PartnershipID:   uuid.New(),
			PartnershipSlug: "slug-a",
			ShortCode:       "QWER1234",
			Status:          "used",
			IssuedOn:        pgconv.DateToPgtype(issuedAt),
			IssuedAt:        pgconv.TimeToPgtype(issuedAt),
			UsedAt:          pgconv.TimeToPgtype(usedAt),
			ExpiredAt:       pgconv.TimeToPgtype(issuedAt.Add(24 * time.Hour)),
		}
		mockQueries.EXPECT().LockCouponByShortCode(ctx, mockDB, sqlc.LockCouponByShortCodeParams{
			ShortCode:  "QWER1234",
			ConsumerID: consumerID,
		}).Return(row, nil)

		c, err := repo.LockByShortCode(ctx, mockDB, "QWER1234", consumerID)

		require.NoError(t, err)
		assert.Equal(t, row.ID, c.ID())
		assert.Equal(t, coupon.StatusUsed, c.Status())
		require.NotNil(t, c.UsedAt())
		assert.True(t, usedAt.Equal(*c.UsedAt()))
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCouponWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewCouponRepository(mockQueries, mockDB)

		mockQueries.EXPECT().LockCouponByShortCode(ctx, mockDB, gomock.Any()).Return(sqlc.Coupons{}, pgx.ErrNoRows)

		c, err := repo.LockByShortCode(ctx, mockDB, "QWER1234", consumerID)

		assert.Nil(t, c)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestCouponRepository_FindForDay(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockCouponWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewCouponRepository(mockQueries, mockDB)

	consumerID := uuid.New()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	mockQueries.EXPECT().GetCouponForDay(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.GetCouponForDayParams) (sqlc.Coupons, error) {
			assert.Equal(t, consumerID, arg.ConsumerID)
			assert.Equal(t, "slug-a", arg.PartnershipSlug)
			assert.Equal(t, pgtype.Date{Time: day, Valid: true}, arg.IssuedOn)
			return sqlc.Coupons{}, pgx.ErrNoRows
		})

	_, err := repo.FindForDay(ctx, mockDB, consumerID, "slug-a", day)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

// =============================================================================
// Counters and sweeps
// =============================================================================

func TestCouponRepository_CountAndExpire(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockCouponWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewCouponRepository(mockQueries, mockDB)

	policyID := uuid.New()
	since := time.Date(2026, 2, 28, 15, 0, 0, 0, time.UTC)
	now := since.Add(240 * time.Hour)

	mockQueries.EXPECT().CountCouponsForPolicySince(ctx, mockDB, sqlc.CountCouponsForPolicySinceParams{
		PolicyID: policyID,
		IssuedAt: pgconv.TimeToPgtype(since),
	}).Return(int64(7), nil)
	mockQueries.EXPECT().ExpireOverdueCoupons(ctx, mockDB, pgconv.TimeToPgtype(now)).Return(int64(3), nil)

	n, err := repo.CountIssuedSince(ctx, mockDB, policyID, since)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	expired, err := repo.ExpireOverdue(ctx, mockDB, now)
	require.NoError(t, err)
	assert.EqualValues(t, 3, expired)
}

func TestCouponRepository_AppendEvent(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockCouponWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewCouponRepository(mockQueries, mockDB)

	c := builder.NewCouponBuilder().BuildDomain()
	event := coupon.NewEventLog(c, coupon.EventUsed, coupon.RequestMeta{IP: "10.0.0.1", UserAgent: "ua", DeviceHash: "dev"}, time.Now())

	mockQueries.EXPECT().CreateCouponEventLog(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateCouponEventLogParams) error {
			assert.Equal(t, c.ID(), arg.CouponID)
			assert.Equal(t, "coupon_used", arg.EventType)
			assert.Equal(t, "dev", arg.DeviceHash)
			return errors.New("disk full")
		})

	err := repo.AppendEvent(ctx, mockDB, event)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
