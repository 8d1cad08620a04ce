//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"neighbiz/internal/domain/partnership"
	"neighbiz/internal/domain/policy"
	"neighbiz/internal/infra"
	"neighbiz/internal/infra/repository"
	sqlc "neighbiz/internal/infra/sqlc/generated"
	"neighbiz/tests/common/builder"
	repositorymock "neighbiz/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPolicyRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		queryErr    error
		expectedErr error
		expectKind  infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "error: one active policy per store", queryErr: uniqueViolation(infra.ConstraintPolicyActiveStore), expectedErr: policy.ErrPolicyAlreadyExists},
		{name: "error: database error occurs", queryErr: errors.New("database connection error"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockPolicyWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewPolicyRepository(mockQueries, mockDB)

			mockQueries.EXPECT().CreateCouponPolicy(ctx, mockDB, gomock.Any()).Return(tc.queryErr)

			err := repo.Create(ctx, mockDB, builder.NewPolicyBuilder().WithMonthlyLimit(20).BuildDomain())
			switch {
			case tc.expectedErr != nil:
				assert.ErrorIs(t, err, tc.expectedErr)
			case tc.expectKind != "":
				assert.True(t, infra.IsKind(err, tc.expectKind))
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestPolicyRepository_LockActiveByStoreIDs(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockPolicyWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewPolicyRepository(mockQueries, mockDB)

	withPolicy, withoutPolicy := uuid.New(), uuid.New()
	stores := []uuid.UUID{withPolicy, withoutPolicy}
	mockQueries.EXPECT().LockActivePoliciesByStoreIDs(ctx, mockDB, stores).Return([]sqlc.CouponPolicies{{
		ID:               uuid.New(),
		StoreID:          withPolicy,
		Description:      "Free cookie",
		ExpectedValue:    2000,
		ExpectedDuration: "2_months",
		MonthlyLimit:     pgtype.Int4{Int32: 50, Valid: true},
		IsActive:         true,
	}}, nil)

	got, err := repo.LockActiveByStoreIDs(ctx, mockDB, stores)
	require.NoError(t, err)
	require.Len(t, got, 1)
	p, ok := got[withPolicy]
	require.True(t, ok)
	assert.Equal(t, policy.DurationTwoMonths, p.ExpectedDuration())
	require.NotNil(t, p.MonthlyLimit())
	assert.Equal(t, 50, *p.MonthlyLimit())
	_, ok = got[withoutPolicy]
	assert.False(t, ok)
}

func TestChangeRequestRepository_Create(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockChangeRequestWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewChangeRequestRepository(mockQueries, mockDB)

	p := builder.NewPartnershipBuilder().BuildDomain()
	cr, err := partnership.NewChangeRequest(p, p.StoreAID(), partnership.ChangeExtend, "more time", p.CreatedAt())
	require.NoError(t, err)

	mockQueries.EXPECT().CreateChangeRequest(ctx, mockDB, gomock.Any()).Return(uniqueViolation(infra.ConstraintChangeRequestsPending))

	err = repo.Create(ctx, mockDB, cr)
	assert.ErrorIs(t, err, partnership.ErrChangeRequestPending)
}
