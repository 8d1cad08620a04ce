//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"neighbiz/internal/domain/proposal"
	"neighbiz/internal/domain/user"
	"neighbiz/internal/infra"
	"neighbiz/internal/infra/repository"
	sqlc "neighbiz/internal/infra/sqlc/generated"
	"neighbiz/internal/pkg/pgconv"
	"neighbiz/tests/common/builder"
	repositorymock "neighbiz/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProposalRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		queryErr    error
		expectedErr error
		expectKind  infra.RepositoryErrorKind
	}{
		{name: "success: proposal created"},
		{
			name:        "error: pending index hit becomes in flight",
			queryErr:    uniqueViolation(infra.ConstraintProposalsPending),
			expectedErr: proposal.ErrProposalInFlight,
		},
		{
			name:       "error: other unique violation stays a repository error",
			queryErr:   uniqueViolation("some_other_index"),
			expectKind: infra.KindDuplicateKey,
		},
		{
			name:       "error: database error occurs",
			queryErr:   errors.New("database connection error"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockProposalWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewProposalRepository(mockQueries, mockDB)

			p := builder.NewProposalBuilder().BuildDomain()
			mockQueries.EXPECT().CreateProposal(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateProposalParams) error {
					assert.Equal(t, p.ID(), arg.ID)
					assert.Equal(t, "pending", arg.Status)
					return tc.queryErr
				})

			err := repo.Create(ctx, mockDB, p)

			switch {
			case tc.expectedErr != nil:
				assert.ErrorIs(t, err, tc.expectedErr)
			case tc.expectKind != "":
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestProposalRepository_LockByID(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockProposalWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewProposalRepository(mockQueries, mockDB)

	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	row := sqlc.Proposals{
		ID:               uuid.New(),
		ProposerStoreID:  uuid.New(),
		RecipientStoreID: uuid.New(),
		Status:           "accepted",
		CreatedAt:        pgconv.TimeToPgtype(created),
		UpdatedAt:        pgconv.TimeToPgtype(created.Add(time.Hour)),
	}
	mockQueries.EXPECT().LockProposalByID(ctx, mockDB, row.ID).Return(row, nil)
	mockQueries.EXPECT().LockProposalByID(ctx, mockDB, gomock.Not(row.ID)).Return(sqlc.Proposals{}, pgx.ErrNoRows)

	got, err := repo.LockByID(ctx, mockDB, row.ID)
	require.NoError(t, err)
	assert.Equal(t, proposal.StatusAccepted, got.Status())
	assert.Equal(t, row.RecipientStoreID, got.RecipientStoreID())
	assert.True(t, created.Add(time.Hour).Equal(got.UpdatedAt()))

	_, err = repo.LockByID(ctx, mockDB, uuid.New())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestProposalRepository_RejectPendingTouching(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockProposalWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewProposalRepository(mockQueries, mockDB)

	stores := []uuid.UUID{uuid.New(), uuid.New()}
	except := uuid.New()
	now := time.Date(2026, 3, 10, 3, 0, 0, 0, time.UTC)

	mockQueries.EXPECT().RejectPendingProposalsTouchingStores(ctx, mockDB, sqlc.RejectPendingProposalsTouchingStoresParams{
		UpdatedAt: pgconv.TimeToPgtype(now),
		ExceptID:  except,
		StoreIds:  stores,
	}).Return(int64(4), nil)

	n, err := repo.RejectPendingTouching(ctx, mockDB, stores, except, now)
	require.NoError(t, err)
	assert.EqualValues(t, 4, n)
}

// =============================================================================
// Owners
// =============================================================================

func TestOwnerRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	owner := user.ReconstructOwner(uuid.New(), "crumb_owner", "$2a$12$hash", "Kim Baker", "01012345678", true, now, now)

	testCases := []struct {
		name        string
		queryErr    error
		expectedErr error
	}{
		{name: "success"},
		{name: "error: username index", queryErr: uniqueViolation(infra.ConstraintOwnersUsername), expectedErr: user.ErrUsernameTaken},
		{name: "error: phone index", queryErr: uniqueViolation(infra.ConstraintOwnersPhone), expectedErr: user.ErrPhoneTaken},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockOwnerWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewOwnerRepository(mockQueries, mockDB)

			mockQueries.EXPECT().CreateOwner(ctx, mockDB, gomock.Any()).Return(tc.queryErr)

			err := repo.Create(ctx, mockDB, owner)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
