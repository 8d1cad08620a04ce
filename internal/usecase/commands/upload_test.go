//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"neighbiz/internal/domain/user"
	"neighbiz/internal/pkg/clock"
	"neighbiz/internal/usecase/commands"
	"neighbiz/internal/usecase/shared"
	sharedmock "neighbiz/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUploadUseCase_PresignUpload(t *testing.T) {
	ctx := context.Background()
	owner := user.NewOwnerPrincipal(uuid.New(), uuid.New())
	ttl := 10 * time.Minute

	t.Run("success: key is namespaced and the filename sanitized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := sharedmock.NewMockObjectStorage(ctrl)
		storage.EXPECT().PresignPut(gomock.Any(), gomock.Any(), "image/png", ttl).
			DoAndReturn(func(_ context.Context, key, _ string, _ time.Duration) (string, error) {
				return "https://files.example.com/" + key + "?sig=abc", nil
			})

		result, err := commands.NewUploadUseCase(storage, clock.NewMockClock(fixedNow), ttl).PresignUpload(ctx, owner,
			commands.PresignUploadRequest{ImageType: "store", Filename: `C:\photos\front door?.png`, ContentType: "image/png"})

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(result.Key, "store/"))
		assert.True(t, strings.HasSuffix(result.Key, "_front_door.png"))
		assert.Contains(t, result.UploadURL, result.Key)
		assert.Equal(t, fixedNow.Add(ttl), result.ExpiresAt)
	})

	tests := []struct {
		name    string
		req     commands.PresignUploadRequest
		wantErr error
	}{
		{
			name:    "error: unknown image type",
			req:     commands.PresignUploadRequest{ImageType: "avatar", Filename: "a.png", ContentType: "image/png"},
			wantErr: commands.ErrInvalidImageType,
		},
		{
			name:    "error: executable content",
			req:     commands.PresignUploadRequest{ImageType: "license", Filename: "a.exe", ContentType: "application/octet-stream"},
			wantErr: commands.ErrInvalidContentType,
		},
		{
			name:    "error: empty filename",
			req:     commands.PresignUploadRequest{ImageType: "license", Filename: "  ", ContentType: "application/pdf"},
			wantErr: commands.ErrInvalidFilename,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			storage := sharedmock.NewMockObjectStorage(ctrl)

			_, err := commands.NewUploadUseCase(storage, clock.NewMockClock(fixedNow), ttl).PresignUpload(ctx, owner, tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("error: storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := sharedmock.NewMockObjectStorage(ctrl)
		storage.EXPECT().PresignPut(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("no credentials"))

		_, err := commands.NewUploadUseCase(storage, clock.NewMockClock(fixedNow), ttl).PresignUpload(ctx, owner,
			commands.PresignUploadRequest{ImageType: "store", Filename: "a.png", ContentType: "image/png"})

		assert.ErrorIs(t, err, shared.ErrStorageUnavailable)
	})
}

func TestMaintenanceUseCase_SweepExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newTxMocks(ctrl)

	m.coupons.EXPECT().ExpireOverdue(gomock.Any(), gomock.Any(), fixedNow).Return(int64(4), nil)
	m.partnerships.EXPECT().EndExpired(gomock.Any(), gomock.Any(), clock.DateIn(fixedNow, seoul), fixedNow).Return(int64(1), nil)

	result, err := commands.NewMaintenanceUseCase(m.uow, clock.NewMockClock(fixedNow), seoul).SweepExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), result.ExpiredCoupons)
	assert.Equal(t, int64(1), result.EndedPartnerships)
}
