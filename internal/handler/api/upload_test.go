//go:build unit

package api_test

import (
	"bytes"
	"context"
	"net/http"
	nethttptest "net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"neighbiz/internal/handler/api"
	resdto "neighbiz/internal/handler/dto/response"
	"neighbiz/internal/infra/storage"
	"neighbiz/internal/pkg/config"
	"neighbiz/internal/usecase/commands"
	"neighbiz/tests/common/httptest"
	commandsmock "neighbiz/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UploadHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockUploadCommands
	principals   *testPrincipals
	local        *storage.LocalStorage
}

func (s *UploadHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockUploadCommands(s.mockCtrl)
	s.principals = newTestPrincipals(s.mockCtrl)

	cfg := config.NewTestConfig().Storage
	cfg.LocalPath = filepath.Join(s.T().TempDir(), "storage.db")
	local, err := storage.NewLocalStorage(cfg)
	s.Require().NoError(err)
	s.local = local

	uploads := api.NewUploadHandler(s.mockCommands)
	files := api.NewFilesHandler(local)
	s.router.POST("/uploads/presign", chain(s.principals.owners(), uploads.Presign)...)
	s.router.GET(storage.FilesPath+"*key", files.Download)
	s.router.PUT(storage.FilesPath+"*key", files.Upload)
}

func (s *UploadHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.Require().NoError(s.local.Close())
}

func TestUploadHandlerSuite(t *testing.T) {
	suite.Run(t, new(UploadHandlerTestSuite))
}

func (s *UploadHandlerTestSuite) signedPath(rawURL string) string {
	u, err := url.Parse(rawURL)
	s.Require().NoError(err)
	return u.RequestURI()
}

func (s *UploadHandlerTestSuite) TestPresign() {
	url := "/uploads/presign"
	body := map[string]any{"image_type": "store", "filename": "front.png", "content_type": "image/png"}

	s.Run("success", func() {
		expires := time.Date(2026, 3, 10, 4, 0, 0, 0, time.UTC)
		s.mockCommands.EXPECT().PresignUpload(gomock.Any(), s.principals.owner, commands.PresignUploadRequest{
			ImageType:   "store",
			Filename:    "front.png",
			ContentType: "image/png",
		}).Return(&commands.PresignUploadResult{UploadURL: "http://files/x", Key: "store/x_front.png", ExpiresAt: expires}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, ownerToken)

		var res resdto.PresignUploadResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("store/x_front.png", res.Key)
		s.Equal("http://files/x", res.UploadURL)
	})

	s.Run("error: 400 for an unknown image type", func() {
		bad := map[string]any{"image_type": "menu", "filename": "front.png", "content_type": "image/png"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: content type rejected by the usecase", func() {
		s.mockCommands.EXPECT().PresignUpload(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, commands.ErrInvalidContentType).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "only images and pdf files")
	})
}

func (s *UploadHandlerTestSuite) TestSignedRoundTrip() {
	ctx := context.Background()
	key := "store/abc_front.png"
	payload := []byte{0x89, 'P', 'N', 'G', 1, 2, 3}

	s.Run("upload then download", func() {
		putURL, err := s.local.PresignPut(ctx, key, "image/png", time.Minute)
		s.Require().NoError(err)

		req := nethttptest.NewRequest(http.MethodPut, s.signedPath(putURL), bytes.NewReader(payload))
		req.Header.Set("Content-Type", "image/png")
		rec := nethttptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		s.Require().Equal(http.StatusNoContent, rec.Code)

		getURL, err := s.local.PresignGet(ctx, key, time.Minute)
		s.Require().NoError(err)

		rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.signedPath(getURL), nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.Equal("image/png", rec.Header().Get("Content-Type"))
		s.Equal(payload, rec.Body.Bytes())
	})

	s.Run("error: content type must match the signature", func() {
		putURL, err := s.local.PresignPut(ctx, key, "image/png", time.Minute)
		s.Require().NoError(err)

		req := nethttptest.NewRequest(http.MethodPut, s.signedPath(putURL), bytes.NewReader(payload))
		req.Header.Set("Content-Type", "image/jpeg")
		rec := nethttptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "signed URL is invalid or expired")
	})

	s.Run("error: tampered signature", func() {
		getURL, err := s.local.PresignGet(ctx, key, time.Minute)
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.signedPath(getURL)+"00", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "signed URL is invalid or expired")
	})

	s.Run("error: 404 for a missing object", func() {
		getURL, err := s.local.PresignGet(ctx, "store/missing.png", time.Minute)
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.signedPath(getURL), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "file not found")
	})
}
