//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"neighbiz/internal/domain/auth"
	"neighbiz/internal/domain/user"
	"neighbiz/internal/handler/api"
	resdto "neighbiz/internal/handler/dto/response"
	"neighbiz/internal/pkg/clock"
	"neighbiz/internal/pkg/config"
	"neighbiz/internal/pkg/cookie"
	"neighbiz/internal/usecase/commands"
	"neighbiz/internal/usecase/queries"
	"neighbiz/tests/common/httptest"
	commandsmock "neighbiz/tests/mock/commands"
	queriesmock "neighbiz/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockAccounts *queriesmock.MockAccountQueries
	principals   *testPrincipals
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockAccounts = queriesmock.NewMockAccountQueries(s.mockCtrl)
	s.principals = newTestPrincipals(s.mockCtrl)

	handler := api.NewAuthHandler(s.mockCommands, s.mockAccounts, config.NewTestConfig(), clock.NewMockClock(time.Now()))
	s.router.POST("/auth/otp/request", handler.RequestOTP)
	s.router.POST("/auth/otp/verify", handler.VerifyOTP)
	s.router.POST("/auth/owner/signup", handler.OwnerSignup)
	s.router.POST("/auth/owner/login", handler.OwnerLogin)
	s.router.POST("/auth/refresh", handler.Refresh)
	s.router.POST("/auth/logout", handler.Logout)
	s.router.POST("/auth/find-username", handler.FindUsername)
	s.router.POST("/auth/reset-password", handler.ResetPassword)
	s.router.GET("/auth/me", s.principals.mw.RequireAuth(), handler.Me)
	s.router.POST("/auth/change-password", chain(s.principals.owners(), handler.ChangePassword)...)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) authResult(principal user.Principal) *commands.AuthResult {
	now := time.Now().UTC()
	return &commands.AuthResult{
		Principal: principal,
		Tokens: &commands.TokenPair{
			AccessToken:      "access-jwt",
			RefreshToken:     "refresh-jwt",
			AccessExpiresAt:  now.Add(30 * time.Minute),
			RefreshExpiresAt: now.Add(720 * time.Hour),
		},
	}
}

func (s *AuthHandlerTestSuite) assertTokenCookies(rec interface{ Result() *http.Response }) {
	var access, refresh *http.Cookie
	for _, c := range rec.Result().Cookies() {
		switch c.Name {
		case cookie.AccessTokenCookieName:
			access = c
		case cookie.RefreshTokenCookieName:
			refresh = c
		}
	}
	s.Require().NotNil(access)
	s.Require().NotNil(refresh)
	s.Equal("access-jwt", access.Value)
	s.Equal("refresh-jwt", refresh.Value)
	s.True(access.HttpOnly)
	s.Equal("/api/auth", refresh.Path)
	s.Positive(refresh.MaxAge)
}

// ================================================================================
// TestRequestOTP
// ================================================================================

func (s *AuthHandlerTestSuite) TestRequestOTP() {
	url := "/auth/otp/request"

	s.Run("success", func() {
		expires := time.Date(2026, 3, 10, 3, 5, 0, 0, time.UTC)
		s.mockCommands.EXPECT().RequestOTP(gomock.Any(), commands.RequestOTPRequest{Phone: "01012345678", Purpose: "consumer_login"}).
			Return(&commands.RequestOTPResult{ExpiresAt: expires}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"phone": "01012345678", "purpose": "consumer_login"}, "")

		var res resdto.OTPRequestedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(expires.Equal(res.ExpiresAt))
	})

	s.Run("error: 400 without purpose", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"phone": "01012345678"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: usecase errors", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
		}{
			{name: "bad phone", err: user.ErrInvalidPhone, expectedStatus: http.StatusBadRequest},
			{name: "throttled", err: auth.ErrOTPRateLimited, expectedStatus: http.StatusConflict},
			{name: "phone taken", err: user.ErrPhoneTaken, expectedStatus: http.StatusConflict},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().RequestOTP(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"phone": "010", "purpose": "owner_signup"}, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.err.Error())
			})
		}
	})
}

// ================================================================================
// TestVerifyOTP
// ================================================================================

func (s *AuthHandlerTestSuite) TestVerifyOTP() {
	url := "/auth/otp/verify"
	body := map[string]any{"phone": "01012345678", "purpose": "consumer_login", "code": "123456"}

	s.Run("success: consumer login sets cookies", func() {
		s.mockCommands.EXPECT().VerifyOTP(gomock.Any(), gomock.Any()).
			Return(&commands.VerifyOTPResult{Verified: true, Auth: s.authResult(s.principals.consumer)}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var res resdto.OTPVerifiedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.Verified)
		s.Require().NotNil(res.Auth)
		s.Equal("consumer", res.Auth.Principal.Kind)
		s.Nil(res.Auth.Principal.StoreID)
		s.assertTokenCookies(rec)
	})

	s.Run("success: signup verification has no tokens", func() {
		s.mockCommands.EXPECT().VerifyOTP(gomock.Any(), gomock.Any()).Return(&commands.VerifyOTPResult{Verified: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var res resdto.OTPVerifiedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Nil(res.Auth)
		s.Empty(httptest.ExtractCookies(rec))
	})

	s.Run("error: 410 for an expired code", func() {
		s.mockCommands.EXPECT().VerifyOTP(gomock.Any(), gomock.Any()).Return(nil, auth.ErrOTPExpired).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusGone, "verification code expired")
	})
}

// ================================================================================
// TestOwnerSignup
// ================================================================================

func (s *AuthHandlerTestSuite) TestOwnerSignup() {
	url := "/auth/owner/signup"
	body := func() map[string]any {
		return map[string]any{
			"username": "crumb_owner",
			"password": "s3cure-pass",
			"name":     "Kim Baker",
			"phone":    "01012345678",
			"store": map[string]any{
				"name":     "Morning Crumb",
				"category": "bakery",
				"phone":    "0212345678",
				"address":  "12 Maple-ro",
			},
		}
	}

	s.Run("success: 201 with owner principal", func() {
		s.mockCommands.EXPECT().OwnerSignup(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req commands.OwnerSignupRequest) (*commands.AuthResult, error) {
				s.Equal("crumb_owner", req.Username)
				s.Equal("Morning Crumb", req.Store.Name)
				s.Empty(req.Store.BusinessHours)
				return s.authResult(s.principals.owner), nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body(), "")

		var res resdto.TokenResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal("owner", res.Principal.Kind)
		s.Require().NotNil(res.Principal.StoreID)
		s.Equal(s.principals.owner.StoreID(), *res.Principal.StoreID)
		s.assertTokenCookies(rec)
	})

	s.Run("error: 400 without store", func() {
		b := body()
		delete(b, "store")
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 403 before phone verification", func() {
		s.mockCommands.EXPECT().OwnerSignup(gomock.Any(), gomock.Any()).Return(nil, auth.ErrOTPNotVerified).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "phone number is not verified")
	})
}

// ================================================================================
// TestOwnerLogin / TestRefresh / TestLogout
// ================================================================================

func (s *AuthHandlerTestSuite) TestOwnerLogin() {
	url := "/auth/owner/login"

	s.Run("success", func() {
		s.mockCommands.EXPECT().OwnerLogin(gomock.Any(), "crumb_owner", "s3cure-pass", "iPhone").
			Return(s.authResult(s.principals.owner), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"username": "crumb_owner", "password": "s3cure-pass", "device_info": "iPhone"}, "")

		var res resdto.TokenResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("access-jwt", res.AccessToken)
		s.assertTokenCookies(rec)
	})

	s.Run("error: 401 for bad credentials", func() {
		s.mockCommands.EXPECT().OwnerLogin(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, auth.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"username": "crumb_owner", "password": "wrong-pass"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "invalid username or password")
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	url := "/auth/refresh"

	s.Run("success: token from body", func() {
		s.mockCommands.EXPECT().Refresh(gomock.Any(), "body-token", "").Return(s.authResult(s.principals.consumer), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"refresh_token": "body-token"}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.assertTokenCookies(rec)
	})

	s.Run("success: token from cookie", func() {
		s.mockCommands.EXPECT().Refresh(gomock.Any(), "cookie-token", "").Return(s.authResult(s.principals.consumer), nil).Times(1)

		cookies := []*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: "cookie-token"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, nil, cookies, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 401 for a revoked token", func() {
		s.mockCommands.EXPECT().Refresh(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, auth.ErrTokenRevoked).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"refresh_token": "old"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "refresh token revoked")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: clears cookies", func() {
		s.mockCommands.EXPECT().Logout(gomock.Any(), "cookie-token").Return(nil).Times(1)

		cookies := []*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: "cookie-token"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/auth/logout", nil, cookies, "")

		var res resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("logged out", res.Message)

		cleared := httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName)
		s.Require().NotNil(cleared)
		s.Empty(cleared.Value)
		s.Negative(cleared.MaxAge)
	})
}

// ================================================================================
// TestAccount
// ================================================================================

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success: owner account", func() {
		username := "crumb_owner"
		storeID := s.principals.owner.StoreID()
		s.mockAccounts.EXPECT().GetCurrent(gomock.Any(), s.principals.owner).Return(&queries.AccountView{
			ID:       s.principals.owner.ID(),
			Kind:     "owner",
			Phone:    "01012345678",
			Username: &username,
			StoreID:  &storeID,
			IsActive: true,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, ownerToken)

		var res resdto.AccountResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("owner", res.Kind)
		s.Require().NotNil(res.Username)
		s.Equal(username, *res.Username)
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "invalid token")
	})

	s.Run("error: 401 for an unknown token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "forged")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "invalid token")
	})
}

func (s *AuthHandlerTestSuite) TestRecovery() {
	s.Run("find username", func() {
		s.mockCommands.EXPECT().FindUsername(gomock.Any(), "01012345678", "123456").Return("crumb_owner", nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/find-username",
			map[string]any{"phone": "01012345678", "code": "123456"}, "")

		var res resdto.UsernameResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("crumb_owner", res.Username)
	})

	s.Run("reset password", func() {
		s.mockCommands.EXPECT().ResetPassword(gomock.Any(), commands.ResetPasswordRequest{
			Username:    "crumb_owner",
			Phone:       "01012345678",
			Code:        "123456",
			NewPassword: "n3w-password",
		}).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/reset-password", map[string]any{
			"username": "crumb_owner", "phone": "01012345678", "code": "123456", "new_password": "n3w-password",
		}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("change password: weak password", func() {
		s.mockCommands.EXPECT().ChangePassword(gomock.Any(), s.principals.owner, "s3cure-pass", "short").Return(user.ErrPasswordTooWeak).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/change-password",
			map[string]any{"current_password": "s3cure-pass", "new_password": "short"}, ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "at least 8 characters")
	})

	s.Run("change password: consumers rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/change-password",
			map[string]any{"current_password": "a", "new_password": "b"}, consumerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "store owner account required")
	})
}
