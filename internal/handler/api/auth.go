package api

import (
	"net/http"

	reqdto "neighbiz/internal/handler/dto/request"
	resdto "neighbiz/internal/handler/dto/response"
	"neighbiz/internal/handler/httperr"
	"neighbiz/internal/pkg/clock"
	"neighbiz/internal/pkg/config"
	"neighbiz/internal/pkg/cookie"
	"neighbiz/internal/usecase/commands"
	"neighbiz/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds     commands.AuthCommands
	accounts queries.AccountQueries
	cfg      config.Config
	clock    clock.Clock
}

func NewAuthHandler(cmds commands.AuthCommands, accounts queries.AccountQueries, cfg config.Config, clk clock.Clock) *AuthHandler {
	return &AuthHandler{
		cmds:     cmds,
		accounts: accounts,
		cfg:      cfg,
		clock:    clk,
	}
}

// @Summary Request verification code
// @Description Send a one-time code by SMS for consumer login, owner signup, username lookup or password reset
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RequestOTPRequest true "Phone and purpose"
// @Success 200 {object} resdto.OTPRequestedResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/auth/otp/request [post]
func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var req reqdto.RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, nil)
		return
	}

	result, err := h.cmds.RequestOTP(c.Request.Context(), commands.RequestOTPRequest{
		Phone:   req.Phone,
		Purpose: req.Purpose,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.OTPRequestedResponse{ExpiresAt: result.ExpiresAt})
}

// @Summary Verify code
// @Description Verify a one-time code. For consumer_login the consumer is signed in and tokens are returned.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyOTPRequest true "Verification"
// @Success 200 {object} resdto.OTPVerifiedResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /api/auth/otp/verify [post]
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req reqdto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, nil)
		return
	}

	result, err := h.cmds.VerifyOTP(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	resp := resdto.OTPVerifiedResponse{Verified: result.Verified}
	if result.Auth != nil {
		h.setCookies(c, result.Auth)
		resp.Auth = resdto.FromAuthResult(result.Auth)
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Owner signup
// @Description Create an owner account and its store after verifying the phone with owner_signup
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.OwnerSignupRequest true "Signup"
// @Success 201 {object} resdto.TokenResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/auth/owner/signup [post]
func (h *AuthHandler) OwnerSignup(c *gin.Context) {
	var req reqdto.OwnerSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	result, err := h.cmds.OwnerSignup(c.Request.Context(), cmd)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.setCookies(c, result)
	c.JSON(http.StatusCreated, resdto.FromAuthResult(result))
}

// @Summary Owner login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Credentials"
// @Success 200 {object} resdto.TokenResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/auth/owner/login [post]
func (h *AuthHandler) OwnerLogin(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, nil)
		return
	}

	result, err := h.cmds.OwnerLogin(c.Request.Context(), req.Username, req.Password, req.DeviceInfo)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.setCookies(c, result)
	c.JSON(http.StatusOK, resdto.FromAuthResult(result))
}

// @Summary Refresh tokens
// @Description Rotate the refresh token. The token is read from the body or the refresh cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh token"
// @Success 200 {object} resdto.TokenResponse
// @Failure 401 {object} httperr.Response
// @Router /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req reqdto.RefreshRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, err, nil)
			return
		}
	}
	token := req.RefreshToken
	if token == "" {
		token = cookie.GetRefreshToken(c)
	}

	result, err := h.cmds.Refresh(c.Request.Context(), token, req.DeviceInfo)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.setCookies(c, result)
	c.JSON(http.StatusOK, resdto.FromAuthResult(result))
}

// @Summary Logout
// @Description Revoke the refresh token and clear auth cookies. Repeated calls succeed.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LogoutRequest false "Refresh token"
// @Success 200 {object} resdto.MessageResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req reqdto.LogoutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, err, nil)
			return
		}
	}
	token := req.RefreshToken
	if token == "" {
		token = cookie.GetRefreshToken(c)
	}

	if err := h.cmds.Logout(c.Request.Context(), token); err != nil {
		httperr.Respond(c, err)
		return
	}

	cookie.ClearTokenCookies(c, h.cfg.Cookie)
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "logged out"})
}

// @Summary Current account
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.AccountResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	view, err := h.accounts.GetCurrent(c.Request.Context(), principal)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAccountView(view))
}

// @Summary Find username
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.FindUsernameRequest true "Phone and find_username code"
// @Success 200 {object} resdto.UsernameResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /api/auth/owner/find-username [post]
func (h *AuthHandler) FindUsername(c *gin.Context) {
	var req reqdto.FindUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, nil)
		return
	}

	username, err := h.cmds.FindUsername(c.Request.Context(), req.Phone, req.Code)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.UsernameResponse{Username: username})
}

// @Summary Reset password
// @Description Set a new password after verifying a reset_password code. All refresh tokens are revoked.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.ResetPasswordRequest true "Reset"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /api/auth/owner/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req reqdto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, nil)
		return
	}

	if err := h.cmds.ResetPassword(c.Request.Context(), req.ToCommand()); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "password reset"})
}

// @Summary Change password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ChangePasswordRequest true "Passwords"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/auth/owner/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, nil)
		return
	}

	if err := h.cmds.ChangePassword(c.Request.Context(), principal, req.CurrentPassword, req.NewPassword); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "password changed"})
}

func (h *AuthHandler) setCookies(c *gin.Context, result *commands.AuthResult) {
	cookie.SetTokenCookies(c, h.cfg.Cookie, cookie.Tokens{
		Access:           result.Tokens.AccessToken,
		AccessExpiresAt:  result.Tokens.AccessExpiresAt,
		Refresh:          result.Tokens.RefreshToken,
		RefreshExpiresAt: result.Tokens.RefreshExpiresAt,
	}, h.clock.Now())
}
