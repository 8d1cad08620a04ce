package api

import (
	"net/http"

	reqdto "neighbiz/internal/handler/dto/request"
	resdto "neighbiz/internal/handler/dto/response"
	"neighbiz/internal/handler/httperr"
	"neighbiz/internal/pkg/clock"
	"neighbiz/internal/usecase/commands"
	"neighbiz/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	cmds  commands.CouponCommands
	q     queries.CouponQueries
	clock clock.Clock
}

func NewCouponHandler(cmds commands.CouponCommands, q queries.CouponQueries, clk clock.Clock) *CouponHandler {
	return &CouponHandler{cmds: cmds, q: q, clock: clk}
}

// @Summary Issue a coupon
// @Description Idempotent per consumer, partnership and calendar day. A repeat returns the existing coupon with 200.
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Device-Hash header string false "Client device fingerprint"
// @Param request body reqdto.IssueCouponRequest true "Partnership slug"
// @Success 200 {object} resdto.IssuedCouponResponse
// @Success 201 {object} resdto.IssuedCouponResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/coupons/issue [post]
func (h *CouponHandler) Issue(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.IssueCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, nil)
		return
	}

	result, err := h.cmds.Issue(c.Request.Context(), principal, req.Slug, requestMeta(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	status := http.StatusCreated
	if result.AlreadyIssued {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromIssuedCoupon(result.Coupon, result.AlreadyIssued, h.clock.Now()))
}

// @Summary Use a coupon
// @Description Marks the caller's coupon as used. Expired coupons are recorded as expired and rejected.
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Device-Hash header string false "Client device fingerprint"
// @Param request body reqdto.UseCouponRequest true "Short code"
// @Success 200 {object} resdto.UsedCouponResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /api/coupons/use [post]
func (h *CouponHandler) Use(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.UseCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, nil)
		return
	}

	used, err := h.cmds.Use(c.Request.Context(), principal, req.ShortCode, requestMeta(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUsedCoupon(used))
}

// @Summary My coupons
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param status query string false "active, used or expired"
// @Success 200 {array} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Router /api/coupons/me [get]
func (h *CouponHandler) ListMine(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var query reqdto.CouponListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.BadRequest(c, err, nil)
		return
	}

	items, err := h.q.ListMine(c.Request.Context(), principal, query.Status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponList(items))
}
