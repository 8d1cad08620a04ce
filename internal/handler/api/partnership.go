package api

import (
	"net/http"

	reqdto "neighbiz/internal/handler/dto/request"
	resdto "neighbiz/internal/handler/dto/response"
	"neighbiz/internal/handler/httperr"
	"neighbiz/internal/usecase/commands"
	"neighbiz/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PartnershipHandler struct {
	cmds commands.PartnershipCommands
	q    queries.PartnershipQueries
}

func NewPartnershipHandler(cmds commands.PartnershipCommands, q queries.PartnershipQueries) *PartnershipHandler {
	return &PartnershipHandler{cmds: cmds, q: q}
}

// @Summary My ongoing partnership
// @Tags partnerships
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PartnershipResponse
// @Failure 404 {object} httperr.Response
// @Router /api/partnerships/me [get]
func (h *PartnershipHandler) GetMine(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	view, err := h.q.GetMine(c.Request.Context(), principal)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPartnershipView(view))
}

// @Summary Owner dashboard
// @Description Store, policy, partnership and the QR code for the partner's coupon
// @Tags partnerships
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MyPageResponse
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/partnerships/mypage [get]
func (h *PartnershipHandler) MyPage(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	view, err := h.q.MyPage(c.Request.Context(), principal)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMyPageView(view))
}

// @Summary Request a partnership change
// @Description Ask the partner to extend or terminate the ongoing partnership
// @Tags partnerships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ChangeRequestRequest true "Change"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/partnerships/change-requests [post]
func (h *PartnershipHandler) RequestChange(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.ChangeRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, nil)
		return
	}

	id, err := h.cmds.RequestChange(c.Request.Context(), principal, req.Type, req.Reason)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// @Summary Respond to a change request
// @Tags partnerships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Change request ID"
// @Param request body reqdto.DecisionRequest true "approve or reject"
// @Success 200 {object} resdto.ChangeResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/partnerships/change-requests/{id}/respond [post]
func (h *PartnershipHandler) RespondChange(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, nil)
		return
	}

	result, err := h.cmds.RespondChange(c.Request.Context(), principal, id, req.Decision)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromChangeResult(result))
}

// @Summary Coupon issue landing
// @Description Public page data behind a QR code: the issuing store, its partner and the policy on offer
// @Tags coupons
// @Produce json
// @Param slug path string true "Partnership slug"
// @Success 200 {object} resdto.IssueLandingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/issue/{slug} [get]
func (h *PartnershipHandler) IssueLanding(c *gin.Context) {
	view, err := h.q.GetIssueLanding(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromIssueLandingView(view))
}
