package api

import (
	"net/http"

	"neighbiz/internal/domain/user"
	reqdto "neighbiz/internal/handler/dto/request"
	resdto "neighbiz/internal/handler/dto/response"
	"neighbiz/internal/handler/httperr"
	"neighbiz/internal/usecase/commands"
	"neighbiz/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PolicyHandler struct {
	cmds commands.PolicyCommands
	q    queries.PolicyQueries
}

func NewPolicyHandler(cmds commands.PolicyCommands, q queries.PolicyQueries) *PolicyHandler {
	return &PolicyHandler{cmds: cmds, q: q}
}

// @Summary My active coupon policy
// @Tags policies
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PolicyResponse
// @Failure 404 {object} httperr.Response
// @Router /api/policies/me [get]
func (h *PolicyHandler) GetMine(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	h.respondMine(c, principal, http.StatusOK)
}

// @Summary Create coupon policy
// @Tags policies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePolicyRequest true "Policy terms"
// @Success 201 {object} resdto.PolicyResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/policies [post]
func (h *PolicyHandler) Create(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.CreatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, nil)
		return
	}

	if _, err := h.cmds.CreatePolicy(c.Request.Context(), principal, req.ToTerms()); err != nil {
		httperr.Respond(c, err)
		return
	}
	h.respondMine(c, principal, http.StatusCreated)
}

// @Summary Update coupon policy
// @Description Rejected while a proposal is pending or a partnership is ongoing for the store
// @Tags policies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdatePolicyRequest true "Fields to change"
// @Success 200 {object} resdto.PolicyResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/policies/me [patch]
func (h *PolicyHandler) Update(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.UpdatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, nil)
		return
	}

	if _, err := h.cmds.UpdatePolicy(c.Request.Context(), principal, req.ToPatch()); err != nil {
		httperr.Respond(c, err)
		return
	}
	h.respondMine(c, principal, http.StatusOK)
}

// @Summary Deactivate coupon policy
// @Tags policies
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/policies/me [delete]
func (h *PolicyHandler) Deactivate(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	if err := h.cmds.DeactivatePolicy(c.Request.Context(), principal); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PolicyHandler) respondMine(c *gin.Context, principal user.Principal, status int) {
	view, err := h.q.GetMine(c.Request.Context(), principal)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(status, resdto.FromPolicyView(view))
}
