package api

import (
	"context"
	"net/http"

	"neighbiz/internal/domain/user"
	reqdto "neighbiz/internal/handler/dto/request"
	resdto "neighbiz/internal/handler/dto/response"
	"neighbiz/internal/handler/httperr"
	"neighbiz/internal/usecase/commands"
	"neighbiz/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProposalHandler struct {
	cmds commands.ProposalCommands
	q    queries.ProposalQueries
}

func NewProposalHandler(cmds commands.ProposalCommands, q queries.ProposalQueries) *ProposalHandler {
	return &ProposalHandler{cmds: cmds, q: q}
}

// @Summary Send partnership proposal
// @Description Both stores need an active policy. A store holds at most one pending outgoing proposal.
// @Tags proposals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateProposalRequest true "Recipient"
// @Success 201 {object} resdto.ProposalResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/proposals [post]
func (h *ProposalHandler) Create(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.CreateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, nil)
		return
	}

	id, err := h.cmds.CreateProposal(c.Request.Context(), principal, req.RecipientStoreID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	view, err := h.q.Get(c.Request.Context(), principal, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromProposalView(view))
}

// @Summary Cancel my pending proposal
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ProposalResponse
// @Failure 404 {object} httperr.Response
// @Router /api/proposals/cancel [post]
func (h *ProposalHandler) Cancel(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	id, err := h.cmds.CancelProposal(c.Request.Context(), principal)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	view, err := h.q.Get(c.Request.Context(), principal, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProposalView(view))
}

// @Summary Respond to a proposal
// @Description Approving creates the partnership and rejects every other pending proposal touching either store
// @Tags proposals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Proposal ID"
// @Param request body reqdto.DecisionRequest true "approve or reject"
// @Success 200 {object} resdto.RespondProposalResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/proposals/{id}/respond [post]
func (h *ProposalHandler) Respond(c *gin.Context) {
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

	result, err := h.cmds.RespondToProposal(c.Request.Context(), principal, id, req.Decision)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRespondResult(result))
}

// @Summary Received proposals
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, accepted, rejected or cancelled"
// @Success 200 {array} resdto.ProposalListItemResponse
// @Failure 400 {object} httperr.Response
// @Router /api/proposals/received [get]
func (h *ProposalHandler) ListReceived(c *gin.Context) {
	h.list(c, h.q.ListReceived)
}

// @Summary Sent proposals
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, accepted, rejected or cancelled"
// @Success 200 {array} resdto.ProposalListItemResponse
// @Failure 400 {object} httperr.Response
// @Router /api/proposals/sent [get]
func (h *ProposalHandler) ListSent(c *gin.Context) {
	h.list(c, h.q.ListSent)
}

// @Summary Get proposal
// @Description Visible to the proposer and the recipient only
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Proposal ID"
// @Success 200 {object} resdto.ProposalResponse
// @Failure 404 {object} httperr.Response
// @Router /api/proposals/{id} [get]
func (h *ProposalHandler) Get(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), principal, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProposalView(view))
}

type proposalLister func(ctx context.Context, principal user.Principal, status *string) ([]*queries.ProposalListItemView, error)

func (h *ProposalHandler) list(c *gin.Context, fetch proposalLister) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var query reqdto.ProposalListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.BadRequest(c, err, nil)
		return
	}

	items, err := fetch(c.Request.Context(), principal, query.Status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProposalList(items))
}
