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

type StoreHandler struct {
	cmds commands.StoreCommands
	q    queries.StoreQueries
}

func NewStoreHandler(cmds commands.StoreCommands, q queries.StoreQueries) *StoreHandler {
	return &StoreHandler{cmds: cmds, q: q}
}

// @Summary My store
// @Tags stores
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.StoreResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/stores/me [get]
func (h *StoreHandler) GetMine(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	view, err := h.q.GetMine(c.Request.Context(), principal)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStoreDetailView(view))
}

// @Summary Update my store
// @Description Partial update. Send null for description or image_key to clear them.
// @Tags stores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateStoreRequest true "Fields to change"
// @Success 200 {object} resdto.StoreResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/stores/me [patch]
func (h *StoreHandler) UpdateMine(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, nil)
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	id, err := h.cmds.UpdateMyStore(c.Request.Context(), principal, patch)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	view, err := h.q.GetDetail(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStoreDetailView(view))
}

// @Summary Get store
// @Tags stores
// @Produce json
// @Security BearerAuth
// @Param id path string true "Store ID"
// @Success 200 {object} resdto.StoreResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/stores/{id} [get]
func (h *StoreHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetDetail(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStoreDetailView(view))
}

// @Summary Search partner directory
// @Description Active stores with an active policy, excluding the caller's own store
// @Tags stores
// @Produce json
// @Security BearerAuth
// @Param category query string false "Category"
// @Param search query string false "Keyword in name or description"
// @Param expected_value_min query int false "Minimum expected value"
// @Param expected_value_max query int false "Maximum expected value"
// @Param expected_duration query string false "Expected duration"
// @Param monthly_limit_min query int false "Minimum monthly limit"
// @Param monthly_limit_max query int false "Maximum monthly limit"
// @Param is_partnered query bool false "Currently partnered"
// @Param ordering query string false "newest, oldest, name or expected_value, prefix - to reverse"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} resdto.PageResponse[resdto.DirectoryItemResponse]
// @Failure 400 {object} httperr.Response
// @Router /api/stores [get]
func (h *StoreHandler) Search(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var query reqdto.DirectoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.BadRequest(c, err, nil)
		return
	}

	page, err := h.q.SearchDirectory(c.Request.Context(), principal, query.ToFilter())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDirectoryPage(page))
}
