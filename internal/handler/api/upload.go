package api

import (
	"net/http"

	reqdto "neighbiz/internal/handler/dto/request"
	resdto "neighbiz/internal/handler/dto/response"
	"neighbiz/internal/handler/httperr"
	"neighbiz/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	cmds commands.UploadCommands
}

func NewUploadHandler(cmds commands.UploadCommands) *UploadHandler {
	return &UploadHandler{cmds: cmds}
}

// @Summary Presign an image upload
// @Description Returns a short-lived URL to PUT the image to. Store the returned key on the store profile.
// @Tags uploads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PresignUploadRequest true "Image"
// @Success 200 {object} resdto.PresignUploadResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/uploads/presign [post]
func (h *UploadHandler) Presign(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.PresignUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, nil)
		return
	}

	result, err := h.cmds.PresignUpload(c.Request.Context(), principal, commands.PresignUploadRequest{
		ImageType:   req.ImageType,
		Filename:    req.Filename,
		ContentType: req.ContentType,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.PresignUploadResponse{
		UploadURL: result.UploadURL,
		Key:       result.Key,
		ExpiresAt: result.ExpiresAt,
	})
}
