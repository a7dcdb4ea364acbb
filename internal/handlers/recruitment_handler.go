package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mcpitc/mcpitc-backend/internal/models"
	"github.com/mcpitc/mcpitc-backend/internal/services"
)

// RecruitmentHandler handles the recruitment toggle HTTP requests
type RecruitmentHandler struct {
	recruitmentService services.RecruitmentService
}

// NewRecruitmentHandler creates a new RecruitmentHandler
func NewRecruitmentHandler(recruitmentService services.RecruitmentService) *RecruitmentHandler {
	return &RecruitmentHandler{
		recruitmentService: recruitmentService,
	}
}

// GetStatus handles GET /recruitment-onOff
func (h *RecruitmentHandler) GetStatus(c *gin.Context) {
	toggle, err := h.recruitmentService.GetStatus(c.Request.Context())
	if err != nil {
		serverError(c, "get recruitment status", err)
		return
	}
	c.JSON(http.StatusOK, toggle)
}

// SetStatus handles PUT /recruitment-onOff
func (h *RecruitmentHandler) SetStatus(c *gin.Context) {
	var request models.RecruitmentUpdate
	if !bindPatch(c, &request) {
		return
	}

	res, err := h.recruitmentService.SetStatus(c.Request.Context(), request.Status)
	if err != nil {
		serverError(c, "update recruitment status", err)
		return
	}
	c.JSON(http.StatusOK, res)
}
