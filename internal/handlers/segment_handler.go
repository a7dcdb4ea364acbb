package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mcpitc/mcpitc-backend/internal/models"
	"github.com/mcpitc/mcpitc-backend/internal/services"
)

// SegmentHandler handles event segment HTTP requests
type SegmentHandler struct {
	segmentService services.SegmentService
}

func NewSegmentHandler(segmentService services.SegmentService) *SegmentHandler {
	return &SegmentHandler{segmentService: segmentService}
}

// ListSegments handles GET /segments
func (h *SegmentHandler) ListSegments(c *gin.Context) {
	segments, err := h.segmentService.ListSegments(c.Request.Context())
	if err != nil {
		serverError(c, "get segments", err)
		return
	}
	c.JSON(http.StatusOK, segments)
}

// GetSegment handles GET /segment-details/:id
func (h *SegmentHandler) GetSegment(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}
	segment, err := h.segmentService.GetSegment(c.Request.Context(), id)
	if err != nil {
		serverError(c, "get segment", err)
		return
	}
	c.JSON(http.StatusOK, segment)
}

// ListSegmentsByEvent handles GET /segment/:event
func (h *SegmentHandler) ListSegmentsByEvent(c *gin.Context) {
	segments, err := h.segmentService.ListSegmentsByEvent(c.Request.Context(), c.Param("event"))
	if err != nil {
		serverError(c, "get segments", err)
		return
	}
	c.JSON(http.StatusOK, segments)
}

// CreateSegment handles POST /event-segment
func (h *SegmentHandler) CreateSegment(c *gin.Context) {
	var segment models.Segment
	if !bindJSON(c, &segment) {
		return
	}
	res, err := h.segmentService.CreateSegment(c.Request.Context(), &segment)
	if err != nil {
		serverError(c, "create segment", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// UpdateSegment handles PUT /segment-details/:id
func (h *SegmentHandler) UpdateSegment(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}
	var patch models.SegmentPatch
	if !bindPatch(c, &patch) {
		return
	}
	res, err := h.segmentService.UpdateSegment(c.Request.Context(), id, &patch)
	if err != nil {
		updateError(c, "update segment", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteSegment handles DELETE /segment/:id
func (h *SegmentHandler) DeleteSegment(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}
	res, err := h.segmentService.DeleteSegment(c.Request.Context(), id)
	if err != nil {
		serverError(c, "delete segment", err)
		return
	}
	c.JSON(http.StatusOK, res)
}
