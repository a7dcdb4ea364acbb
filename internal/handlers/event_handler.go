package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mcpitc/mcpitc-backend/internal/models"
	"github.com/mcpitc/mcpitc-backend/internal/services"
)

// EventHandler handles event HTTP requests
type EventHandler struct {
	eventService services.EventService
}

func NewEventHandler(eventService services.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// ListEvents handles GET /events
func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.eventService.ListEvents(c.Request.Context())
	if err != nil {
		serverError(c, "get events", err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetEvent handles GET /event/:id
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}
	event, err := h.eventService.GetEvent(c.Request.Context(), id)
	if err != nil {
		serverError(c, "get event", err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// GetEventByName handles GET /eventName/:name
func (h *EventHandler) GetEventByName(c *gin.Context) {
	event, err := h.eventService.GetEventByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		serverError(c, "get event", err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// CreateEvent handles POST /events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var event models.Event
	if !bindJSON(c, &event) {
		return
	}
	res, err := h.eventService.CreateEvent(c.Request.Context(), &event)
	if err != nil {
		serverError(c, "create event", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteEvent handles DELETE /event/:id
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}
	res, err := h.eventService.DeleteEvent(c.Request.Context(), id)
	if err != nil {
		serverError(c, "delete event", err)
		return
	}
	c.JSON(http.StatusOK, res)
}
