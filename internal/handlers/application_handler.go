package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mcpitc/mcpitc-backend/internal/middleware"
	"github.com/mcpitc/mcpitc-backend/internal/models"
	"github.com/mcpitc/mcpitc-backend/internal/services"
)

// ApplicationHandler handles executive application HTTP requests
type ApplicationHandler struct {
	applicationService services.ApplicationService
}

func NewApplicationHandler(applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// ListApplications handles GET /executiveFormCollection
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	applications, err := h.applicationService.ListApplications(c.Request.Context())
	if err != nil {
		serverError(c, "get applications", err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

// ListMyApplications handles GET /executiveFormCollection/myForms/:email.
// Only the owner of the email may read them.
func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	email := c.Param("email")
	if middleware.UserEmail(c) != email {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Access"})
		return
	}

	applications, err := h.applicationService.ListApplicationsByEmail(c.Request.Context(), email)
	if err != nil {
		serverError(c, "get applications", err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

// GetApplication handles GET /executiveFormCollection/:id
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}
	application, err := h.applicationService.GetApplication(c.Request.Context(), id)
	if err != nil {
		serverError(c, "get application", err)
		return
	}
	c.JSON(http.StatusOK, application)
}

// SubmitApplication handles POST /executiveFormCollection
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	var application models.ExecutiveApplication
	if !bindJSON(c, &application) {
		return
	}

	res, err := h.applicationService.SubmitApplication(c.Request.Context(), &application)
	var exists *services.ApplicationExistsError
	if errors.As(err, &exists) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":     exists.Error(),
			"application": exists.Existing,
		})
		return
	}
	if err != nil {
		serverError(c, "submit application", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// UpdateApplication handles PUT /executiveFormCollection/:id
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}
	var patch models.ExecutiveApplicationPatch
	if !bindPatch(c, &patch) {
		return
	}
	res, err := h.applicationService.UpdateApplication(c.Request.Context(), id, &patch)
	if err != nil {
		updateError(c, "update application", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteApplication handles DELETE /executiveFormCollection/:email
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	res, err := h.applicationService.DeleteApplicationByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		serverError(c, "delete application", err)
		return
	}
	c.JSON(http.StatusOK, res)
}
