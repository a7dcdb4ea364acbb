package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mcpitc/mcpitc-backend/internal/models"
	"github.com/mcpitc/mcpitc-backend/internal/services"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService services.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetAllUsers handles GET /users
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.userService.GetAllUsers(c.Request.Context())
	if err != nil {
		serverError(c, "get users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserByEmail handles GET /user/:email. An unknown email yields null.
func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	user, err := h.userService.GetUserByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		serverError(c, "get user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// SaveUser handles PUT /user
func (h *UserHandler) SaveUser(c *gin.Context) {
	var req models.UserRequest
	if !bindPatch(c, &req) {
		return
	}

	user, err := h.userService.SaveUser(c.Request.Context(), &req)
	if err != nil {
		serverError(c, "save user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser handles PATCH /user/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}
	var patch models.UserRolePatch
	if !bindPatch(c, &patch) {
		return
	}

	res, err := h.userService.UpdateUser(c.Request.Context(), id, &patch)
	if err != nil {
		updateError(c, "update user", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// UpdateDesignation handles PATCH /user/designation/:email
func (h *UserHandler) UpdateDesignation(c *gin.Context) {
	var patch models.DesignationPatch
	if !bindPatch(c, &patch) {
		return
	}

	res, err := h.userService.UpdateDesignation(c.Request.Context(), c.Param("email"), patch.Designation)
	if err != nil {
		serverError(c, "update designation", err)
		return
	}
	c.JSON(http.StatusOK, res)
}
