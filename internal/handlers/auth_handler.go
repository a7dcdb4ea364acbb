package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mcpitc/mcpitc-backend/internal/middleware"
	"github.com/mcpitc/mcpitc-backend/internal/models"
	"github.com/mcpitc/mcpitc-backend/internal/services"
	"github.com/sirupsen/logrus"
)

// AuthHandler handles session cookie HTTP requests
type AuthHandler struct {
	authService services.AuthService
	// secureCookies switches the cookie to Secure with SameSite=None for
	// cross-site production frontends.
	secureCookies bool
	logger        *logrus.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService services.AuthService, secureCookies bool, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		secureCookies: secureCookies,
		logger:        logger,
	}
}

// IssueToken handles POST /jwt
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req models.SessionRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := h.authService.IssueToken(c.Request.Context(), req)
	if errors.Is(err, services.ErrEmailRequired) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		serverError(c, "issue token", err)
		return
	}

	if h.secureCookies {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
	c.SetCookie(middleware.TokenCookie, token, 0, "/", "", h.secureCookies, true)
	c.JSON(http.StatusOK, models.SessionResponse{Success: true})
}

// Logout handles POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.logger.WithError(err).Debug("logout body not decoded")
	}
	h.logger.WithField("user", body).Info("logging out")

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, models.SessionResponse{Success: true})
}
