package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mcpitc/mcpitc-backend/internal/services"
	"github.com/mcpitc/mcpitc-backend/pkg/jwt"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T, logger *logrus.Logger) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := jwt.NewSessionTokenService("handler-secret", 0)
	require.NoError(t, err)

	h := NewAuthHandler(services.NewAuthService(tokens), true, logger)
	r := gin.New()
	r.POST("/logout", h.Logout)
	return r
}

func TestLogout_LogsUndecodableBody(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.DebugLevel)
	r := newAuthRouter(t, logger)

	req := httptest.NewRequest(http.MethodPost, "/logout", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	assert.Contains(t, buf.String(), "logout body not decoded")
	assert.Contains(t, buf.String(), "level=debug")
}

func TestLogout_DecodedBodyIsNotReported(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.DebugLevel)
	r := newAuthRouter(t, logger)

	req := httptest.NewRequest(http.MethodPost, "/logout", strings.NewReader(`{"email":"a@x.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, buf.String(), "logout body not decoded")
	assert.Contains(t, buf.String(), "logging out")
}
