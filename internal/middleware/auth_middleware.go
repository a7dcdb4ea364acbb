package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mcpitc/mcpitc-backend/internal/metrics"
	"github.com/mcpitc/mcpitc-backend/pkg/jwt"
	"github.com/sirupsen/logrus"
)

// TokenCookie is the name of the cookie carrying the session token.
const TokenCookie = "token"

// Context keys set by RequireAuthenticated.
const (
	ClaimsKey    = "claims"
	UserEmailKey = "userEmail"
)

// TokenVerifier verifies a session token and returns its claims
type TokenVerifier interface {
	Verify(token string) (map[string]interface{}, error)
}

// AdminChecker reports whether an email belongs to an admin
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// RequireAuthenticated rejects requests without a valid session cookie and
// stores the decoded claims in the context.
func RequireAuthenticated(tokens TokenVerifier, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(TokenCookie)
		if err != nil || token == "" {
			logger.WithField("path", c.FullPath()).Warn("auth: session cookie is missing")
			metrics.RecordAuthRejection("missing_token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized User"})
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			logger.WithError(err).WithField("path", c.FullPath()).Warn("auth: session token rejected")
			metrics.RecordAuthRejection("invalid_token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Access"})
			return
		}

		c.Set(ClaimsKey, claims)
		if email, ok := jwt.EmailFromClaims(claims); ok {
			c.Set(UserEmailKey, email)
		}
		c.Next()
	}
}

// RequireAdmin must run after RequireAuthenticated. It looks the caller up by
// the email claim and rejects anyone whose stored role is not admin.
func RequireAdmin(admins AdminChecker, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := UserEmail(c)
		if email == "" {
			metrics.RecordAuthRejection("missing_email")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Access"})
			return
		}

		ok, err := admins.IsAdmin(c.Request.Context(), email)
		if err != nil {
			logger.WithError(err).WithField("email", email).Error("auth: admin lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify admin: " + err.Error()})
			return
		}
		if !ok {
			logger.WithField("email", email).Debug("auth: caller is not an admin")
			metrics.RecordAuthRejection("not_admin")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Access"})
			return
		}
		c.Next()
	}
}

// UserEmail returns the email claim stored by RequireAuthenticated, or "".
func UserEmail(c *gin.Context) string {
	return c.GetString(UserEmailKey)
}
