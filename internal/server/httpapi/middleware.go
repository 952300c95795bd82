package httpapi

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/dmitrijs2005/messagely/internal/server/policy"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// identityKey is the gin context key carrying the authenticated username.
// Handlers read it through currentUsername, never from a global.
const identityKey = "identity"

// currentUsername returns the identity the request gate attached.
func currentUsername(c *gin.Context) string {
	return c.GetString(identityKey)
}

// requestLogger tags each request with a uuid and logs method, path, status
// and duration through the structured logger.
func (s *HTTPServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Header("X-Request-Id", requestID)

		c.Next()

		s.logger.Info(c.Request.Context(), "request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}

// bearerToken extracts the token from the Authorization header. The empty
// string means no token was presented.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// requireAuth verifies the bearer token and attaches the claimed username to
// the request context. An absent or invalid token fails the request before
// any handler logic runs.
func (s *HTTPServer) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abortWithError(c, common.ErrUnauthenticated)
			return
		}

		username, err := s.tokens.Verify(token)
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.Set(identityKey, username)
		c.Next()
	}
}

// requireCorrectUser enforces that the authenticated identity owns the
// profile named in the :username path parameter. It runs after requireAuth.
func (s *HTTPServer) requireCorrectUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := currentUsername(c)
		if !policy.CanAccessProfile(identity, c.Param("username")) {
			abortWithError(c, common.ErrForbidden)
			return
		}
		c.Next()
	}
}
