package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListUsers returns the public profiles of all registered users.
func (s *HTTPServer) ListUsers(c *gin.Context) {
	profiles, err := s.users.ListProfiles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": profiles})
}

// GetUser returns the full record of the profile owner. requireCorrectUser
// has already established that the caller owns the profile.
func (s *HTTPServer) GetUser(c *gin.Context) {
	user, err := s.users.GetUser(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// ListMessagesFrom returns the messages the profile owner sent.
func (s *HTTPServer) ListMessagesFrom(c *gin.Context) {
	msgs, err := s.messages.ListFrom(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

// ListMessagesTo returns the messages the profile owner received.
func (s *HTTPServer) ListMessagesTo(c *gin.Context) {
	msgs, err := s.messages.ListTo(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}
