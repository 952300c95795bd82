package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/dmitrijs2005/messagely/internal/server/policy"
	"github.com/gin-gonic/gin"
)

type sendMessageRequest struct {
	// FromUsername is optional; when present it must name the caller.
	FromUsername string `json:"from_username"`
	ToUsername   string `json:"to_username" binding:"required"`
	Body         string `json:"body" binding:"required"`
}

// messageID parses the :id path parameter. A non-numeric or non-positive id
// is a client error and never reaches the store.
func messageID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: message id must be a positive integer", common.ErrValidation)
	}
	return id, nil
}

// GetMessage returns a message with both endpoint profiles resolved. Only the
// sender and the recipient may read it.
func (s *HTTPServer) GetMessage(c *gin.Context) {
	id, err := messageID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	msg, err := s.messages.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	if !policy.CanReadMessage(currentUsername(c), msg) {
		respondError(c, common.ErrForbidden)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// SendMessage creates a message. The sender is always the authenticated
// identity; the request body names only the recipient.
func (s *HTTPServer) SendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: to_username and body are required", common.ErrValidation))
		return
	}

	identity := currentUsername(c)
	if req.FromUsername != "" && !policy.CanSendAs(identity, req.FromUsername) {
		respondError(c, common.ErrForbidden)
		return
	}

	msg, err := s.messages.Send(c.Request.Context(), identity, req.ToUsername, req.Body)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

// MarkMessageRead sets the read timestamp on a message. Only the recipient
// may mark it, and repeating the call leaves the original timestamp intact.
func (s *HTTPServer) MarkMessageRead(c *gin.Context) {
	id, err := messageID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	msg, err := s.messages.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	if !policy.CanMarkRead(currentUsername(c), msg) {
		respondError(c, common.ErrForbidden)
		return
	}

	updated, err := s.messages.MarkRead(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": gin.H{"id": updated.ID, "read_at": updated.ReadAt}})
}
