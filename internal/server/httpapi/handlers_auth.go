package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Login verifies credentials and returns a session token.
func (s *HTTPServer) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: username and password are required", common.ErrValidation))
		return
	}

	token, err := s.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// Register creates a new user and logs them in. A taken username is reported
// as a registration failure without exposing store detail.
func (s *HTTPServer) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: username, password, first_name, last_name and phone are required", common.ErrValidation))
		return
	}

	_, token, err := s.users.Register(c.Request.Context(),
		req.Username, req.Password, req.FirstName, req.LastName, req.Phone)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateUser) {
			c.JSON(http.StatusInternalServerError, errorBody{Error: errorDetail{
				Kind:    "registration_failed",
				Message: "registration failed",
			}})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tokenResponse{Token: token})
}
