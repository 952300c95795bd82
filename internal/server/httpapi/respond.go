package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/gin-gonic/gin"
)

// errorBody is the JSON shape every failed request returns.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// statusAndKind maps service sentinels to an HTTP status and a stable
// machine-readable kind. Unknown errors collapse to a generic 500 so
// internal detail never leaks to clients.
func statusAndKind(err error) (int, string, string) {
	switch {
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest, "validation_error", err.Error()
	case errors.Is(err, common.ErrInvalidCredentials):
		return http.StatusBadRequest, "invalid_credentials", "invalid username or password"
	case errors.Is(err, common.ErrTokenExpired):
		return http.StatusUnauthorized, "authentication_error", "token expired"
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrUnauthenticated):
		return http.StatusUnauthorized, "authentication_error", "authentication required"
	case errors.Is(err, common.ErrForbidden):
		return http.StatusUnauthorized, "unauthorized", "unauthorized"
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound, "not_found", "not found"
	default:
		return http.StatusInternalServerError, "internal_error", "internal error"
	}
}

func respondError(c *gin.Context, err error) {
	status, kind, message := statusAndKind(err)
	c.JSON(status, errorBody{Error: errorDetail{Kind: kind, Message: message}})
}

func abortWithError(c *gin.Context, err error) {
	status, kind, message := statusAndKind(err)
	c.AbortWithStatusJSON(status, errorBody{Error: errorDetail{Kind: kind, Message: message}})
}
