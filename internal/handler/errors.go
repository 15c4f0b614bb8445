package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docsim/backend/internal/auth"
	"github.com/docsim/backend/internal/model"
	"github.com/docsim/backend/internal/service"
)

// writeError translates service and auth sentinels to a fixed HTTP status and
// message. Anything unrecognized becomes a generic 500.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{Message: "Password or email is invalid"})
	case errors.Is(err, auth.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{Message: "Invalid token"})
	case errors.Is(err, auth.ErrMissingCredentials):
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{Message: "Bearer credentials missing"})
	case errors.Is(err, auth.ErrAccessTokenRequired):
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{Message: "Access token is invalid"})
	case errors.Is(err, auth.ErrRefreshTokenRequired):
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{Message: "Refresh token is invalid"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, model.ErrorResponse{Message: "Insufficient permissions"})
	case errors.Is(err, service.ErrUserAlreadyExists):
		c.JSON(http.StatusConflict, model.ErrorResponse{Message: "User email or username already exists"})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, model.ErrorResponse{Message: "User email or id not found"})
	case errors.Is(err, service.ErrDocumentNotFound):
		c.JSON(http.StatusNotFound, model.ErrorResponse{Message: "Document title or id not found"})
	default:
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Message: "Internal server error"})
	}
}

func abortUnauthorized(c *gin.Context, err error) {
	writeError(c, err)
	c.Abort()
}
