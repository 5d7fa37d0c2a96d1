package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-reservation-backend/config"
	"hotel-reservation-backend/services"
	"hotel-reservation-backend/utils"
)

// respondServiceError translates a service error into an HTTP response.
// Unrecognized errors become a generic 500; the detail goes to the log
// only.
func respondServiceError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		utils.JSONFieldError(c, http.StatusBadRequest, vErr.Message, vErr.Fields)
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrConflict):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "invalid email or password")
	default:
		if config.Logger != nil {
			config.Logger.Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
		}
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	}
}
