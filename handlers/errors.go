package handlers

import (
	"errors"
	"net/http"

	"huduma/services/booking"
	"huduma/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps the booking engine's error taxonomy onto HTTP
// statuses. Anything unrecognized is treated as an internal failure.
func respondServiceError(c *gin.Context, err error) {
	var (
		validationErr *booking.ValidationError
		notFoundErr   *booking.NotFoundError
		transitionErr *booking.InvalidTransitionError
		repoErr       *booking.RepositoryError
	)
	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", validationErr.Message)
	case errors.As(err, &notFoundErr):
		utils.JSONError(c, http.StatusNotFound, "Not found", notFoundErr.Message)
	case errors.As(err, &transitionErr):
		utils.JSONError(c, http.StatusConflict, "Invalid status transition", transitionErr.Error())
	case errors.As(err, &repoErr):
		utils.JSONError(c, http.StatusBadGateway, "Storage failure", repoErr.Message)
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
	}
}
