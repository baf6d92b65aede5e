package handlers

import (
	"errors"
	"net/http"

	"fixify/models"
	"fixify/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the wired handlers for route registration.
type HandlerBundle struct {
	Availability *AvailabilityHandler
	Requests     *RequestHandler
	Booking      *BookingHandler
	Rating       *RatingHandler
	Schedule     *ScheduleHandler
	Chat         *ChatHandler
	Users        *UserHandler
	Payments     *PaymentHandler
	Storage      *StorageHandler
	Admin        *AdminHandler
}

// currentProfile pulls the authenticated profile set by the auth middleware.
func currentProfile(c *gin.Context) (*models.UserProfile, bool) {
	val, exists := c.Get("profile")
	if !exists {
		return nil, false
	}
	profile, ok := val.(*models.UserProfile)
	return profile, ok
}

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, utils.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
	case errors.Is(err, utils.ErrMissingParty):
		utils.JSONError(c, http.StatusConflict, "Rated party unresolved", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Operation failed", err.Error())
	}
}
