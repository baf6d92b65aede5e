package handlers

import (
	"net/http"

	"fixify/models"
	"fixify/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the status transition endpoint.
type BookingHandler struct {
	Coordinator booking.BookingCoordinator
}

func NewBookingHandler(coord booking.BookingCoordinator) *BookingHandler {
	return &BookingHandler{Coordinator: coord}
}

type statusUpdateInput struct {
	Status models.RequestStatus `json:"status" binding:"required"`
}

// UpdateStatus advances a request through its lifecycle. Acceptance by a
// technician also opens the conversation with the customer.
// PATCH /api/requests/:id/status
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing profile"})
		return
	}

	var input statusUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	switch input.Status {
	case models.StatusAccepted, models.StatusEnRoute, models.StatusCompleted, models.StatusCancelled:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported status"})
		return
	}

	if err := h.Coordinator.Advance(c.Request.Context(), c.Param("id"), input.Status, profile); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": input.Status})
}
