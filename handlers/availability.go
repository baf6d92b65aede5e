package handlers

import (
	"net/http"
	"time"

	"fixify/services/availability"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes the slot resolver.
type AvailabilityHandler struct {
	Svc availability.AvailabilityService
}

func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Svc: svc}
}

// GetOpenSlots returns the open slot labels for a category and date.
// GET /api/availability?category=plumbing&date=2026-08-28
func (h *AvailabilityHandler) GetOpenSlots(c *gin.Context) {
	category := c.Query("category")
	date := c.Query("date")
	if category == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category and date are required"})
		return
	}
	if _, err := time.ParseInLocation("2006-01-02", date, time.Local); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	slots, err := h.Svc.OpenSlots(c.Request.Context(), category, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"category":  category,
		"date":      date,
		"openSlots": slots,
	})
}
