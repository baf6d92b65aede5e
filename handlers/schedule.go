package handlers

import (
	"errors"
	"net/http"
	"time"

	"fixify/services/schedule"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler exposes a technician's personal blackout management.
type ScheduleHandler struct {
	Svc schedule.ScheduleService
}

func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Svc: svc}
}

type slotInput struct {
	Slot string `json:"slot" binding:"required"`
}

func validDateParam(c *gin.Context) (string, bool) {
	date := c.Param("date")
	if _, err := time.ParseInLocation("2006-01-02", date, time.Local); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return "", false
	}
	return date, true
}

// GetBlackouts lists the authenticated technician's blocked slots for a date.
// GET /api/schedule/:date
func (h *ScheduleHandler) GetBlackouts(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing profile"})
		return
	}
	date, ok := validDateParam(c)
	if !ok {
		return
	}
	slots, err := h.Svc.BlockedSlots(c.Request.Context(), profile.ID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "blockedSlots": slots})
}

// BlockSlot marks one slot as personally unavailable.
// POST /api/schedule/:date/block
func (h *ScheduleHandler) BlockSlot(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing profile"})
		return
	}
	date, ok := validDateParam(c)
	if !ok {
		return
	}
	var input slotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Svc.BlockSlot(c.Request.Context(), profile.ID, date, input.Slot); err != nil {
		if errors.Is(err, schedule.ErrInvalidSlot) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown slot label"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "slot blocked"})
}

// UnblockSlot reopens a previously blocked slot.
// POST /api/schedule/:date/unblock
func (h *ScheduleHandler) UnblockSlot(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing profile"})
		return
	}
	date, ok := validDateParam(c)
	if !ok {
		return
	}
	var input slotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Svc.UnblockSlot(c.Request.Context(), profile.ID, date, input.Slot); err != nil {
		if errors.Is(err, schedule.ErrInvalidSlot) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown slot label"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "slot unblocked"})
}
