package handlers

import (
	"net/http"

	"fixify/models"
	"fixify/services/request"

	"github.com/gin-gonic/gin"
)

// RequestHandler exposes service-request creation and listings.
type RequestHandler struct {
	Svc request.RequestService
}

func NewRequestHandler(svc request.RequestService) *RequestHandler {
	return &RequestHandler{Svc: svc}
}

// CreateRequest files a new request for the authenticated customer.
// POST /api/requests
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing profile"})
		return
	}

	var input request.CreateRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	req, err := h.Svc.CreateRequest(c.Request.Context(), input, profile)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, req)
}

// GetRequest returns one request.
// GET /api/requests/:id
func (h *RequestHandler) GetRequest(c *gin.Context) {
	req, err := h.Svc.GetRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// MyRequests returns the authenticated customer's requests, newest first.
// GET /api/requests/mine
func (h *RequestHandler) MyRequests(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing profile"})
		return
	}
	list, err := h.Svc.CustomerRequests(c.Request.Context(), profile.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": list})
}

// TechnicianFeed returns the open pool merged with the technician's jobs.
// GET /api/requests/feed
func (h *RequestHandler) TechnicianFeed(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok || profile.Role != models.RoleTechnician {
		c.JSON(http.StatusForbidden, gin.H{"error": "technician account required"})
		return
	}
	list, err := h.Svc.TechnicianFeed(c.Request.Context(), profile.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": list})
}
