package handlers

import (
	"crypto/subtle"
	"net/http"
	"time"

	"fixify/config"
	requestRepo "fixify/database/repository/request"
	userRepo "fixify/database/repository/user"
	"fixify/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the back-office surface, guarded by admin JWTs.
type AdminHandler struct {
	Requests requestRepo.RequestRepository
	Users    userRepo.UserRepository
}

func NewAdminHandler(requests requestRepo.RequestRepository, users userRepo.UserRepository) *AdminHandler {
	return &AdminHandler{Requests: requests, Users: users}
}

// Login exchanges the configured admin API key for a scoped JWT.
// POST /api/admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var input struct {
		AdminID string `json:"adminId" binding:"required"`
		APIKey  string `json:"apiKey" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	expected := config.AppConfig.AdminAPIKey
	if expected == "" || subtle.ConstantTimeCompare([]byte(input.APIKey), []byte(expected)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid admin credentials"})
		return
	}

	token, err := utils.GenerateAdminToken(input.AdminID, 12*time.Hour)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// ListRequests returns every service request.
// GET /api/admin/requests
func (h *AdminHandler) ListRequests(c *gin.Context) {
	list, err := h.Requests.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": list})
}

// ListUsers returns every profile.
// GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	list, err := h.Users.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": list})
}
