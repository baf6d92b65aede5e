package handlers

import (
	"net/http"
	"time"

	userRepo "fixify/database/repository/user"
	"fixify/models"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes profile management.
type UserHandler struct {
	Users userRepo.UserRepository
}

func NewUserHandler(users userRepo.UserRepository) *UserHandler {
	return &UserHandler{Users: users}
}

type createProfileInput struct {
	Role      models.Role `json:"role" binding:"required,oneof=customer technician"`
	FullName  string      `json:"fullName" binding:"required"`
	AvatarURL string      `json:"avatarUrl"`
	Skills    []string    `json:"skills"`
}

// CreateProfile stores the profile for a freshly authenticated account.
// The profile ID is the Firebase UID from the verified token.
// POST /api/users/profile
func (h *UserHandler) CreateProfile(c *gin.Context) {
	uid := c.GetString("userID")
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authenticated user"})
		return
	}

	var input createProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Role == models.RoleTechnician && len(input.Skills) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "technician profile needs at least one skill"})
		return
	}

	now := time.Now()
	profile := &models.UserProfile{
		ID:        uid,
		Role:      input.Role,
		FullName:  input.FullName,
		AvatarURL: input.AvatarURL,
		Skills:    input.Skills,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.Users.Create(c.Request.Context(), profile); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// GetProfile returns the authenticated user's own profile.
// GET /api/users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

type fcmTokenInput struct {
	Token string `json:"token" binding:"required"`
}

// UpdateFCMToken stores the device push token for the authenticated user.
// PUT /api/users/me/fcm-token
func (h *UserHandler) UpdateFCMToken(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing profile"})
		return
	}
	var input fcmTokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Users.UpdateFCMToken(c.Request.Context(), profile.ID, input.Token); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "token updated"})
}
