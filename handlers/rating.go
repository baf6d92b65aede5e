package handlers

import (
	"net/http"

	"fixify/models"
	"fixify/services/rating"

	"github.com/gin-gonic/gin"
)

// RatingHandler exposes post-completion rating submission.
type RatingHandler struct {
	Aggregator rating.RatingAggregator
}

func NewRatingHandler(agg rating.RatingAggregator) *RatingHandler {
	return &RatingHandler{Aggregator: agg}
}

type ratingInput struct {
	Stars   int    `json:"stars" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// SubmitRating records a star rating for the other party on a request.
// The rater role is derived from the authenticated profile.
// POST /api/requests/:id/rating
func (h *RatingHandler) SubmitRating(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing profile"})
		return
	}

	var input ratingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	var raterRole models.RaterRole
	switch profile.Role {
	case models.RoleCustomer:
		raterRole = models.RaterCustomer
	case models.RoleTechnician:
		raterRole = models.RaterTechnician
	default:
		c.JSON(http.StatusForbidden, gin.H{"error": "account cannot submit ratings"})
		return
	}

	err := h.Aggregator.AddRating(c.Request.Context(), c.Param("id"), raterRole, models.Rating{
		Stars:   input.Stars,
		Comment: input.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rating recorded"})
}
