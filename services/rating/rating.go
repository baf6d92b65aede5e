package rating

import (
	"context"
	"fmt"
	"time"

	requestRepo "fixify/database/repository/request"
	"fixify/models"
	"fixify/utils"

	"go.uber.org/zap"
)

// RatingAggregator records a rating on a request and folds it into the rated
// party's running average.
type RatingAggregator interface {
	AddRating(ctx context.Context, requestID string, raterRole models.RaterRole, rating models.Rating) error
}

// DefaultRatingAggregator is the production implementation.
type DefaultRatingAggregator struct {
	Requests requestRepo.RequestRepository
}

// AddRating resolves the rated party from the request: a customer rates the
// assigned technician, a technician rates the customer. The request write
// and the profile read-modify-write commit in one isolated transaction so
// concurrent ratings for the same party never lose an update.
func (a *DefaultRatingAggregator) AddRating(
	ctx context.Context,
	requestID string,
	raterRole models.RaterRole,
	rating models.Rating,
) error {
	if rating.Stars < 1 || rating.Stars > 5 {
		return fmt.Errorf("rating stars %d out of range", rating.Stars)
	}
	if rating.CreatedAt.IsZero() {
		rating.CreatedAt = time.Now()
	}

	req, err := a.Requests.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	var ratedUserID string
	switch raterRole {
	case models.RaterCustomer:
		if req.Technician == nil {
			return fmt.Errorf("request %s has no technician assigned: %w", requestID, utils.ErrMissingParty)
		}
		ratedUserID = req.Technician.ID
	case models.RaterTechnician:
		if req.CustomerID == "" {
			return fmt.Errorf("request %s has no customer: %w", requestID, utils.ErrMissingParty)
		}
		ratedUserID = req.CustomerID
	default:
		return fmt.Errorf("unknown rater role %q", raterRole)
	}

	if err := a.Requests.RecordRatingTransactionally(ctx, requestID, raterRole, rating, ratedUserID); err != nil {
		return err
	}

	utils.GetLogger().Info("rating recorded",
		zap.String("requestID", requestID),
		zap.String("ratedUserID", ratedUserID),
		zap.Int("stars", rating.Stars),
	)
	return nil
}
