package userRepo

import (
	"context"

	"fixify/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for profile data access.
type UserRepository interface {
	// GetByID retrieves a profile by its unique ID.
	GetByID(ctx context.Context, id string) (*models.UserProfile, error)
	// Create inserts a new profile record.
	Create(ctx context.Context, user *models.UserProfile) error
	// Update modifies an existing profile record.
	Update(ctx context.Context, user *models.UserProfile) error
	// UpdateFCMToken stores the push token for a profile.
	UpdateFCMToken(ctx context.Context, id, token string) error
	// GetQualifiedTechnicians returns technicians whose skill set contains
	// the given capability tag.
	GetQualifiedTechnicians(ctx context.Context, skill string) ([]models.UserProfile, error)
	// GetByIDWithProjection retrieves a profile by ID with a projection.
	GetByIDWithProjection(ctx context.Context, id string, projection bson.M) (*models.UserProfile, error)
	// GetAll retrieves all profiles (admin surface).
	GetAll(ctx context.Context) ([]models.UserProfile, error)
}
