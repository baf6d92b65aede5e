package userRepo

import (
	"context"
	"fmt"
	"time"

	"fixify/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GetQualifiedTechnicians returns technician profiles whose skills array
// contains the given capability tag. An empty tag matches nothing.
func (r *MongoUserRepo) GetQualifiedTechnicians(ctx context.Context, skill string) ([]models.UserProfile, error) {
	if skill == "" {
		return nil, nil
	}

	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"role":   models.RoleTechnician,
		"skills": skill,
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query qualified technicians for %q: %w", skill, err)
	}
	defer cursor.Close(ctx)

	var technicians []models.UserProfile
	for cursor.Next(ctx) {
		var t models.UserProfile
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode technician: %w", err)
		}
		technicians = append(technicians, t)
	}
	return technicians, nil
}
