package scheduleRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fixify/database"
	"fixify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoScheduleRepo implements ScheduleRepository using MongoDB.
type MongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo creates a new ScheduleRepository backed by MongoDB.
func NewMongoScheduleRepo() ScheduleRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("schedule_blocks")
	repo := &MongoScheduleRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, timeout)
}

func (r *MongoScheduleRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "technicianId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetBlock returns the block for one technician/day, or nil if absent.
// An absent document is equivalent to a fully available day.
func (r *MongoScheduleRepo) GetBlock(ctx context.Context, technicianID, date string) (*models.ScheduleBlock, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var block models.ScheduleBlock
	err := r.coll.FindOne(ctx, bson.M{"id": models.ScheduleBlockID(technicianID, date)}).Decode(&block)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch schedule block: %w", err)
	}
	return &block, nil
}

// GetBlocksForDate returns the blocks on a date for any of the technicians.
func (r *MongoScheduleRepo) GetBlocksForDate(ctx context.Context, technicianIDs []string, date string) ([]models.ScheduleBlock, error) {
	if len(technicianIDs) == 0 {
		return nil, nil
	}

	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"date":         date,
		"technicianId": bson.M{"$in": technicianIDs},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule blocks: %w", err)
	}
	defer cursor.Close(ctx)

	var blocks []models.ScheduleBlock
	for cursor.Next(ctx) {
		var b models.ScheduleBlock
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode schedule block: %w", err)
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

// AddSlot marks one slot unavailable. The upsert merges into an existing
// block for the day; $addToSet keeps repeated toggles idempotent.
func (r *MongoScheduleRepo) AddSlot(ctx context.Context, technicianID, date, slot string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": models.ScheduleBlockID(technicianID, date)}
	update := bson.M{
		"$addToSet": bson.M{"slots": slot},
		"$set": bson.M{
			"technicianId": technicianID,
			"date":         date,
			"updatedAt":    time.Now(),
		},
	}
	opts := options.Update().SetUpsert(true)

	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to add blackout slot: %w", err)
	}
	return nil
}

// RemoveSlot marks one slot available again. Removing a slot that was never
// blocked is a no-op; the block document is kept even when its set empties.
func (r *MongoScheduleRepo) RemoveSlot(ctx context.Context, technicianID, date, slot string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": models.ScheduleBlockID(technicianID, date)}
	update := bson.M{
		"$pull": bson.M{"slots": slot},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	if _, err := r.coll.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to remove blackout slot: %w", err)
	}
	return nil
}
