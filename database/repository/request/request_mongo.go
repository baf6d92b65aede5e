package requestRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fixify/database"
	"fixify/models"
	"fixify/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRequestRepo implements RequestRepository using MongoDB. The acceptance
// and rating transactions also touch the users, conversations and messages
// collections, so the repo holds handles to all four.
type MongoRequestRepo struct {
	requestColl      *mongo.Collection
	userColl         *mongo.Collection
	conversationColl *mongo.Collection
	messageColl      *mongo.Collection
}

// NewMongoRequestRepo creates a new RequestRepository backed by MongoDB.
func NewMongoRequestRepo() RequestRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	repo := &MongoRequestRepo{
		requestColl:      db.Collection("service_requests"),
		userColl:         db.Collection("users"),
		conversationColl: db.Collection("conversations"),
		messageColl:      db.Collection("messages"),
	}
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

// ensureIndexes creates indexes for the busy-set day-range query and the
// per-user listings.
func (r *MongoRequestRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "customerId", Value: 1}, {Key: "requestedAt", Value: -1}}},
		{Keys: bson.D{{Key: "technician.id", Value: 1}, {Key: "requestedAt", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.requestColl.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new service request document.
func (r *MongoRequestRepo) Create(ctx context.Context, req *models.ServiceRequest) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now

	if _, err := r.requestColl.InsertOne(ctx, req); err != nil {
		return fmt.Errorf("failed to create service request: %w", err)
	}
	return nil
}

// GetByID retrieves a request by its unique ID.
func (r *MongoRequestRepo) GetByID(ctx context.Context, id string) (*models.ServiceRequest, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var req models.ServiceRequest
	if err := r.requestColl.FindOne(ctx, bson.M{"id": id}).Decode(&req); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("request %s: %w", id, utils.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch request with id %s: %w", id, err)
	}
	return &req, nil
}

// UpdateStatus writes only the lifecycle status field.
func (r *MongoRequestRepo) UpdateStatus(ctx context.Context, id string, status models.RequestStatus) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.requestColl.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update status for request %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("request %s: %w", id, utils.ErrNotFound)
	}
	return nil
}

// UpdatePayment writes the payment status and, when non-nil, the invoice.
func (r *MongoRequestRepo) UpdatePayment(ctx context.Context, id string, status models.PaymentStatus, invoice *models.Invoice) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"paymentStatus": status, "updatedAt": time.Now()}
	if invoice != nil {
		set["invoice"] = invoice
	}

	result, err := r.requestColl.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update payment for request %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("request %s: %w", id, utils.ErrNotFound)
	}
	return nil
}

// SetPhoto attaches an uploaded photo reference.
func (r *MongoRequestRepo) SetPhoto(ctx context.Context, id, photoURL string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.requestColl.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"photoUrl": photoURL, "updatedAt": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to set photo for request %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("request %s: %w", id, utils.ErrNotFound)
	}
	return nil
}
