package requestRepo

import (
	"context"
	"fmt"
	"time"

	"fixify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoRequestRepo) findRequests(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.ServiceRequest, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.requestColl.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to query service requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []models.ServiceRequest
	for cursor.Next(ctx) {
		var req models.ServiceRequest
		if err := cursor.Decode(&req); err != nil {
			return nil, fmt.Errorf("failed to decode service request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// ListPending returns all requests still awaiting a technician, newest first.
func (r *MongoRequestRepo) ListPending(ctx context.Context) ([]models.ServiceRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "requestedAt", Value: -1}})
	return r.findRequests(ctx, bson.M{"status": models.StatusPending}, opts)
}

// ListByCustomer returns all requests filed by a customer, newest first.
func (r *MongoRequestRepo) ListByCustomer(ctx context.Context, customerID string) ([]models.ServiceRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "requestedAt", Value: -1}})
	return r.findRequests(ctx, bson.M{"customerId": customerID}, opts)
}

// ListByTechnician returns all requests assigned to a technician, newest first.
func (r *MongoRequestRepo) ListByTechnician(ctx context.Context, technicianID string) ([]models.ServiceRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "requestedAt", Value: -1}})
	return r.findRequests(ctx, bson.M{"technician.id": technicianID}, opts)
}

// ListAssignedInWindow returns requests assigned to any of the given
// technicians whose requested time falls within [from, to). This is the
// committed-jobs source of the busy-set builder.
func (r *MongoRequestRepo) ListAssignedInWindow(ctx context.Context, technicianIDs []string, from, to time.Time) ([]models.ServiceRequest, error) {
	if len(technicianIDs) == 0 {
		return nil, nil
	}
	filter := bson.M{
		"technician.id": bson.M{"$in": technicianIDs},
		"requestedAt":   bson.M{"$gte": from, "$lt": to},
	}
	return r.findRequests(ctx, filter)
}

// ListAll returns every request, newest first (admin surface).
func (r *MongoRequestRepo) ListAll(ctx context.Context) ([]models.ServiceRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "requestedAt", Value: -1}})
	return r.findRequests(ctx, bson.M{}, opts)
}
