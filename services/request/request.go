package request

import (
	"context"
	"time"

	requestRepo "fixify/database/repository/request"
	"fixify/models"

	"github.com/google/uuid"
)

// RequestService covers service-request creation and the list views the
// apps render.
type RequestService interface {
	CreateRequest(ctx context.Context, input CreateRequestInput, customer *models.UserProfile) (*models.ServiceRequest, error)
	GetRequest(ctx context.Context, id string) (*models.ServiceRequest, error)
	CustomerRequests(ctx context.Context, customerID string) ([]models.ServiceRequest, error)
	// TechnicianFeed merges the open pool with the technician's own jobs.
	TechnicianFeed(ctx context.Context, technicianID string) ([]models.ServiceRequest, error)
}

// CreateRequestInput carries the customer-supplied booking fields. Field
// completeness is enforced by binding at the handler.
type CreateRequestInput struct {
	Category    string         `json:"category" binding:"required"`
	Description string         `json:"description" binding:"required"`
	Location    string         `json:"location" binding:"required"`
	Urgency     models.Urgency `json:"urgency" binding:"required"`
	RequestedAt time.Time      `json:"requestedAt" binding:"required"`
	PhotoURL    string         `json:"photoUrl"`
}

// DefaultRequestService is the production implementation.
type DefaultRequestService struct {
	Requests requestRepo.RequestRepository
}

// CreateRequest files a new pending request for the customer.
func (s *DefaultRequestService) CreateRequest(ctx context.Context, input CreateRequestInput, customer *models.UserProfile) (*models.ServiceRequest, error) {
	req := &models.ServiceRequest{
		ID:             uuid.New().String(),
		CustomerID:     customer.ID,
		CustomerName:   customer.FullName,
		CustomerAvatar: customer.AvatarURL,
		Category:       input.Category,
		Description:    input.Description,
		Location:       input.Location,
		Urgency:        input.Urgency,
		RequestedAt:    input.RequestedAt,
		Status:         models.StatusPending,
		PaymentStatus:  models.PaymentNone,
		PhotoURL:       input.PhotoURL,
	}
	if err := s.Requests.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// GetRequest retrieves one request.
func (s *DefaultRequestService) GetRequest(ctx context.Context, id string) (*models.ServiceRequest, error) {
	return s.Requests.GetByID(ctx, id)
}

// CustomerRequests returns the customer's requests, newest first.
func (s *DefaultRequestService) CustomerRequests(ctx context.Context, customerID string) ([]models.ServiceRequest, error) {
	return s.Requests.ListByCustomer(ctx, customerID)
}

// TechnicianFeed returns the open pool merged with the technician's own
// assigned jobs, deduplicated and newest first.
func (s *DefaultRequestService) TechnicianFeed(ctx context.Context, technicianID string) ([]models.ServiceRequest, error) {
	pending, err := s.Requests.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	assigned, err := s.Requests.ListByTechnician(ctx, technicianID)
	if err != nil {
		return nil, err
	}
	return MergeRequests(pending, assigned), nil
}
