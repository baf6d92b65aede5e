package requestRepo

import (
	"context"
	"time"

	"fixify/models"
)

// RequestRepository defines data access for service requests, including the
// two multi-document atomic operations (acceptance and rating).
type RequestRepository interface {
	// Create inserts a new service request.
	Create(ctx context.Context, req *models.ServiceRequest) error
	// GetByID retrieves a request by its unique ID.
	GetByID(ctx context.Context, id string) (*models.ServiceRequest, error)
	// UpdateStatus writes only the lifecycle status field.
	UpdateStatus(ctx context.Context, id string, status models.RequestStatus) error
	// UpdatePayment writes the payment status and optional invoice.
	UpdatePayment(ctx context.Context, id string, status models.PaymentStatus, invoice *models.Invoice) error
	// SetPhoto attaches an uploaded photo reference.
	SetPhoto(ctx context.Context, id, photoURL string) error

	// ListPending returns all requests still awaiting a technician.
	ListPending(ctx context.Context) ([]models.ServiceRequest, error)
	// ListByCustomer returns all requests filed by a customer.
	ListByCustomer(ctx context.Context, customerID string) ([]models.ServiceRequest, error)
	// ListByTechnician returns all requests assigned to a technician.
	ListByTechnician(ctx context.Context, technicianID string) ([]models.ServiceRequest, error)
	// ListAssignedInWindow returns requests assigned to any of the given
	// technicians whose requested time falls within [from, to).
	ListAssignedInWindow(ctx context.Context, technicianIDs []string, from, to time.Time) ([]models.ServiceRequest, error)
	// ListAll returns every request (admin surface).
	ListAll(ctx context.Context) ([]models.ServiceRequest, error)

	// AcceptTransactionally commits the acceptance transition as one unit:
	// status + technician snapshot on the request, the new conversation, and
	// its greeting message. Nothing is applied on failure.
	AcceptTransactionally(ctx context.Context, requestID string, snap models.TechnicianSnapshot, conv *models.Conversation, msg *models.Message) error
	// RecordRatingTransactionally writes the rating onto the request and
	// folds it into the rated profile's aggregate in one isolated
	// transaction.
	RecordRatingTransactionally(ctx context.Context, requestID string, role models.RaterRole, rating models.Rating, ratedUserID string) error
}
