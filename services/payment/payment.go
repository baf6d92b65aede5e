package payment

import (
	"context"
	"fmt"
	"time"

	requestRepo "fixify/database/repository/request"
	"fixify/models"
	"fixify/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentService drives a request's payment status: none until an invoice is
// issued, pending while the customer pays, paid on confirmation.
type PaymentService interface {
	// IssueInvoice creates a Stripe payment intent for the request and
	// moves the payment status to pending. Returns the client secret the
	// customer app needs to confirm the payment.
	IssueInvoice(ctx context.Context, requestID string, amount int64, currency string) (string, error)
	// MarkPaid records a confirmed payment.
	MarkPaid(ctx context.Context, requestID string) error
}

// DefaultPaymentService is the production implementation.
type DefaultPaymentService struct {
	Requests requestRepo.RequestRepository
}

func (s *DefaultPaymentService) IssueInvoice(ctx context.Context, requestID string, amount int64, currency string) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("invoice amount must be positive")
	}

	req, err := s.Requests.GetByID(ctx, requestID)
	if err != nil {
		return "", err
	}
	if req.PaymentStatus != models.PaymentNone {
		return "", fmt.Errorf("request %s already has an invoice", requestID)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
	}
	params.AddMetadata("requestId", requestID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	invoice := &models.Invoice{
		ID:              uuid.New().String(),
		Amount:          amount,
		Currency:        currency,
		PaymentIntentID: pi.ID,
		IssuedAt:        time.Now(),
	}
	if err := s.Requests.UpdatePayment(ctx, requestID, models.PaymentPending, invoice); err != nil {
		return "", err
	}

	utils.GetLogger().Info("invoice issued",
		zap.String("requestID", requestID),
		zap.Int64("amount", amount),
		zap.String("currency", currency),
	)
	return pi.ClientSecret, nil
}

func (s *DefaultPaymentService) MarkPaid(ctx context.Context, requestID string) error {
	req, err := s.Requests.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req.PaymentStatus != models.PaymentPending {
		return fmt.Errorf("request %s has no pending invoice", requestID)
	}
	return s.Requests.UpdatePayment(ctx, requestID, models.PaymentPaid, nil)
}
