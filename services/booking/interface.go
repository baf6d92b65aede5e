package booking

import (
	"context"
	"time"

	requestRepo "fixify/database/repository/request"
	"fixify/models"
	"fixify/services/notification"
)

// BookingCoordinator advances a request through its lifecycle. The
// acceptance transition is the compound one: it stamps the technician
// snapshot and provisions the customer/technician conversation atomically.
type BookingCoordinator interface {
	Advance(ctx context.Context, requestID string, newStatus models.RequestStatus, actor *models.UserProfile) error
}

// ReminderScheduler queues a reminder push for later delivery.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, payload models.ReminderPayload, at time.Time) error
}

// DefaultBookingCoordinator is the production implementation. Notification
// and Reminders are optional; status changes commit regardless of whether a
// push can be delivered.
type DefaultBookingCoordinator struct {
	Requests     requestRepo.RequestRepository
	Notification notification.NotificationService
	Reminders    ReminderScheduler
}
