package booking

import (
	"context"
	"fmt"
	"time"

	"fixify/models"
	"fixify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AcceptanceGreeting is the fixed first message posted into the conversation
// created at acceptance, authored by the accepting technician.
const AcceptanceGreeting = "Hi! I've accepted your request and will be in touch shortly."

// Advance transitions a request's lifecycle state.
//
// Any status may be set directly; only ACCEPTED submitted by a technician
// carries side effects. That acceptance path commits three writes as one
// unit: the status + technician snapshot, a new conversation between
// customer and technician, and the greeting message. Role and ownership
// checks beyond that distinction belong to the auth middleware.
func (c *DefaultBookingCoordinator) Advance(
	ctx context.Context,
	requestID string,
	newStatus models.RequestStatus,
	actor *models.UserProfile,
) error {
	if newStatus == models.StatusAccepted && actor != nil && actor.Role == models.RoleTechnician {
		return c.accept(ctx, requestID, actor)
	}
	return c.Requests.UpdateStatus(ctx, requestID, newStatus)
}

func (c *DefaultBookingCoordinator) accept(ctx context.Context, requestID string, technician *models.UserProfile) error {
	logger := utils.GetLogger()

	req, err := c.Requests.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	snap := models.TechnicianSnapshot{
		ID:        technician.ID,
		Name:      technician.FullName,
		AvatarURL: technician.AvatarURL,
		Skills:    technician.Skills,
	}

	now := time.Now()
	conv := &models.Conversation{
		ID:        uuid.New().String(),
		RequestID: req.ID,
		Customer: models.Participant{
			ID:        req.CustomerID,
			Name:      req.CustomerName,
			AvatarURL: req.CustomerAvatar,
		},
		Technician: models.Participant{
			ID:        technician.ID,
			Name:      technician.FullName,
			AvatarURL: technician.AvatarURL,
		},
		ParticipantIDs: []string{req.CustomerID, technician.ID},
		LastMessage:    AcceptanceGreeting,
		UpdatedAt:      now,
	}
	msg := &models.Message{
		ID:             uuid.New().String(),
		ConversationID: conv.ID,
		SenderID:       technician.ID,
		Text:           AcceptanceGreeting,
		SentAt:         now,
	}

	if err := c.Requests.AcceptTransactionally(ctx, requestID, snap, conv, msg); err != nil {
		return err
	}

	// Post-commit effects are best effort; the acceptance already stands.
	if c.Notification != nil {
		err := c.Notification.SendPushNotification(ctx, req.CustomerID,
			"Request accepted",
			fmt.Sprintf("%s accepted your %s request", technician.FullName, req.Category),
			map[string]string{"requestId": req.ID, "conversationId": conv.ID},
		)
		if err != nil {
			logger.Warn("acceptance push failed", zap.String("requestID", req.ID), zap.Error(err))
		}
	}

	if c.Reminders != nil {
		fireAt := req.RequestedAt.Add(-1 * time.Hour)
		if fireAt.After(now) {
			payload := models.ReminderPayload{
				RequestID: req.ID,
				UserID:    req.CustomerID,
				Title:     "Upcoming service visit",
				Body:      fmt.Sprintf("%s is scheduled for your %s job today", technician.FullName, req.Category),
				FireDate:  fireAt.Format(time.RFC3339),
			}
			if err := c.Reminders.ScheduleReminder(ctx, payload, fireAt); err != nil {
				logger.Warn("reminder enqueue failed", zap.String("requestID", req.ID), zap.Error(err))
			}
		}
	}

	logger.Info("request accepted",
		zap.String("requestID", req.ID),
		zap.String("technicianID", technician.ID),
		zap.String("conversationID", conv.ID),
	)
	return nil
}
