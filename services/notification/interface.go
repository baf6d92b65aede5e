package notification

import (
	"context"
	"fmt"

	userRepo "fixify/database/repository/user"
	"fixify/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendPushNotification(ctx context.Context, userID, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Users userRepo.UserRepository
}

// SendPushNotification looks up a profile's FCM token and sends a push.
// Profiles without a registered token are skipped silently.
func (s *DefaultNotificationService) SendPushNotification(
	ctx context.Context,
	userID, title, body string,
	data map[string]string,
) error {
	logger := utils.GetLogger()

	profile, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("SendPushNotification: could not find profile %s: %w", userID, err)
	}
	if profile.FCMToken == "" {
		logger.Debug("profile has no FCM token, skipping push", zap.String("userID", userID))
		return nil
	}

	if utils.FCMClient == nil {
		return fmt.Errorf("SendPushNotification: FCM client not initialized")
	}

	msg := &messaging.Message{
		Token: profile.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendPushNotification: send to %s failed: %w", userID, err)
	}
	return nil
}
