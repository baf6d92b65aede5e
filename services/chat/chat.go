package chat

import (
	"context"
	"fmt"
	"time"

	chatRepo "fixify/database/repository/chat"
	"fixify/models"
	"fixify/services/notification"
	"fixify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatService covers messaging after a conversation exists. Conversations
// themselves are created by the acceptance transition.
type ChatService interface {
	Conversations(ctx context.Context, userID string) ([]models.Conversation, error)
	Messages(ctx context.Context, conversationID string) ([]models.Message, error)
	SendMessage(ctx context.Context, conversationID, senderID, text string) (*models.Message, error)
}

// DefaultChatService is the production implementation.
type DefaultChatService struct {
	Chats        chatRepo.ChatRepository
	Notification notification.NotificationService
}

func (s *DefaultChatService) Conversations(ctx context.Context, userID string) ([]models.Conversation, error) {
	return s.Chats.ListByParticipant(ctx, userID)
}

func (s *DefaultChatService) Messages(ctx context.Context, conversationID string) ([]models.Message, error) {
	return s.Chats.ListMessages(ctx, conversationID)
}

// SendMessage appends a message from a conversation participant and pushes
// it to the other side, best effort.
func (s *DefaultChatService) SendMessage(ctx context.Context, conversationID, senderID, text string) (*models.Message, error) {
	conv, err := s.Chats.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	var recipient models.Participant
	switch senderID {
	case conv.Customer.ID:
		recipient = conv.Technician
	case conv.Technician.ID:
		recipient = conv.Customer
	default:
		return nil, fmt.Errorf("sender %s is not a participant of conversation %s", senderID, conversationID)
	}

	msg := &models.Message{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Text:           text,
		SentAt:         time.Now(),
	}
	if err := s.Chats.AppendMessage(ctx, msg); err != nil {
		return nil, err
	}

	if s.Notification != nil {
		err := s.Notification.SendPushNotification(ctx, recipient.ID,
			"New message", text,
			map[string]string{"conversationId": conversationID},
		)
		if err != nil {
			utils.GetLogger().Warn("message push failed",
				zap.String("conversationID", conversationID), zap.Error(err))
		}
	}
	return msg, nil
}
