package chatRepo

import (
	"context"

	"fixify/models"
)

// ChatRepository defines data access for conversations and messages.
// Conversation creation is owned by the acceptance transaction in the
// request repository; this repo covers everything after that.
type ChatRepository interface {
	// GetByID retrieves one conversation.
	GetByID(ctx context.Context, id string) (*models.Conversation, error)
	// ListByParticipant returns a user's conversations, most recent first.
	ListByParticipant(ctx context.Context, userID string) ([]models.Conversation, error)
	// AppendMessage stores a message and refreshes the conversation preview.
	AppendMessage(ctx context.Context, msg *models.Message) error
	// ListMessages returns a conversation's messages in send order.
	ListMessages(ctx context.Context, conversationID string) ([]models.Message, error)
}
