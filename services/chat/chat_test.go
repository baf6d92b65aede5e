package chat

import (
	"context"
	"fmt"
	"testing"

	"fixify/models"
	"fixify/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatStore struct {
	conversations map[string]*models.Conversation
	messages      []*models.Message
}

func newFakeChatStore(convs ...*models.Conversation) *fakeChatStore {
	store := &fakeChatStore{conversations: make(map[string]*models.Conversation)}
	for _, c := range convs {
		store.conversations[c.ID] = c
	}
	return store
}

func (f *fakeChatStore) GetByID(ctx context.Context, id string) (*models.Conversation, error) {
	conv, ok := f.conversations[id]
	if !ok {
		return nil, fmt.Errorf("conversation %s: %w", id, utils.ErrNotFound)
	}
	return conv, nil
}
func (f *fakeChatStore) ListByParticipant(ctx context.Context, userID string) ([]models.Conversation, error) {
	var out []models.Conversation
	for _, c := range f.conversations {
		for _, id := range c.ParticipantIDs {
			if id == userID {
				out = append(out, *c)
				break
			}
		}
	}
	return out, nil
}
func (f *fakeChatStore) AppendMessage(ctx context.Context, msg *models.Message) error {
	f.messages = append(f.messages, msg)
	if conv, ok := f.conversations[msg.ConversationID]; ok {
		conv.LastMessage = msg.Text
		conv.UpdatedAt = msg.SentAt
	}
	return nil
}
func (f *fakeChatStore) ListMessages(ctx context.Context, conversationID string) ([]models.Message, error) {
	var out []models.Message
	for _, m := range f.messages {
		if m.ConversationID == conversationID {
			out = append(out, *m)
		}
	}
	return out, nil
}

type fakePusher struct {
	recipients []string
}

func (f *fakePusher) SendPushNotification(ctx context.Context, userID, title, body string, data map[string]string) error {
	f.recipients = append(f.recipients, userID)
	return nil
}

func conversation() *models.Conversation {
	return &models.Conversation{
		ID:             "conv-1",
		RequestID:      "req-1",
		Customer:       models.Participant{ID: "cust-1", Name: "Jordan"},
		Technician:     models.Participant{ID: "tech-1", Name: "Amina"},
		ParticipantIDs: []string{"cust-1", "tech-1"},
	}
}

func TestSendMessagePushesToOtherParticipant(t *testing.T) {
	store := newFakeChatStore(conversation())
	pusher := &fakePusher{}
	svc := &DefaultChatService{Chats: store, Notification: pusher}

	msg, err := svc.SendMessage(context.Background(), "conv-1", "cust-1", "when can you come?")
	require.NoError(t, err)
	assert.Equal(t, "cust-1", msg.SenderID)
	assert.Equal(t, []string{"tech-1"}, pusher.recipients)
	assert.Equal(t, "when can you come?", store.conversations["conv-1"].LastMessage)
}

func TestSendMessageRejectsNonParticipant(t *testing.T) {
	store := newFakeChatStore(conversation())
	svc := &DefaultChatService{Chats: store}

	_, err := svc.SendMessage(context.Background(), "conv-1", "stranger", "hello")
	assert.Error(t, err)
	assert.Empty(t, store.messages)
}

func TestSendMessageUnknownConversation(t *testing.T) {
	svc := &DefaultChatService{Chats: newFakeChatStore()}

	_, err := svc.SendMessage(context.Background(), "ghost", "cust-1", "hello")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}
