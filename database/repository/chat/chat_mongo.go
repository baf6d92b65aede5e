package chatRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fixify/database"
	"fixify/models"
	"fixify/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoChatRepo implements ChatRepository using MongoDB.
type MongoChatRepo struct {
	conversationColl *mongo.Collection
	messageColl      *mongo.Collection
}

// NewMongoChatRepo creates a new ChatRepository backed by MongoDB.
func NewMongoChatRepo() ChatRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	repo := &MongoChatRepo{
		conversationColl: db.Collection("conversations"),
		messageColl:      db.Collection("messages"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, timeout)
}

func (r *MongoChatRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	convIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "participantIds", Value: 1}, {Key: "updatedAt", Value: -1}}},
	}
	if _, err := r.conversationColl.Indexes().CreateMany(ctx, convIndexes); err != nil {
		return fmt.Errorf("failed to create conversation indexes: %w", err)
	}

	msgIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "conversationId", Value: 1}, {Key: "sentAt", Value: 1}}},
	}
	if _, err := r.messageColl.Indexes().CreateMany(ctx, msgIndexes); err != nil {
		return fmt.Errorf("failed to create message indexes: %w", err)
	}
	return nil
}

// GetByID retrieves one conversation.
func (r *MongoChatRepo) GetByID(ctx context.Context, id string) (*models.Conversation, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var conv models.Conversation
	if err := r.conversationColl.FindOne(ctx, bson.M{"id": id}).Decode(&conv); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("conversation %s: %w", id, utils.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch conversation %s: %w", id, err)
	}
	return &conv, nil
}

// ListByParticipant returns a user's conversations, most recent first.
func (r *MongoChatRepo) ListByParticipant(ctx context.Context, userID string) ([]models.Conversation, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cursor, err := r.conversationColl.Find(ctx, bson.M{"participantIds": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversations: %w", err)
	}
	defer cursor.Close(ctx)

	var conversations []models.Conversation
	for cursor.Next(ctx) {
		var c models.Conversation
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode conversation: %w", err)
		}
		conversations = append(conversations, c)
	}
	return conversations, nil
}

// AppendMessage stores a message and refreshes the conversation preview and
// update timestamp. Both are independent single-document writes.
func (r *MongoChatRepo) AppendMessage(ctx context.Context, msg *models.Message) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.messageColl.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}

	result, err := r.conversationColl.UpdateOne(ctx,
		bson.M{"id": msg.ConversationID},
		bson.M{"$set": bson.M{"lastMessage": msg.Text, "updatedAt": msg.SentAt}},
	)
	if err != nil {
		return fmt.Errorf("failed to update conversation preview: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("conversation %s: %w", msg.ConversationID, utils.ErrNotFound)
	}
	return nil
}

// ListMessages returns a conversation's messages in send order.
func (r *MongoChatRepo) ListMessages(ctx context.Context, conversationID string) ([]models.Message, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "sentAt", Value: 1}})
	cursor, err := r.messageColl.Find(ctx, bson.M{"conversationId": conversationID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	for cursor.Next(ctx) {
		var m models.Message
		if err := cursor.Decode(&m); err != nil {
			return nil, fmt.Errorf("failed to decode message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, nil
}
