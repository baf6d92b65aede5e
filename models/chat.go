package models

import "time"

// Participant is the denormalized display info for one side of a conversation.
type Participant struct {
	ID        string `bson:"id" json:"id"`
	Name      string `bson:"name" json:"name"`
	AvatarURL string `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
}

// Conversation links a customer and a technician. Exactly one is created per
// accepted request, inside the acceptance transaction.
type Conversation struct {
	ID             string      `bson:"id" json:"id"`
	RequestID      string      `bson:"requestId" json:"requestId"`
	Customer       Participant `bson:"customer" json:"customer"`
	Technician     Participant `bson:"technician" json:"technician"`
	ParticipantIDs []string    `bson:"participantIds" json:"participantIds"`
	LastMessage    string      `bson:"lastMessage" json:"lastMessage"`
	UpdatedAt      time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// Message is a single chat entry in a conversation.
type Message struct {
	ID             string    `bson:"id" json:"id"`
	ConversationID string    `bson:"conversationId" json:"conversationId"`
	SenderID       string    `bson:"senderId" json:"senderId"`
	Text           string    `bson:"text" json:"text"`
	SentAt         time.Time `bson:"sentAt" json:"sentAt"`
}
