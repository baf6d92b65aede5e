package handlers

import (
	"net/http"

	"fixify/services/chat"

	"github.com/gin-gonic/gin"
)

// ChatHandler exposes the conversation inbox and messaging.
type ChatHandler struct {
	Svc chat.ChatService
}

func NewChatHandler(svc chat.ChatService) *ChatHandler {
	return &ChatHandler{Svc: svc}
}

// ListConversations returns the authenticated user's conversations, most
// recently active first.
// GET /api/chat/conversations
func (h *ChatHandler) ListConversations(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing profile"})
		return
	}
	convs, err := h.Svc.Conversations(c.Request.Context(), profile.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversations": convs})
}

// ListMessages returns a conversation's messages, oldest first.
// GET /api/chat/conversations/:id/messages
func (h *ChatHandler) ListMessages(c *gin.Context) {
	msgs, err := h.Svc.Messages(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

type sendMessageInput struct {
	Text string `json:"text" binding:"required"`
}

// SendMessage appends a message from the authenticated participant.
// POST /api/chat/conversations/:id/messages
func (h *ChatHandler) SendMessage(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing profile"})
		return
	}
	var input sendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	msg, err := h.Svc.SendMessage(c.Request.Context(), c.Param("id"), profile.ID, input.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}
