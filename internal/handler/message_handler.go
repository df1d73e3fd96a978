package handler

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"topictalk/backend/internal/ai"
	"topictalk/backend/internal/database"
	"topictalk/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// contextWindowSize is the fixed number of recent messages handed to the
// provider as conversational memory. A sliding lookback, not a summary:
// long-range context is dropped on purpose.
const contextWindowSize = 10

const defaultMessagePageSize = 50

// region --- DTOs ---

type SendMessageInput struct {
	ChatroomID uint   `json:"chatroomId" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

type MessageResponse struct {
	ID         uint      `json:"id"`
	Content    string    `json:"content"`
	IsAI       bool      `json:"isAi"`
	UserID     *uint     `json:"userId"`
	ChatroomID uint      `json:"chatroomId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// MessageExchangeResponse pairs the persisted inbound message with the
// provider's persisted reply.
type MessageExchangeResponse struct {
	UserMessage MessageResponse `json:"userMessage"`
	AIMessage   MessageResponse `json:"aiMessage"`
}

func newMessageResponse(message models.Message) MessageResponse {
	return MessageResponse{
		ID:         message.ID,
		Content:    message.Content,
		IsAI:       message.IsAI,
		UserID:     message.UserID,
		ChatroomID: message.ChatroomID,
		CreatedAt:  message.CreatedAt,
	}
}

// endregion

// MessageHandler runs the message exchange pipeline against an injected
// provider registry.
type MessageHandler struct {
	providers ai.Registry
}

func NewMessageHandler(providers ai.Registry) *MessageHandler {
	return &MessageHandler{providers: providers}
}

// SendMessage godoc
// @Summary      Send a message to a chatroom
// @Description  Persists the user's message, gathers recent context, asks the chatroom's AI model for a reply, persists it, and returns both messages.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body SendMessageInput true "Message Info"
// @Success      201  {object}  MessageExchangeResponse
// @Failure      400  {object}  ErrorResponse "Missing field or unsupported AI model"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Chatroom not found"
// @Failure      502  {object}  ErrorResponse "AI provider request failed"
// @Router       /messages [post]
func (h *MessageHandler) SendMessage(c *gin.Context) {
	userID := currentUserID(c)

	var input SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chatroom, err := findOwnedChatroom(database.DB, userID, input.ChatroomID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chatroom not found"})
		return
	}

	userMessage := models.Message{
		Content:    input.Content,
		IsAI:       false,
		UserID:     &userID,
		ChatroomID: chatroom.ID,
	}
	if err := database.DB.Create(&userMessage).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
		return
	}

	// The exchange is deliberately not transactional from here on: a provider
	// failure leaves the user message persisted with no reply, so failed
	// sends stay visible in the log instead of silently disappearing.
	prompt, err := buildPrompt(chatroom.ID, input.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load message history"})
		return
	}

	provider, ok := h.providers.Lookup(chatroom.AIModel)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid AI model"})
		return
	}

	reply, err := provider.Complete(c.Request.Context(), prompt)
	if err != nil {
		log.Printf("provider %q failed for chatroom %d: %v", chatroom.AIModel, chatroom.ID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "AI provider request failed"})
		return
	}

	aiMessage := models.Message{
		Content:    reply,
		IsAI:       true,
		ChatroomID: chatroom.ID,
	}
	if err := database.DB.Create(&aiMessage).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save AI message"})
		return
	}

	c.JSON(http.StatusCreated, MessageExchangeResponse{
		UserMessage: newMessageResponse(userMessage),
		AIMessage:   newMessageResponse(aiMessage),
	})
}

// buildPrompt renders the provider prompt: the last contextWindowSize messages
// of the room in chronological order, one "<AI|User>: <content>" line each,
// with the new user message appended.
func buildPrompt(chatroomID uint, content string) (string, error) {
	var recent []models.Message
	err := database.DB.Where("chatroom_id = ?", chatroomID).
		Order("created_at DESC, id DESC").
		Limit(contextWindowSize).
		Find(&recent).Error
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		role := "User"
		if recent[i].IsAI {
			role = "AI"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", role, recent[i].Content))
	}

	return fmt.Sprintf("Context:\n%s\n\nUser: %s", strings.Join(lines, "\n"), content), nil
}

// GetMessages godoc
// @Summary      List messages in a chatroom
// @Description  Retrieves a page of an owned chatroom's messages in chronological order.
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        chatroomId query int true  "Chatroom ID"
// @Param        page       query int false "Page number" default(1)
// @Param        limit      query int false "Messages per page" default(50)
// @Success      200  {object}  MessagesPage
// @Failure      400  {object}  ErrorResponse "Chatroom ID is required"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Chatroom not found"
// @Router       /messages [get]
func (h *MessageHandler) GetMessages(c *gin.Context) {
	userID := currentUserID(c)

	chatroomID, err := strconv.Atoi(c.Query("chatroomId"))
	if err != nil || chatroomID < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Chatroom ID is required"})
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultMessagePageSize)))
	if err != nil || limit < 1 {
		limit = defaultMessagePageSize
	}

	chatroom, err := findOwnedChatroom(database.DB, userID, uint(chatroomID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chatroom not found"})
		return
	}

	var totalMessages int64
	if err := database.DB.Model(&models.Message{}).
		Where("chatroom_id = ?", chatroom.ID).
		Count(&totalMessages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count messages"})
		return
	}

	var messages []models.Message
	if err := database.DB.Where("chatroom_id = ?", chatroom.ID).
		Order("created_at ASC, id ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve messages"})
		return
	}

	response := MessagesPage{
		Messages:    make([]MessageResponse, 0, len(messages)),
		TotalPages:  computeTotalPages(totalMessages, limit),
		CurrentPage: page,
	}
	for _, message := range messages {
		response.Messages = append(response.Messages, newMessageResponse(message))
	}

	c.JSON(http.StatusOK, response)
}
