package handler

import (
	"net/http"
	"strconv"
	"time"

	"topictalk/backend/internal/ai"
	"topictalk/backend/internal/database"
	"topictalk/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// region --- DTOs ---

type CreateChatroomInput struct {
	Name    string `json:"name" binding:"required"`
	TopicID uint   `json:"topicId" binding:"required"`
	AIModel string `json:"aiModel" binding:"required"`
}

type UpdateChatroomInput struct {
	Name    string `json:"name" binding:"required"`
	AIModel string `json:"aiModel" binding:"required"`
}

type ChatroomResponse struct {
	ID           uint              `json:"id"`
	Name         string            `json:"name"`
	AIModel      string            `json:"aiModel"`
	TopicID      uint              `json:"topicId"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
	MessageCount *int64            `json:"messageCount,omitempty"`
	Topic        *TopicResponse    `json:"topic,omitempty"`
	Messages     []MessageResponse `json:"messages,omitempty"`
}

func newChatroomResponse(chatroom models.Chatroom) ChatroomResponse {
	return ChatroomResponse{
		ID:        chatroom.ID,
		Name:      chatroom.Name,
		AIModel:   chatroom.AIModel,
		TopicID:   chatroom.TopicID,
		CreatedAt: chatroom.CreatedAt,
		UpdatedAt: chatroom.UpdatedAt,
	}
}

// endregion

// ChatroomHandler serves chatroom CRUD. It carries the provider registry so
// model selectors can be validated against the supported set.
type ChatroomHandler struct {
	providers ai.Registry
}

func NewChatroomHandler(providers ai.Registry) *ChatroomHandler {
	return &ChatroomHandler{providers: providers}
}

// CreateChatroom godoc
// @Summary      Create a new chatroom
// @Description  Creates a chatroom under an owned topic, bound to an AI model selector.
// @Tags         chatrooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body CreateChatroomInput true "Chatroom Info"
// @Success      201  {object}  ChatroomResponse
// @Failure      400  {object}  ErrorResponse "Missing field or unsupported AI model"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Topic not found"
// @Router       /chatrooms [post]
func (h *ChatroomHandler) CreateChatroom(c *gin.Context) {
	userID := currentUserID(c)

	var input CreateChatroomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.providers.Supported(input.AIModel) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid AI model"})
		return
	}

	if _, err := findOwnedTopic(database.DB, userID, input.TopicID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Topic not found"})
		return
	}

	chatroom := models.Chatroom{
		Name:    input.Name,
		AIModel: input.AIModel,
		TopicID: input.TopicID,
	}
	if err := database.DB.Create(&chatroom).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create chatroom"})
		return
	}

	c.JSON(http.StatusCreated, newChatroomResponse(chatroom))
}

// GetChatrooms godoc
// @Summary      List chatrooms for a topic
// @Description  Retrieves all chatrooms under an owned topic, newest first, with message counts.
// @Tags         chatrooms
// @Produce      json
// @Security     BearerAuth
// @Param        topicId query int true "Topic ID"
// @Success      200  {array}   ChatroomResponse
// @Failure      400  {object}  ErrorResponse "Topic ID is required"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Topic not found"
// @Router       /chatrooms [get]
func (h *ChatroomHandler) GetChatrooms(c *gin.Context) {
	userID := currentUserID(c)

	topicID, err := strconv.Atoi(c.Query("topicId"))
	if err != nil || topicID < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Topic ID is required"})
		return
	}

	if _, err := findOwnedTopic(database.DB, userID, uint(topicID)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Topic not found"})
		return
	}

	var chatrooms []models.Chatroom
	if err := database.DB.Where("topic_id = ?", topicID).
		Order("created_at DESC").
		Find(&chatrooms).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve chatrooms"})
		return
	}

	counts, err := messageCountsByChatroom(database.DB, chatrooms)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count messages"})
		return
	}

	response := make([]ChatroomResponse, 0, len(chatrooms))
	for _, chatroom := range chatrooms {
		resp := newChatroomResponse(chatroom)
		count := counts[chatroom.ID]
		resp.MessageCount = &count
		response = append(response, resp)
	}

	c.JSON(http.StatusOK, response)
}

// GetChatroomByID godoc
// @Summary      Get a single chatroom
// @Description  Retrieves one owned chatroom with its topic and the first 50 messages in chronological order.
// @Tags         chatrooms
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Chatroom ID"
// @Success      200  {object}  ChatroomResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Chatroom not found"
// @Router       /chatrooms/{id} [get]
func (h *ChatroomHandler) GetChatroomByID(c *gin.Context) {
	userID := currentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	chatroom, err := findOwnedChatroom(database.DB, userID, uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chatroom not found"})
		return
	}

	if err := database.DB.Preload("Topic").
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC").Limit(50)
		}).
		First(chatroom, chatroom.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve chatroom"})
		return
	}

	response := newChatroomResponse(*chatroom)
	topicResponse := newTopicResponse(chatroom.Topic)
	response.Topic = &topicResponse
	response.Messages = make([]MessageResponse, 0, len(chatroom.Messages))
	for _, message := range chatroom.Messages {
		response.Messages = append(response.Messages, newMessageResponse(message))
	}

	c.JSON(http.StatusOK, response)
}

// UpdateChatroom godoc
// @Summary      Update a chatroom
// @Description  Updates an owned chatroom's name and AI model selector.
// @Tags         chatrooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Chatroom ID"
// @Param        input body      UpdateChatroomInput true  "New Chatroom Info"
// @Success      200  {object}  ChatroomResponse
// @Failure      400  {object}  ErrorResponse "Missing field or unsupported AI model"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Chatroom not found"
// @Router       /chatrooms/{id} [put]
func (h *ChatroomHandler) UpdateChatroom(c *gin.Context) {
	userID := currentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var input UpdateChatroomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.providers.Supported(input.AIModel) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid AI model"})
		return
	}

	chatroom, err := findOwnedChatroom(database.DB, userID, uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chatroom not found"})
		return
	}

	chatroom.Name = input.Name
	chatroom.AIModel = input.AIModel
	if err := database.DB.Save(chatroom).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update chatroom"})
		return
	}

	c.JSON(http.StatusOK, newChatroomResponse(*chatroom))
}

// DeleteChatroom godoc
// @Summary      Delete a chatroom
// @Description  Deletes an owned chatroom along with its messages.
// @Tags         chatrooms
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Chatroom ID"
// @Success      200 {object} map[string]string "{"message": "Chatroom deleted"}"
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Chatroom not found"
// @Router       /chatrooms/{id} [delete]
func (h *ChatroomHandler) DeleteChatroom(c *gin.Context) {
	userID := currentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	chatroom, err := findOwnedChatroom(database.DB, userID, uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chatroom not found"})
		return
	}

	tx := database.DB.Begin()

	if err := tx.Where("chatroom_id = ?", chatroom.ID).Delete(&models.Message{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete chatroom"})
		return
	}
	if err := tx.Delete(chatroom).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete chatroom"})
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Chatroom deleted"})
}

// messageCountsByChatroom returns message totals keyed by chatroom ID in one
// grouped query.
func messageCountsByChatroom(db *gorm.DB, chatrooms []models.Chatroom) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(chatrooms))
	if len(chatrooms) == 0 {
		return counts, nil
	}

	ids := make([]uint, 0, len(chatrooms))
	for _, chatroom := range chatrooms {
		ids = append(ids, chatroom.ID)
	}

	var rows []struct {
		ChatroomID uint
		Total      int64
	}
	err := db.Model(&models.Message{}).
		Select("chatroom_id, COUNT(*) AS total").
		Where("chatroom_id IN (?)", ids).
		Group("chatroom_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.ChatroomID] = row.Total
	}
	return counts, nil
}
