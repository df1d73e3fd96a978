package handler

import (
	"net/http"
	"strconv"
	"time"

	"topictalk/backend/internal/database"
	"topictalk/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type TopicInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type TopicResponse struct {
	ID          uint               `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
	Chatrooms   []ChatroomResponse `json:"chatrooms"`
}

func newTopicResponse(topic models.Topic) TopicResponse {
	chatrooms := make([]ChatroomResponse, 0, len(topic.Chatrooms))
	for _, room := range topic.Chatrooms {
		chatrooms = append(chatrooms, newChatroomResponse(room))
	}

	return TopicResponse{
		ID:          topic.ID,
		Title:       topic.Title,
		Description: topic.Description,
		CreatedAt:   topic.CreatedAt,
		UpdatedAt:   topic.UpdatedAt,
		Chatrooms:   chatrooms,
	}
}

// endregion

// CreateTopic godoc
// @Summary      Create a new topic
// @Description  Creates a topic owned by the authenticated user.
// @Tags         topics
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body TopicInput true "Topic Info"
// @Success      201  {object}  TopicResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /topics [post]
func CreateTopic(c *gin.Context) {
	userID := currentUserID(c)

	var input TopicInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	topic := models.Topic{
		Title:       input.Title,
		Description: input.Description,
		UserID:      userID,
	}
	if err := database.DB.Create(&topic).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create topic"})
		return
	}

	c.JSON(http.StatusCreated, newTopicResponse(topic))
}

// GetTopics godoc
// @Summary      List the caller's topics
// @Description  Retrieves all topics owned by the authenticated user, newest first, with their chatrooms.
// @Tags         topics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   TopicResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /topics [get]
func GetTopics(c *gin.Context) {
	userID := currentUserID(c)

	var topics []models.Topic
	if err := database.DB.Preload("Chatrooms").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&topics).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve topics"})
		return
	}

	response := make([]TopicResponse, 0, len(topics))
	for _, topic := range topics {
		response = append(response, newTopicResponse(topic))
	}

	c.JSON(http.StatusOK, response)
}

// GetTopicByID godoc
// @Summary      Get a single topic
// @Description  Retrieves one owned topic with its chatrooms.
// @Tags         topics
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Topic ID"
// @Success      200  {object}  TopicResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Topic not found"
// @Router       /topics/{id} [get]
func GetTopicByID(c *gin.Context) {
	userID := currentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var topic models.Topic
	if err := database.DB.Preload("Chatrooms").
		Where("id = ? AND user_id = ?", id, userID).
		First(&topic).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Topic not found"})
		return
	}

	c.JSON(http.StatusOK, newTopicResponse(topic))
}

// UpdateTopic godoc
// @Summary      Update a topic
// @Description  Updates an owned topic's title and description.
// @Tags         topics
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int        true  "Topic ID"
// @Param        input body      TopicInput true  "New Topic Info"
// @Success      200  {object}  TopicResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Topic not found"
// @Router       /topics/{id} [put]
func UpdateTopic(c *gin.Context) {
	userID := currentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var input TopicInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	topic, err := findOwnedTopic(database.DB, userID, uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Topic not found"})
		return
	}

	topic.Title = input.Title
	topic.Description = input.Description
	if err := database.DB.Save(topic).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update topic"})
		return
	}

	c.JSON(http.StatusOK, newTopicResponse(*topic))
}

// DeleteTopic godoc
// @Summary      Delete a topic
// @Description  Deletes an owned topic along with its chatrooms and their messages.
// @Tags         topics
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Topic ID"
// @Success      200 {object} map[string]string "{"message": "Topic deleted"}"
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Topic not found"
// @Router       /topics/{id} [delete]
func DeleteTopic(c *gin.Context) {
	userID := currentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	topic, err := findOwnedTopic(database.DB, userID, uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Topic not found"})
		return
	}

	// Cascade by hand inside one transaction: messages, then chatrooms, then
	// the topic itself.
	var chatroomIDs []uint
	if err := database.DB.Model(&models.Chatroom{}).
		Where("topic_id = ?", topic.ID).
		Pluck("id", &chatroomIDs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete topic"})
		return
	}

	tx := database.DB.Begin()

	if len(chatroomIDs) > 0 {
		if err := tx.Where("chatroom_id IN (?)", chatroomIDs).Delete(&models.Message{}).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete topic"})
			return
		}
	}
	if err := tx.Where("topic_id = ?", topic.ID).Delete(&models.Chatroom{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete topic"})
		return
	}
	if err := tx.Delete(topic).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete topic"})
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Topic deleted"})
}
