package handler

import (
	"topictalk/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// currentUserID returns the authenticated caller's ID set by the auth middleware.
func currentUserID(c *gin.Context) uint {
	userID, _ := c.Get("userID")
	return userID.(uint)
}

// findOwnedTopic looks up a topic scoped to its owner. A topic owned by
// another user is indistinguishable from a nonexistent one: both return
// gorm.ErrRecordNotFound so handlers answer 404 either way.
func findOwnedTopic(db *gorm.DB, userID, topicID uint) (*models.Topic, error) {
	var topic models.Topic
	if err := db.Where("id = ? AND user_id = ?", topicID, userID).First(&topic).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

// findOwnedChatroom looks up a chatroom scoped to the owner of its parent
// topic. Ownership is transitive, so the lookup joins through topics.
func findOwnedChatroom(db *gorm.DB, userID, chatroomID uint) (*models.Chatroom, error) {
	var chatroom models.Chatroom
	err := db.Joins("JOIN topics ON topics.id = chatrooms.topic_id").
		Where("chatrooms.id = ? AND topics.user_id = ? AND topics.deleted_at IS NULL", chatroomID, userID).
		First(&chatroom).Error
	if err != nil {
		return nil, err
	}
	return &chatroom, nil
}
