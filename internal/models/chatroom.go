package models

import "gorm.io/gorm"

// Chatroom is a conversation thread nested under a topic. Each room is bound
// to a single AI-model selector chosen at creation time.
type Chatroom struct {
	gorm.Model
	Name    string `gorm:"size:255;not null"`
	AIModel string `gorm:"size:100;not null"`
	TopicID uint   `gorm:"not null;index"`

	Topic    Topic     `gorm:"foreignKey:TopicID"`
	Messages []Message `gorm:"foreignKey:ChatroomID"`
}
