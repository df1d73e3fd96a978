package models

import "gorm.io/gorm"

// Topic is a user-owned grouping of chatrooms.
type Topic struct {
	gorm.Model
	Title       string `gorm:"size:255;not null"`
	Description string
	UserID      uint `gorm:"not null;index"`

	User      User       `gorm:"foreignKey:UserID"`
	Chatrooms []Chatroom `gorm:"foreignKey:TopicID"`
}
