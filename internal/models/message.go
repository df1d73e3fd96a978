package models

import "gorm.io/gorm"

// Message is one turn in a chatroom. Rows are append-only: they are never
// updated and are removed only when the parent chatroom is deleted.
type Message struct {
	gorm.Model
	Content    string `gorm:"not null"`
	IsAI       bool   `gorm:"not null;default:false"`
	UserID     *uint  // Nil for AI-authored messages
	ChatroomID uint   `gorm:"not null;index"`

	User User `gorm:"foreignKey:UserID"`
}
