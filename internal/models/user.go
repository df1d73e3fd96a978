package models

import "gorm.io/gorm"

// User represents a registered account.
type User struct {
	gorm.Model
	Name         string `gorm:"size:255"`
	Email        string `gorm:"size:255;unique;not null"`
	PasswordHash string `gorm:"size:255;not null"`

	Topics []Topic `gorm:"foreignKey:UserID"`
}
