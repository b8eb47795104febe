package models

import "time"

// User & auth related models
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"unique;not null;index"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"not null"` // Admin, Accountant
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
