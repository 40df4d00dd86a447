package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Email        string    `gorm:"not null;default:''" json:"email"`
	FullName     string    `gorm:"not null;default:''" json:"full_name"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}
