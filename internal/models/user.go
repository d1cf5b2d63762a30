package models

import "time"

// User is a global admin account. Guests never get rows here; they
// identify themselves with a (userName, deviceId) pair on each request.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         string    `json:"role" gorm:"not null;default:admin"`
	CreatedAt    time.Time `json:"createdAt"`
}
