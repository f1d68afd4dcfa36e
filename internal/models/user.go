package models

import "time"

// User is the single account a session may link. SessionID is the opaque
// cookie token; its unique index enforces the one-user-per-session rule.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	SessionID string    `gorm:"uniqueIndex;not null" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
