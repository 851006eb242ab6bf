package models

import "time"

// User is the identity record owned by the Authing concept. The password
// column holds a bcrypt hash and is never serialized.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null;size:50"`
	Password  string    `json:"-" gorm:"not null;size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Session binds an authenticated identity to a request-scoped session.
// A session is logged in iff UserID is set.
type Session struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	UserID    *string   `json:"user_id" gorm:"size:191;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
