package models

import "time"

// ChatSession is a message thread scoped to a set of participants.
type ChatSession struct {
	ID           string          `json:"id" gorm:"primaryKey;size:191"`
	Participants StringSliceType `json:"participants" gorm:"type:json;not null"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ChatMessage belongs to a session but survives it: ending a session keeps
// its messages as an audit trail.
type ChatMessage struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	ChatID    string    `json:"chat_id" gorm:"not null;size:191;index"`
	SenderID  string    `json:"sender_id" gorm:"not null;size:191"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	Timestamp time.Time `json:"timestamp" gorm:"index"`
}
