package models

import "time"

type MeetingStatus string

const (
	MeetingStatusProposed  MeetingStatus = "proposed"
	MeetingStatusConfirmed MeetingStatus = "confirmed"
	MeetingStatusDenied    MeetingStatus = "denied"
)

// Meeting is an in-person meeting proposal. Status only ever moves
// proposed -> confirmed or proposed -> denied; the emergency contact is the
// one field that stays mutable after the meeting is resolved.
type Meeting struct {
	ID               string        `json:"id" gorm:"primaryKey;size:191"`
	ProposerID       string        `json:"proposer_id" gorm:"not null;size:191;index"`
	ReceiverID       string        `json:"receiver_id" gorm:"not null;size:191;index"`
	Date             time.Time     `json:"date" gorm:"not null"`
	Time             string        `json:"time" gorm:"not null;size:5"`
	Location         string        `json:"location" gorm:"not null;size:255"`
	EmergencyContact string        `json:"emergency_contact" gorm:"not null;size:15"`
	Status           MeetingStatus `json:"status" gorm:"not null;default:'proposed';size:20"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
