package models

import "time"

// Location stores the current location of a user. Sharing is off by default;
// the shared flag is toggled independently of coordinate updates.
type Location struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	UserID    string    `json:"user_id" gorm:"not null;uniqueIndex;size:191"`
	Latitude  float64   `json:"latitude" gorm:"not null"`
	Longitude float64   `json:"longitude" gorm:"not null"`
	Name      string    `json:"name" gorm:"not null;size:255"`
	Shared    bool      `json:"shared" gorm:"default:false"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedAt time.Time `json:"created_at"`
}

// LocationInfo is read-only gazetteer data, seeded at startup and keyed by name.
type LocationInfo struct {
	Name        string          `json:"name" gorm:"primaryKey;size:191"`
	Description string          `json:"description" gorm:"type:text"`
	Attractions StringSliceType `json:"attractions" gorm:"type:json"`
	Latitude    float64         `json:"latitude"`
	Longitude   float64         `json:"longitude"`
}

func (LocationInfo) TableName() string {
	return "location_infos"
}
