package models

import "time"

const (
	GenderMan       = "man"
	GenderWoman     = "woman"
	GenderNonbinary = "nonbinary"
	GenderOther     = "other"

	TravelStyleRelaxed   = "relaxed"
	TravelStyleFastPaced = "fast-paced"

	AnswerAgree    = "Agree"
	AnswerDisagree = "Disagree"
	AnswerNeutral  = "Neutral"

	MinProfileAge = 16
	MaxProfileAge = 99
)

// ValidGenders, ValidTravelStyles, ValidCities and ValidAnswers are the closed
// sets a profile write is checked against. Compatibility scoring relies on
// exact equality across these fields, so free-form values are never accepted.
var (
	ValidGenders      = []string{GenderMan, GenderWoman, GenderNonbinary, GenderOther}
	ValidTravelStyles = []string{TravelStyleRelaxed, TravelStyleFastPaced}
	ValidAnswers      = []string{AnswerAgree, AnswerDisagree, AnswerNeutral}

	ValidCities = []string{
		"Barcelona",
		"Thailand",
		"London",
		"New York City",
		"Paris",
		"Bangkok",
		"Tokyo",
		"Sydney",
		"Cape Town",
		"Dubai",
		"Rome",
		"Amsterdam",
		"Berlin",
		"Lisbon",
		"Istanbul",
		"Mexico City",
		"Singapore",
		"Buenos Aires",
	}
)

// Profile is the structured compatibility profile, one per user.
type Profile struct {
	ID          string    `json:"id" gorm:"primaryKey;size:191"`
	UserID      string    `json:"user_id" gorm:"not null;uniqueIndex;size:191"`
	Gender      string    `json:"gender" gorm:"not null;size:20"`
	Age         int       `json:"age" gorm:"not null"`
	TravelStyle string    `json:"travel_style" gorm:"not null;size:20"`
	City        string    `json:"city" gorm:"not null;size:100"`
	Question1   string    `json:"question_1" gorm:"column:question_1;not null;size:20"`
	Question2   string    `json:"question_2" gorm:"column:question_2;not null;size:20"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProfileDetails carries the six substantive profile fields on every write.
type ProfileDetails struct {
	Gender      string `json:"gender"`
	Age         int    `json:"age"`
	TravelStyle string `json:"travel_style"`
	City        string `json:"city"`
	Question1   string `json:"question_1"`
	Question2   string `json:"question_2"`
}

// OneOf reports whether value is a member of the given closed set.
func OneOf(value string, set []string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
