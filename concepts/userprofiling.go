package concepts

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripmates-api/apperrors"
	"tripmates-api/models"
)

// UserProfiling manages one structured compatibility profile per user. Every
// write re-checks all six fields against their closed sets; downstream
// scoring relies on exact equality, so open-ended values never get in.
type UserProfiling struct {
	db *gorm.DB
}

func NewUserProfiling(db *gorm.DB) *UserProfiling {
	return &UserProfiling{db: db}
}

// UpdateProfile upserts the profile: creates with both timestamps set, or
// patches the fields and refreshes only the updated timestamp.
func (u *UserProfiling) UpdateProfile(userID string, details models.ProfileDetails) (*models.Profile, error) {
	if err := u.assertValidProfileDetails(details); err != nil {
		return nil, err
	}

	var existing models.Profile
	err := u.db.Where("user_id = ?", userID).First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		profile := models.Profile{
			ID:          uuid.New().String(),
			UserID:      userID,
			Gender:      details.Gender,
			Age:         details.Age,
			TravelStyle: details.TravelStyle,
			City:        details.City,
			Question1:   details.Question1,
			Question2:   details.Question2,
		}
		if createErr := u.db.Create(&profile).Error; createErr != nil {
			return nil, createErr
		}
		return &profile, nil
	}

	updates := map[string]interface{}{
		"gender":       details.Gender,
		"age":          details.Age,
		"travel_style": details.TravelStyle,
		"city":         details.City,
		"question_1":   details.Question1,
		"question_2":   details.Question2,
		"updated_at":   time.Now(),
	}
	if err := u.db.Model(&existing).Updates(updates).Error; err != nil {
		return nil, err
	}

	if refreshErr := u.db.Where("user_id = ?", userID).First(&existing).Error; refreshErr != nil {
		return nil, refreshErr
	}
	return &existing, nil
}

func (u *UserProfiling) GetProfile(userID string) (*models.Profile, error) {
	var profile models.Profile
	if err := u.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Profile not found.")
		}
		return nil, err
	}
	return &profile, nil
}

func (u *UserProfiling) DeleteProfile(userID string) error {
	res := u.db.Delete(&models.Profile{}, "user_id = ?", userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Profile not found.")
	}
	return nil
}

// assertValidProfileDetails cites the first violating category.
func (u *UserProfiling) assertValidProfileDetails(details models.ProfileDetails) error {
	if details.Gender == "" || details.Age == 0 || details.TravelStyle == "" ||
		details.City == "" || details.Question1 == "" || details.Question2 == "" {
		return apperrors.BadValues("All profile fields must be filled.")
	}
	if !models.OneOf(details.Gender, models.ValidGenders) {
		return apperrors.BadValues("Gender must be one of: man, woman, nonbinary, other.")
	}
	if details.Age < models.MinProfileAge || details.Age > models.MaxProfileAge {
		return apperrors.BadValues("Age must be a valid number between 16 and 99.")
	}
	if !models.OneOf(details.TravelStyle, models.ValidTravelStyles) {
		return apperrors.BadValues("Travel style must be either 'relaxed' or 'fast-paced'.")
	}
	if !models.OneOf(details.City, models.ValidCities) {
		return apperrors.BadValues("Location must be within our selected list. More cities to be added soon!")
	}
	if !models.OneOf(details.Question1, models.ValidAnswers) || !models.OneOf(details.Question2, models.ValidAnswers) {
		return apperrors.BadValues("Responses to questions must be 'Agree', 'Disagree', or 'Neutral'.")
	}
	return nil
}
