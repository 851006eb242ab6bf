package concepts

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripmates-api/apperrors"
	"tripmates-api/models"
	"tripmates-api/utils"
)

// Locating manages per-user location sharing state and the static gazetteer.
type Locating struct {
	db *gorm.DB
}

func NewLocating(db *gorm.DB) *Locating {
	return &Locating{db: db}
}

// UpdateLocation upserts the user's location. A new record starts unshared;
// an update never touches the shared flag.
func (l *Locating) UpdateLocation(userID string, latitude, longitude float64, name string) (*models.Location, error) {
	if err := l.assertValidLocation(latitude, longitude, name); err != nil {
		return nil, err
	}

	var existing models.Location
	err := l.db.Where("user_id = ?", userID).First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		location := models.Location{
			ID:        uuid.New().String(),
			UserID:    userID,
			Latitude:  latitude,
			Longitude: longitude,
			Name:      name,
			Shared:    false,
		}
		if createErr := l.db.Create(&location).Error; createErr != nil {
			return nil, createErr
		}
		return &location, nil
	}

	updates := map[string]interface{}{
		"latitude":   latitude,
		"longitude":  longitude,
		"name":       name,
		"updated_at": time.Now(),
	}
	if err := l.db.Model(&existing).Updates(updates).Error; err != nil {
		return nil, err
	}
	existing.Latitude = latitude
	existing.Longitude = longitude
	existing.Name = name
	return &existing, nil
}

// SetLocationSharing toggles the shared flag. A location must exist first.
func (l *Locating) SetLocationSharing(userID string, share bool) error {
	res := l.db.Model(&models.Location{}).Where("user_id = ?", userID).Update("shared", share)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Location not found!")
	}
	return nil
}

// ViewLocation returns a location only when it exists and is shared. The two
// failure cases are deliberately indistinguishable so a viewer cannot probe
// whether a user has a location at all.
func (l *Locating) ViewLocation(userID string) (*models.Location, error) {
	var location models.Location
	err := l.db.Where("user_id = ? AND shared = ?", userID, true).First(&location).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotAllowed("User is not sharing their location or location not found.")
		}
		return nil, err
	}
	return &location, nil
}

// GetLocationDetails looks up the seeded gazetteer by place name.
func (l *Locating) GetLocationDetails(name string) (*models.LocationInfo, error) {
	var info models.LocationInfo
	if err := l.db.First(&info, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Details for location %s not found.", name)
		}
		return nil, err
	}
	return &info, nil
}

func (l *Locating) assertValidLocation(latitude, longitude float64, name string) error {
	if utils.IsBlank(name) || !utils.IsValidLatitude(latitude) || !utils.IsValidLongitude(longitude) {
		return apperrors.BadValues("Location name, latitude, and longitude must be valid.")
	}
	return nil
}
