package concepts

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripmates-api/apperrors"
	"tripmates-api/models"
)

// Matching records directional ratings and derives mutual matches. Ratings
// are permanent: there is no re-rating or update path.
type Matching struct {
	db *gorm.DB
}

func NewMatching(db *gorm.DB) *Matching {
	return &Matching{db: db}
}

// RateResult reports what a rate action persisted. Match is non-nil only
// when this call newly created one.
type RateResult struct {
	Rating *models.Rating `json:"rating"`
	Match  *models.Match  `json:"match,omitempty"`
}

// RateUser persists the rating, then on a mutual like creates the match.
// The unique indexes on both tables are the primary invariant enforcement;
// the lookups here are the defensive line against concurrent writers.
func (m *Matching) RateUser(raterID, rateeID string, liked bool) (*RateResult, error) {
	if err := m.assertNotRated(raterID, rateeID); err != nil {
		return nil, err
	}

	rating := models.Rating{
		ID:      uuid.New().String(),
		RaterID: raterID,
		RateeID: rateeID,
		Liked:   liked,
	}
	if err := m.db.Create(&rating).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("User %s has already rated user %s.", raterID, rateeID)
		}
		return nil, err
	}

	result := &RateResult{Rating: &rating}
	if !liked {
		return result, nil
	}

	var reciprocal models.Rating
	err := m.db.Where("rater_id = ? AND ratee_id = ? AND liked = ?", rateeID, raterID, true).
		First(&reciprocal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return result, nil
		}
		return nil, err
	}

	match, err := m.addMatch(raterID, rateeID)
	if err != nil {
		return nil, err
	}
	result.Match = match
	return result, nil
}

// GetRatings returns every rating the user gave or received.
func (m *Matching) GetRatings(userID string) ([]models.Rating, error) {
	var ratings []models.Rating
	err := m.db.Where("rater_id = ? OR ratee_id = ?", userID, userID).Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// GetMatches returns every match the user is part of.
func (m *Matching) GetMatches(userID string) ([]models.Match, error) {
	var matches []models.Match
	err := m.db.Where("user1_id = ? OR user2_id = ?", userID, userID).
		Order("created_at DESC").Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// AreMatched reports whether a match exists for the unordered pair.
func (m *Matching) AreMatched(userAID, userBID string) (bool, error) {
	user1ID, user2ID := models.NormalizePair(userAID, userBID)
	var count int64
	err := m.db.Model(&models.Match{}).
		Where("user1_id = ? AND user2_id = ?", user1ID, user2ID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (m *Matching) addMatch(raterID, rateeID string) (*models.Match, error) {
	if err := m.assertNotMatched(raterID, rateeID); err != nil {
		return nil, err
	}

	user1ID, user2ID := models.NormalizePair(raterID, rateeID)
	match := models.Match{
		ID:      uuid.New().String(),
		User1ID: user1ID,
		User2ID: user2ID,
	}
	if err := m.db.Create(&match).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("Users %s and %s are already matched.", raterID, rateeID)
		}
		return nil, err
	}
	return &match, nil
}

func (m *Matching) assertNotRated(raterID, rateeID string) error {
	var existing models.Rating
	err := m.db.Where("rater_id = ? AND ratee_id = ?", raterID, rateeID).First(&existing).Error
	if err == nil {
		return apperrors.Conflict("User %s has already rated user %s.", raterID, rateeID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (m *Matching) assertNotMatched(userAID, userBID string) error {
	matched, err := m.AreMatched(userAID, userBID)
	if err != nil {
		return err
	}
	if matched {
		return apperrors.Conflict("Users %s and %s are already matched.", userAID, userBID)
	}
	return nil
}
