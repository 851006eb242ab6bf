package concepts

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripmates-api/apperrors"
	"tripmates-api/models"
)

// Sessioning binds an authenticated identity to a request-scoped session and
// owns the logged-in/logged-out preconditions every other workflow relies on.
type Sessioning struct {
	db *gorm.DB
}

func NewSessioning(db *gorm.DB) *Sessioning {
	return &Sessioning{db: db}
}

// Create issues a fresh, logged-out session.
func (s *Sessioning) Create() (*models.Session, error) {
	session := models.Session{ID: uuid.New().String()}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// Start stores the identity on the session. Fails if already logged in.
func (s *Sessioning) Start(sessionID, userID string) error {
	session, err := s.get(sessionID)
	if err != nil {
		return err
	}
	if session.UserID != nil {
		return apperrors.NotAllowed("Must be logged out!")
	}
	return s.db.Model(session).Update("user_id", userID).Error
}

// End clears the identity from the session. Fails if not logged in.
func (s *Sessioning) End(sessionID string) error {
	session, err := s.get(sessionID)
	if err != nil {
		return err
	}
	if session.UserID == nil {
		return apperrors.Unauthenticated("Must be logged in!")
	}
	return s.db.Model(session).Update("user_id", nil).Error
}

// GetUser returns the identity bound to the session.
func (s *Sessioning) GetUser(sessionID string) (string, error) {
	var session models.Session
	err := s.db.First(&session, "id = ?", sessionID).Error
	if err != nil || session.UserID == nil {
		// A missing session and a logged-out one are the same to the caller
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", err
		}
		return "", apperrors.Unauthenticated("Must be logged in!")
	}
	return *session.UserID, nil
}

// AssertLoggedIn is the precondition guard for authenticated operations.
func (s *Sessioning) AssertLoggedIn(sessionID string) error {
	_, err := s.GetUser(sessionID)
	return err
}

// AssertLoggedOut is the precondition guard for login and registration.
func (s *Sessioning) AssertLoggedOut(sessionID string) error {
	var session models.Session
	err := s.db.First(&session, "id = ?", sessionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if session.UserID != nil {
		return apperrors.NotAllowed("Must be logged out!")
	}
	return nil
}

// Delete removes the session record entirely.
func (s *Sessioning) Delete(sessionID string) error {
	return s.db.Delete(&models.Session{}, "id = ?", sessionID).Error
}

func (s *Sessioning) get(sessionID string) (*models.Session, error) {
	var session models.Session
	if err := s.db.First(&session, "id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Session %s does not exist!", sessionID)
		}
		return nil, err
	}
	return &session, nil
}
