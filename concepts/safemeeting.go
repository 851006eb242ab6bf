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

const meetingDateLayout = "2006-01-02"

// SafeMeeting manages the meeting proposal lifecycle. Safety metadata
// (location, time, emergency contact) is validated before a proposal can
// exist at all; an unsafe proposal never reaches storage.
type SafeMeeting struct {
	db *gorm.DB
}

func NewSafeMeeting(db *gorm.DB) *SafeMeeting {
	return &SafeMeeting{db: db}
}

// ProposeMeeting validates all meeting details and creates the proposal.
// The date must be a real calendar date, today or later.
func (s *SafeMeeting) ProposeMeeting(proposerID, receiverID, date, timeOfDay, location, emergencyContact string) (*models.Meeting, error) {
	meetingDate, err := s.parseMeetingDate(date)
	if err != nil {
		return nil, err
	}
	if !utils.IsValidTimeOfDay(timeOfDay) {
		return nil, apperrors.BadValues("Invalid time format. Please use HH:MM.")
	}
	if utils.IsBlank(location) {
		return nil, apperrors.BadValues("Location must be provided.")
	}
	if err := s.assertValidEmergencyContact(emergencyContact); err != nil {
		return nil, err
	}

	meeting := models.Meeting{
		ID:               uuid.New().String(),
		ProposerID:       proposerID,
		ReceiverID:       receiverID,
		Date:             meetingDate,
		Time:             timeOfDay,
		Location:         location,
		EmergencyContact: emergencyContact,
		Status:           models.MeetingStatusProposed,
	}
	if err := s.db.Create(&meeting).Error; err != nil {
		return nil, err
	}
	return &meeting, nil
}

// ConfirmMeeting moves a proposed meeting to confirmed. A meeting that is
// missing or already resolved reports the same NotFound.
func (s *SafeMeeting) ConfirmMeeting(meetingID string) (*models.Meeting, error) {
	return s.resolve(meetingID, models.MeetingStatusConfirmed)
}

// DenyMeeting moves a proposed meeting to denied.
func (s *SafeMeeting) DenyMeeting(meetingID string) (*models.Meeting, error) {
	return s.resolve(meetingID, models.MeetingStatusDenied)
}

// GetMeetings returns every meeting the user proposed or received.
func (s *SafeMeeting) GetMeetings(userID string) ([]models.Meeting, error) {
	var meetings []models.Meeting
	err := s.db.Where("proposer_id = ? OR receiver_id = ?", userID, userID).
		Order("date ASC").Find(&meetings).Error
	if err != nil {
		return nil, err
	}
	return meetings, nil
}

func (s *SafeMeeting) GetMeetingByID(meetingID string) (*models.Meeting, error) {
	var meeting models.Meeting
	if err := s.db.First(&meeting, "id = ?", meetingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Meeting not found.")
		}
		return nil, err
	}
	return &meeting, nil
}

// SetEmergencyContact updates the contact regardless of meeting status.
func (s *SafeMeeting) SetEmergencyContact(meetingID, emergencyContact string) error {
	meeting, err := s.GetMeetingByID(meetingID)
	if err != nil {
		return err
	}
	if err := s.assertValidEmergencyContact(emergencyContact); err != nil {
		return err
	}
	return s.db.Model(meeting).Update("emergency_contact", emergencyContact).Error
}

func (s *SafeMeeting) resolve(meetingID string, status models.MeetingStatus) (*models.Meeting, error) {
	var meeting models.Meeting
	err := s.db.First(&meeting, "id = ?", meetingID).Error
	if err != nil || meeting.Status != models.MeetingStatusProposed {
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, apperrors.NotFound("Proposed meeting not found or already confirmed/denied.")
	}

	if err := s.db.Model(&meeting).Update("status", status).Error; err != nil {
		return nil, err
	}
	meeting.Status = status
	return &meeting, nil
}

func (s *SafeMeeting) parseMeetingDate(date string) (time.Time, error) {
	meetingDate, err := time.ParseInLocation(meetingDateLayout, date, time.Local)
	if err != nil {
		return time.Time{}, apperrors.BadValues("Invalid date.")
	}

	// Compare calendar days, not instants: a meeting later today is valid
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if meetingDate.Before(today) {
		return time.Time{}, apperrors.BadValues("The meeting date cannot be in the past.")
	}
	return meetingDate, nil
}

func (s *SafeMeeting) assertValidEmergencyContact(emergencyContact string) error {
	if !utils.IsValidPhoneNumber(emergencyContact) {
		return apperrors.BadValues("Invalid emergency contact number. It must be a valid phone number (10-15 digits).")
	}
	return nil
}
