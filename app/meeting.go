package app

import (
	"tripmates-api/apperrors"
	"tripmates-api/models"
)

// ProposeMeeting creates a meeting proposal from the caller to the receiver.
func (a *App) ProposeMeeting(sessionID, receiverID, date, timeOfDay, location, emergencyContact string) (*models.Meeting, error) {
	callerID, err := a.Sessions.GetUser(sessionID)
	if err != nil {
		return nil, err
	}
	if callerID == receiverID {
		return nil, apperrors.NotAllowed("You cannot propose a meeting with yourself.")
	}
	if _, err := a.Users.GetByID(receiverID); err != nil {
		return nil, err
	}
	return a.Meetings.ProposeMeeting(callerID, receiverID, date, timeOfDay, location, emergencyContact)
}

// ConfirmMeeting accepts a proposal. Only the receiver may confirm; a
// proposer cannot accept their own proposal.
func (a *App) ConfirmMeeting(sessionID, meetingID string) (*models.Meeting, error) {
	callerID, err := a.Sessions.GetUser(sessionID)
	if err != nil {
		return nil, err
	}
	meeting, err := a.Meetings.GetMeetingByID(meetingID)
	if err != nil {
		return nil, err
	}
	if meeting.ReceiverID != callerID {
		return nil, apperrors.NotAllowed("Only the receiver can confirm a meeting.")
	}
	return a.Meetings.ConfirmMeeting(meetingID)
}

// DenyMeeting declines a proposal. Either participant may deny: the receiver
// rejecting it and the proposer withdrawing it end the same way.
func (a *App) DenyMeeting(sessionID, meetingID string) (*models.Meeting, error) {
	callerID, err := a.Sessions.GetUser(sessionID)
	if err != nil {
		return nil, err
	}
	meeting, err := a.Meetings.GetMeetingByID(meetingID)
	if err != nil {
		return nil, err
	}
	if meeting.ProposerID != callerID && meeting.ReceiverID != callerID {
		return nil, apperrors.NotAllowed("Only a participant can deny a meeting.")
	}
	return a.Meetings.DenyMeeting(meetingID)
}

// ListMeetings returns every meeting the caller proposed or received.
func (a *App) ListMeetings(sessionID string) ([]models.Meeting, error) {
	callerID, err := a.Sessions.GetUser(sessionID)
	if err != nil {
		return nil, err
	}
	return a.Meetings.GetMeetings(callerID)
}

// GetMeeting returns a single meeting to one of its participants.
func (a *App) GetMeeting(sessionID, meetingID string) (*models.Meeting, error) {
	callerID, err := a.Sessions.GetUser(sessionID)
	if err != nil {
		return nil, err
	}
	meeting, err := a.Meetings.GetMeetingByID(meetingID)
	if err != nil {
		return nil, err
	}
	if meeting.ProposerID != callerID && meeting.ReceiverID != callerID {
		return nil, apperrors.NotAllowed("Only a participant can view a meeting.")
	}
	return meeting, nil
}

// SetEmergencyContact updates the safety contact on a meeting the caller
// participates in, regardless of the meeting's status.
func (a *App) SetEmergencyContact(sessionID, meetingID, emergencyContact string) error {
	callerID, err := a.Sessions.GetUser(sessionID)
	if err != nil {
		return err
	}
	meeting, err := a.Meetings.GetMeetingByID(meetingID)
	if err != nil {
		return err
	}
	if meeting.ProposerID != callerID && meeting.ReceiverID != callerID {
		return apperrors.NotAllowed("Only a participant can update the emergency contact.")
	}
	return a.Meetings.SetEmergencyContact(meetingID, emergencyContact)
}
