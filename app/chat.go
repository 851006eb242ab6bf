package app

import (
	"tripmates-api/apperrors"
	"tripmates-api/models"
)

// StartChat opens a new thread between the caller and the target. Pairs may
// hold several threads at once; no dedup is attempted.
func (a *App) StartChat(sessionID, targetUserID string) (*models.ChatSession, error) {
	callerID, err := a.Sessions.GetUser(sessionID)
	if err != nil {
		return nil, err
	}
	if callerID == targetUserID {
		return nil, apperrors.NotAllowed("You cannot chat with yourself.")
	}
	if _, err := a.Users.GetByID(targetUserID); err != nil {
		return nil, err
	}
	return a.Chatting.StartSession([]string{callerID, targetUserID})
}

// ListChats returns every thread the caller participates in.
func (a *App) ListChats(sessionID string) ([]models.ChatSession, error) {
	callerID, err := a.Sessions.GetUser(sessionID)
	if err != nil {
		return nil, err
	}
	return a.Chatting.GetSessionsFor(callerID)
}

// SendMessage appends to a thread after the membership guard passes.
func (a *App) SendMessage(sessionID, chatID, text string) (*models.ChatMessage, error) {
	callerID, err := a.Sessions.GetUser(sessionID)
	if err != nil {
		return nil, err
	}
	if err := a.Chatting.AssertParticipants(chatID, callerID); err != nil {
		return nil, err
	}
	return a.Chatting.SendMessage(chatID, callerID, text)
}

// GetMessages returns a thread, oldest first, to a participant.
func (a *App) GetMessages(sessionID, chatID string) ([]models.ChatMessage, error) {
	callerID, err := a.Sessions.GetUser(sessionID)
	if err != nil {
		return nil, err
	}
	if err := a.Chatting.AssertParticipants(chatID, callerID); err != nil {
		return nil, err
	}
	return a.Chatting.GetMessages(chatID)
}

// EndChat deletes the thread record; its messages stay as an audit trail.
func (a *App) EndChat(sessionID, chatID string) error {
	callerID, err := a.Sessions.GetUser(sessionID)
	if err != nil {
		return err
	}
	if err := a.Chatting.AssertParticipants(chatID, callerID); err != nil {
		return err
	}
	return a.Chatting.EndSession(chatID)
}
