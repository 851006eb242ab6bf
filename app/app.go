package app

import (
	"gorm.io/gorm"

	"tripmates-api/apperrors"
	"tripmates-api/concepts"
	"tripmates-api/models"
)

// MatchNotifier is told about new matches so users can be notified out of
// band. Notification is best-effort and never blocks or fails an operation.
type MatchNotifier interface {
	NotifyMatch(user, matchedWith models.User)
}

// App is the synchronization layer: it composes the concepts into
// user-facing operations. Concepts never call each other; every cross-concept
// workflow is sequenced here, and external string identifiers are resolved to
// internal ones at this boundary only.
type App struct {
	Sessions *concepts.Sessioning
	Users    *concepts.Authing
	Matching *concepts.Matching
	Chatting *concepts.Chatting
	Meetings *concepts.SafeMeeting
	Locating *concepts.Locating
	Profiles *concepts.UserProfiling

	notifier MatchNotifier
}

// New wires one instance of every concept against the shared database. The
// notifier may be nil.
func New(db *gorm.DB, notifier MatchNotifier) *App {
	return &App{
		Sessions: concepts.NewSessioning(db),
		Users:    concepts.NewAuthing(db),
		Matching: concepts.NewMatching(db),
		Chatting: concepts.NewChatting(db),
		Meetings: concepts.NewSafeMeeting(db),
		Locating: concepts.NewLocating(db),
		Profiles: concepts.NewUserProfiling(db),
		notifier: notifier,
	}
}

// Register creates an account. A logged-in session may not register.
func (a *App) Register(sessionID, username, password string) (*models.User, error) {
	if sessionID != "" {
		if err := a.Sessions.AssertLoggedOut(sessionID); err != nil {
			return nil, err
		}
	}
	return a.Users.Register(username, password)
}

// Login authenticates and binds a fresh session to the identity.
func (a *App) Login(username, password string) (*models.Session, *models.User, error) {
	user, err := a.Users.Authenticate(username, password)
	if err != nil {
		return nil, nil, err
	}

	session, err := a.Sessions.Create()
	if err != nil {
		return nil, nil, err
	}
	if err := a.Sessions.Start(session.ID, user.ID); err != nil {
		return nil, nil, err
	}
	session.UserID = &user.ID
	return session, user, nil
}

// Logout clears the identity from the session.
func (a *App) Logout(sessionID string) error {
	return a.Sessions.End(sessionID)
}

// CurrentUser resolves the caller.
func (a *App) CurrentUser(sessionID string) (*models.User, error) {
	userID, err := a.Sessions.GetUser(sessionID)
	if err != nil {
		return nil, err
	}
	return a.Users.GetByID(userID)
}

func (a *App) GetUserByUsername(username string) (*models.User, error) {
	return a.Users.GetByUsername(username)
}

func (a *App) ListUsers() ([]models.User, error) {
	return a.Users.ListUsers()
}

func (a *App) UpdateUsername(sessionID, username string) error {
	userID, err := a.Sessions.GetUser(sessionID)
	if err != nil {
		return err
	}
	return a.Users.UpdateUsername(userID, username)
}

func (a *App) UpdatePassword(sessionID, currentPassword, newPassword string) error {
	userID, err := a.Sessions.GetUser(sessionID)
	if err != nil {
		return err
	}
	return a.Users.UpdatePassword(userID, currentPassword, newPassword)
}

// DeleteAccount ends the session, removes the profile if one exists, and
// deletes the identity.
func (a *App) DeleteAccount(sessionID string) error {
	userID, err := a.Sessions.GetUser(sessionID)
	if err != nil {
		return err
	}
	if err := a.Sessions.End(sessionID); err != nil {
		return err
	}
	if err := a.Profiles.DeleteProfile(userID); err != nil && !apperrors.IsKind(err, apperrors.KindNotFound) {
		return err
	}
	return a.Users.Delete(userID)
}
