package app

import "tripmates-api/models"

// UpdateProfile upserts the caller's compatibility profile.
func (a *App) UpdateProfile(sessionID string, details models.ProfileDetails) (*models.Profile, error) {
	callerID, err := a.Sessions.GetUser(sessionID)
	if err != nil {
		return nil, err
	}
	return a.Profiles.UpdateProfile(callerID, details)
}

// GetProfile returns the caller's own profile.
func (a *App) GetProfile(sessionID string) (*models.Profile, error) {
	callerID, err := a.Sessions.GetUser(sessionID)
	if err != nil {
		return nil, err
	}
	return a.Profiles.GetProfile(callerID)
}

// GetProfileOf returns another user's profile.
func (a *App) GetProfileOf(sessionID, userID string) (*models.Profile, error) {
	if err := a.Sessions.AssertLoggedIn(sessionID); err != nil {
		return nil, err
	}
	return a.Profiles.GetProfile(userID)
}

// DeleteProfile removes the caller's profile.
func (a *App) DeleteProfile(sessionID string) error {
	callerID, err := a.Sessions.GetUser(sessionID)
	if err != nil {
		return err
	}
	return a.Profiles.DeleteProfile(callerID)
}
