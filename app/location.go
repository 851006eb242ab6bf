package app

import "tripmates-api/models"

// UpdateLocation upserts the caller's location.
func (a *App) UpdateLocation(sessionID string, latitude, longitude float64, name string) (*models.Location, error) {
	callerID, err := a.Sessions.GetUser(sessionID)
	if err != nil {
		return nil, err
	}
	return a.Locating.UpdateLocation(callerID, latitude, longitude, name)
}

// SetLocationSharing toggles whether others may view the caller's location.
func (a *App) SetLocationSharing(sessionID string, share bool) error {
	callerID, err := a.Sessions.GetUser(sessionID)
	if err != nil {
		return err
	}
	return a.Locating.SetLocationSharing(callerID, share)
}

// ViewLocation shows another user's location, or the caller's own, but only
// while sharing is on.
func (a *App) ViewLocation(sessionID, targetUserID string) (*models.Location, error) {
	callerID, err := a.Sessions.GetUser(sessionID)
	if err != nil {
		return nil, err
	}
	if targetUserID == "" {
		targetUserID = callerID
	}
	return a.Locating.ViewLocation(targetUserID)
}

// GetLocationDetails looks up the gazetteer entry for a place name.
func (a *App) GetLocationDetails(sessionID, name string) (*models.LocationInfo, error) {
	if err := a.Sessions.AssertLoggedIn(sessionID); err != nil {
		return nil, err
	}
	return a.Locating.GetLocationDetails(name)
}
