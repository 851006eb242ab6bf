package app

import (
	"sync"

	"tripmates-api/apperrors"
	"tripmates-api/logger"
	"tripmates-api/models"
)

// RateOutcome is the aggregate result of a rate operation. Chat is set only
// when this rating completed a mutual like and opened a new thread.
type RateOutcome struct {
	Rating        *models.Rating      `json:"rating"`
	Match         *models.Match       `json:"match,omitempty"`
	Chat          *models.ChatSession `json:"chat,omitempty"`
	Compatibility *float64            `json:"compatibility,omitempty"`
}

// RateUser records a rating and, on a newly created mutual match, opens a
// chat between the pair. Repeat ratings fail with Matching's own conflict
// before any chat could be created, so the chain stays idempotent from the
// caller's perspective.
func (a *App) RateUser(sessionID, targetUserID string, liked bool) (*RateOutcome, error) {
	callerID, err := a.Sessions.GetUser(sessionID)
	if err != nil {
		return nil, err
	}
	if callerID == targetUserID {
		return nil, apperrors.NotAllowed("You cannot rate yourself.")
	}

	target, err := a.Users.GetByID(targetUserID)
	if err != nil {
		return nil, err
	}

	result, err := a.Matching.RateUser(callerID, targetUserID, liked)
	if err != nil {
		return nil, err
	}

	outcome := &RateOutcome{Rating: result.Rating, Match: result.Match}
	outcome.Compatibility = a.compatibilityWith(callerID, targetUserID)

	if result.Match != nil {
		chat, chatErr := a.Chatting.StartSession([]string{callerID, targetUserID})
		if chatErr != nil {
			return nil, chatErr
		}
		outcome.Chat = chat
		a.notifyMatch(callerID, target)
	}
	return outcome, nil
}

// GetRatings returns the caller's ratings, given and received.
func (a *App) GetRatings(sessionID string) ([]models.Rating, error) {
	callerID, err := a.Sessions.GetUser(sessionID)
	if err != nil {
		return nil, err
	}
	return a.Matching.GetRatings(callerID)
}

// GetMatches returns the caller's matches.
func (a *App) GetMatches(sessionID string) ([]models.Match, error) {
	callerID, err := a.Sessions.GetUser(sessionID)
	if err != nil {
		return nil, err
	}
	return a.Matching.GetMatches(callerID)
}

// Candidate is a rateable user: every identity other than the caller that
// has completed a profile.
type Candidate struct {
	User          models.User     `json:"user"`
	Profile       *models.Profile `json:"profile"`
	Compatibility *float64        `json:"compatibility,omitempty"`
}

// ListCandidates fetches every identity, drops the caller and anyone without
// a profile, and optionally annotates the rest with compatibility. Profile
// reads are independent, so they fan out concurrently.
func (a *App) ListCandidates(sessionID string, withCompatibility bool) ([]Candidate, error) {
	callerID, err := a.Sessions.GetUser(sessionID)
	if err != nil {
		return nil, err
	}

	var callerProfile *models.Profile
	if withCompatibility {
		callerProfile, err = a.Profiles.GetProfile(callerID)
		if err != nil {
			if !apperrors.IsKind(err, apperrors.KindNotFound) {
				return nil, err
			}
			callerProfile = nil
		}
	}

	users, err := a.Users.ListUsers()
	if err != nil {
		return nil, err
	}

	type fetched struct {
		user    models.User
		profile *models.Profile
	}

	results := make([]fetched, len(users))
	var wg sync.WaitGroup
	for i, user := range users {
		if user.ID == callerID {
			continue
		}
		wg.Add(1)
		go func(i int, user models.User) {
			defer wg.Done()
			profile, profileErr := a.Profiles.GetProfile(user.ID)
			if profileErr != nil {
				// Candidates without a profile are dropped silently
				return
			}
			results[i] = fetched{user: user, profile: profile}
		}(i, user)
	}
	wg.Wait()

	candidates := make([]Candidate, 0, len(users))
	for _, r := range results {
		if r.profile == nil {
			continue
		}
		candidate := Candidate{User: r.user, Profile: r.profile}
		if callerProfile != nil {
			score := CompatibilityScore(callerProfile, r.profile)
			candidate.Compatibility = &score
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

// compatibilityWith computes the caller-target score when both profiles
// exist; otherwise the annotation is simply omitted.
func (a *App) compatibilityWith(callerID, targetUserID string) *float64 {
	callerProfile, err := a.Profiles.GetProfile(callerID)
	if err != nil {
		return nil
	}
	targetProfile, err := a.Profiles.GetProfile(targetUserID)
	if err != nil {
		return nil
	}
	score := CompatibilityScore(callerProfile, targetProfile)
	return &score
}

func (a *App) notifyMatch(callerID string, target *models.User) {
	if a.notifier == nil {
		return
	}
	caller, err := a.Users.GetByID(callerID)
	if err != nil {
		logger.Warn("Skipping match notification", "error", err)
		return
	}
	// Fire and forget: notification failures never affect the operation
	go func(caller, target models.User) {
		a.notifier.NotifyMatch(caller, target)
		a.notifier.NotifyMatch(target, caller)
	}(*caller, *target)
}
