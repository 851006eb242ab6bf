package app

import (
	"testing"

	"tripmates-api/apperrors"
)

func TestApp_ViewLocation(t *testing.T) {
	a := newTestApp(t, nil)

	aliceSession, alice := signUp(t, a, "alice")
	bobSession, _ := signUp(t, a, "bob")

	if _, err := a.UpdateLocation(aliceSession, 48.8566, 2.3522, "Paris"); err != nil {
		t.Fatalf("UpdateLocation() error = %v", err)
	}

	// Not shared yet: even alice's own view is refused
	if _, err := a.ViewLocation(bobSession, alice.ID); !apperrors.IsKind(err, apperrors.KindNotAllowed) {
		t.Errorf("ViewLocation() of unshared location error = %v, want NotAllowed", err)
	}
	if _, err := a.ViewLocation(aliceSession, ""); !apperrors.IsKind(err, apperrors.KindNotAllowed) {
		t.Errorf("ViewLocation() of own unshared location error = %v, want NotAllowed", err)
	}

	if err := a.SetLocationSharing(aliceSession, true); err != nil {
		t.Fatalf("SetLocationSharing() error = %v", err)
	}

	viewed, err := a.ViewLocation(bobSession, alice.ID)
	if err != nil {
		t.Fatalf("ViewLocation() of shared location error = %v", err)
	}
	if viewed.Name != "Paris" {
		t.Errorf("viewed location = %q, want %q", viewed.Name, "Paris")
	}

	// An empty target means the caller's own location
	own, err := a.ViewLocation(aliceSession, "")
	if err != nil {
		t.Fatalf("ViewLocation() of own location error = %v", err)
	}
	if own.UserID != alice.ID {
		t.Errorf("own location user = %q, want %q", own.UserID, alice.ID)
	}
}

func TestApp_GetLocationDetails(t *testing.T) {
	a := newTestApp(t, nil)

	aliceSession, _ := signUp(t, a, "alice")

	info, err := a.GetLocationDetails(aliceSession, "Bangkok")
	if err != nil {
		t.Fatalf("GetLocationDetails() error = %v", err)
	}
	if info.Name != "Bangkok" {
		t.Errorf("details name = %q, want %q", info.Name, "Bangkok")
	}

	if _, err := a.GetLocationDetails("no-such-session", "Bangkok"); !apperrors.IsKind(err, apperrors.KindUnauthenticated) {
		t.Errorf("GetLocationDetails() without session error = %v, want Unauthenticated", err)
	}
}
