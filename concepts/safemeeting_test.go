package concepts

import (
	"testing"
	"time"

	"tripmates-api/apperrors"
	"tripmates-api/models"
)

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func proposeValid(t *testing.T, meetings *SafeMeeting) *models.Meeting {
	t.Helper()
	meeting, err := meetings.ProposeMeeting("user-a", "user-b", futureDate(7), "14:30", "Central Park", "1234567890")
	if err != nil {
		t.Fatalf("ProposeMeeting() error = %v", err)
	}
	return meeting
}

func TestSafeMeeting_ProposeMeeting_DateValidation(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{name: "future date", date: futureDate(7), wantErr: false},
		{name: "today", date: futureDate(0), wantErr: false},
		{name: "yesterday", date: futureDate(-1), wantErr: true},
		{name: "garbage", date: "not-a-date", wantErr: true},
		{name: "wrong format", date: "07/15/2026", wantErr: true},
		{name: "empty", date: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			meetings := NewSafeMeeting(db)

			_, err := meetings.ProposeMeeting("user-a", "user-b", tt.date, "14:30", "Central Park", "1234567890")
			if tt.wantErr {
				if !apperrors.IsKind(err, apperrors.KindBadValues) {
					t.Errorf("ProposeMeeting() error = %v, want BadValues", err)
				}
				return
			}
			if err != nil {
				t.Errorf("ProposeMeeting() error = %v", err)
			}
		})
	}
}

func TestSafeMeeting_ProposeMeeting_TimeValidation(t *testing.T) {
	tests := []struct {
		name      string
		timeOfDay string
		wantErr   bool
	}{
		{name: "midnight", timeOfDay: "00:00", wantErr: false},
		{name: "last minute", timeOfDay: "23:59", wantErr: false},
		{name: "afternoon", timeOfDay: "14:30", wantErr: false},
		{name: "hour out of range", timeOfDay: "24:00", wantErr: true},
		{name: "minute out of range", timeOfDay: "12:60", wantErr: true},
		{name: "both out of range", timeOfDay: "25:61", wantErr: true},
		{name: "missing leading zero", timeOfDay: "9:30", wantErr: true},
		{name: "not a time", timeOfDay: "noon", wantErr: true},
		{name: "empty", timeOfDay: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			meetings := NewSafeMeeting(db)

			_, err := meetings.ProposeMeeting("user-a", "user-b", futureDate(7), tt.timeOfDay, "Central Park", "1234567890")
			if tt.wantErr {
				if !apperrors.IsKind(err, apperrors.KindBadValues) {
					t.Errorf("ProposeMeeting() error = %v, want BadValues", err)
				}
				return
			}
			if err != nil {
				t.Errorf("ProposeMeeting() error = %v", err)
			}
		})
	}
}

func TestSafeMeeting_ProposeMeeting_EmergencyContactValidation(t *testing.T) {
	tests := []struct {
		name    string
		contact string
		wantErr bool
	}{
		{name: "ten digits", contact: "1234567890", wantErr: false},
		{name: "fifteen digits", contact: "123456789012345", wantErr: false},
		{name: "nine digits", contact: "123456789", wantErr: true},
		{name: "sixteen digits", contact: "1234567890123456", wantErr: true},
		{name: "letters", contact: "12345abcde", wantErr: true},
		{name: "dashes", contact: "123-456-7890", wantErr: true},
		{name: "empty", contact: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			meetings := NewSafeMeeting(db)

			_, err := meetings.ProposeMeeting("user-a", "user-b", futureDate(7), "14:30", "Central Park", tt.contact)
			if tt.wantErr {
				if !apperrors.IsKind(err, apperrors.KindBadValues) {
					t.Errorf("ProposeMeeting() error = %v, want BadValues", err)
				}
				return
			}
			if err != nil {
				t.Errorf("ProposeMeeting() error = %v", err)
			}
		})
	}
}

func TestSafeMeeting_ProposeMeeting_BlankLocationRejected(t *testing.T) {
	db := newTestDB(t)
	meetings := NewSafeMeeting(db)

	for _, location := range []string{"", "   "} {
		_, err := meetings.ProposeMeeting("user-a", "user-b", futureDate(7), "14:30", location, "1234567890")
		if !apperrors.IsKind(err, apperrors.KindBadValues) {
			t.Errorf("ProposeMeeting() with location %q error = %v, want BadValues", location, err)
		}
	}
}

func TestSafeMeeting_ProposeMeeting_StartsProposed(t *testing.T) {
	db := newTestDB(t)
	meetings := NewSafeMeeting(db)

	meeting := proposeValid(t, meetings)
	if meeting.Status != models.MeetingStatusProposed {
		t.Errorf("new meeting status = %q, want %q", meeting.Status, models.MeetingStatusProposed)
	}

	// Invalid proposals must leave nothing behind
	var count int64
	if err := db.Model(&models.Meeting{}).Count(&count).Error; err != nil {
		t.Fatalf("counting meetings: %v", err)
	}
	if count != 1 {
		t.Errorf("meeting count = %d, want 1", count)
	}
}

func TestSafeMeeting_ConfirmMeeting(t *testing.T) {
	db := newTestDB(t)
	meetings := NewSafeMeeting(db)

	meeting := proposeValid(t, meetings)
	confirmed, err := meetings.ConfirmMeeting(meeting.ID)
	if err != nil {
		t.Fatalf("ConfirmMeeting() error = %v", err)
	}
	if confirmed.Status != models.MeetingStatusConfirmed {
		t.Errorf("confirmed meeting status = %q, want %q", confirmed.Status, models.MeetingStatusConfirmed)
	}

	// A resolved meeting cannot be resolved again, either way
	if _, err := meetings.ConfirmMeeting(meeting.ID); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Errorf("second ConfirmMeeting() error = %v, want NotFound", err)
	}
	if _, err := meetings.DenyMeeting(meeting.ID); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Errorf("DenyMeeting() after confirm error = %v, want NotFound", err)
	}
}

func TestSafeMeeting_DenyMeeting(t *testing.T) {
	db := newTestDB(t)
	meetings := NewSafeMeeting(db)

	meeting := proposeValid(t, meetings)
	denied, err := meetings.DenyMeeting(meeting.ID)
	if err != nil {
		t.Fatalf("DenyMeeting() error = %v", err)
	}
	if denied.Status != models.MeetingStatusDenied {
		t.Errorf("denied meeting status = %q, want %q", denied.Status, models.MeetingStatusDenied)
	}

	if _, err := meetings.ConfirmMeeting(meeting.ID); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Errorf("ConfirmMeeting() after deny error = %v, want NotFound", err)
	}
}

func TestSafeMeeting_ResolveMissingMeeting(t *testing.T) {
	db := newTestDB(t)
	meetings := NewSafeMeeting(db)

	if _, err := meetings.ConfirmMeeting("no-such-meeting"); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Errorf("ConfirmMeeting() error = %v, want NotFound", err)
	}
	if _, err := meetings.DenyMeeting("no-such-meeting"); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Errorf("DenyMeeting() error = %v, want NotFound", err)
	}
}

func TestSafeMeeting_GetMeetings_BothRoles(t *testing.T) {
	db := newTestDB(t)
	meetings := NewSafeMeeting(db)

	if _, err := meetings.ProposeMeeting("user-a", "user-b", futureDate(7), "14:30", "Central Park", "1234567890"); err != nil {
		t.Fatalf("ProposeMeeting() error = %v", err)
	}
	if _, err := meetings.ProposeMeeting("user-c", "user-a", futureDate(3), "10:00", "Museum", "0987654321"); err != nil {
		t.Fatalf("ProposeMeeting() error = %v", err)
	}
	if _, err := meetings.ProposeMeeting("user-b", "user-c", futureDate(1), "09:00", "Cafe", "1112223334"); err != nil {
		t.Fatalf("ProposeMeeting() error = %v", err)
	}

	list, err := meetings.GetMeetings("user-a")
	if err != nil {
		t.Fatalf("GetMeetings() error = %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("GetMeetings() returned %d meetings, want 2 (proposed and received)", len(list))
	}
	if list[0].Date.After(list[1].Date) {
		t.Error("GetMeetings() not ordered by date ascending")
	}
}

func TestSafeMeeting_SetEmergencyContact(t *testing.T) {
	db := newTestDB(t)
	meetings := NewSafeMeeting(db)

	meeting := proposeValid(t, meetings)

	if err := meetings.SetEmergencyContact(meeting.ID, "0987654321"); err != nil {
		t.Fatalf("SetEmergencyContact() error = %v", err)
	}
	updated, err := meetings.GetMeetingByID(meeting.ID)
	if err != nil {
		t.Fatalf("GetMeetingByID() error = %v", err)
	}
	if updated.EmergencyContact != "0987654321" {
		t.Errorf("emergency contact = %q, want %q", updated.EmergencyContact, "0987654321")
	}

	if err := meetings.SetEmergencyContact(meeting.ID, "123"); !apperrors.IsKind(err, apperrors.KindBadValues) {
		t.Errorf("SetEmergencyContact() with short number error = %v, want BadValues", err)
	}
	if err := meetings.SetEmergencyContact("no-such-meeting", "1234567890"); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Errorf("SetEmergencyContact() for missing meeting error = %v, want NotFound", err)
	}

	// The contact stays editable after the meeting is resolved
	if _, err := meetings.ConfirmMeeting(meeting.ID); err != nil {
		t.Fatalf("ConfirmMeeting() error = %v", err)
	}
	if err := meetings.SetEmergencyContact(meeting.ID, "1112223334"); err != nil {
		t.Errorf("SetEmergencyContact() after confirm error = %v", err)
	}
}
