package concepts

import (
	"strings"
	"testing"

	"tripmates-api/apperrors"
	"tripmates-api/models"
)

func validProfileDetails() models.ProfileDetails {
	return models.ProfileDetails{
		Gender:      models.GenderWoman,
		Age:         28,
		TravelStyle: models.TravelStyleRelaxed,
		City:        "Barcelona",
		Question1:   models.AnswerAgree,
		Question2:   models.AnswerNeutral,
	}
}

func TestUserProfiling_UpdateProfile_Creates(t *testing.T) {
	db := newTestDB(t)
	profiles := NewUserProfiling(db)

	profile, err := profiles.UpdateProfile("user-a", validProfileDetails())
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if profile.UserID != "user-a" {
		t.Errorf("profile user = %q, want %q", profile.UserID, "user-a")
	}
	if profile.City != "Barcelona" {
		t.Errorf("profile city = %q, want %q", profile.City, "Barcelona")
	}
}

func TestUserProfiling_UpdateProfile_Upserts(t *testing.T) {
	db := newTestDB(t)
	profiles := NewUserProfiling(db)

	first, err := profiles.UpdateProfile("user-a", validProfileDetails())
	if err != nil {
		t.Fatalf("first UpdateProfile() error = %v", err)
	}

	details := validProfileDetails()
	details.City = "Tokyo"
	details.Question2 = models.AnswerDisagree
	second, err := profiles.UpdateProfile("user-a", details)
	if err != nil {
		t.Fatalf("second UpdateProfile() error = %v", err)
	}

	if second.ID != first.ID {
		t.Error("update created a second profile instead of patching the first")
	}
	if second.City != "Tokyo" {
		t.Errorf("updated city = %q, want %q", second.City, "Tokyo")
	}
	if second.Question2 != models.AnswerDisagree {
		t.Errorf("updated question 2 = %q, want %q", second.Question2, models.AnswerDisagree)
	}

	var count int64
	if err := db.Model(&models.Profile{}).Where("user_id = ?", "user-a").Count(&count).Error; err != nil {
		t.Fatalf("counting profiles: %v", err)
	}
	if count != 1 {
		t.Errorf("profile count = %d, want 1", count)
	}
}

func TestUserProfiling_UpdateProfile_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.ProfileDetails)
		wantMsg string
	}{
		{
			name:    "missing field",
			mutate:  func(d *models.ProfileDetails) { d.TravelStyle = "" },
			wantMsg: "All profile fields",
		},
		{
			name:    "invalid gender",
			mutate:  func(d *models.ProfileDetails) { d.Gender = "robot" },
			wantMsg: "Gender must be",
		},
		{
			name:    "too young",
			mutate:  func(d *models.ProfileDetails) { d.Age = 15 },
			wantMsg: "Age must be",
		},
		{
			name:    "too old",
			mutate:  func(d *models.ProfileDetails) { d.Age = 100 },
			wantMsg: "Age must be",
		},
		{
			name:    "invalid travel style",
			mutate:  func(d *models.ProfileDetails) { d.TravelStyle = "chaotic" },
			wantMsg: "Travel style must be",
		},
		{
			name:    "city not in list",
			mutate:  func(d *models.ProfileDetails) { d.City = "Gotham" },
			wantMsg: "Location must be within",
		},
		{
			name:    "invalid answer",
			mutate:  func(d *models.ProfileDetails) { d.Question1 = "Maybe" },
			wantMsg: "Responses to questions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			profiles := NewUserProfiling(db)

			details := validProfileDetails()
			tt.mutate(&details)

			_, err := profiles.UpdateProfile("user-a", details)
			if !apperrors.IsKind(err, apperrors.KindBadValues) {
				t.Fatalf("UpdateProfile() error = %v, want BadValues", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("UpdateProfile() error = %q, want it to mention %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestUserProfiling_GetProfile(t *testing.T) {
	db := newTestDB(t)
	profiles := NewUserProfiling(db)

	if _, err := profiles.GetProfile("user-a"); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Errorf("GetProfile() before create error = %v, want NotFound", err)
	}

	if _, err := profiles.UpdateProfile("user-a", validProfileDetails()); err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	profile, err := profiles.GetProfile("user-a")
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if profile.Gender != models.GenderWoman {
		t.Errorf("profile gender = %q, want %q", profile.Gender, models.GenderWoman)
	}
}

func TestUserProfiling_DeleteProfile(t *testing.T) {
	db := newTestDB(t)
	profiles := NewUserProfiling(db)

	if err := profiles.DeleteProfile("user-a"); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Errorf("DeleteProfile() before create error = %v, want NotFound", err)
	}

	if _, err := profiles.UpdateProfile("user-a", validProfileDetails()); err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if err := profiles.DeleteProfile("user-a"); err != nil {
		t.Fatalf("DeleteProfile() error = %v", err)
	}
	if _, err := profiles.GetProfile("user-a"); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Errorf("GetProfile() after delete error = %v, want NotFound", err)
	}
}
