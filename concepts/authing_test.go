package concepts

import (
	"testing"

	"tripmates-api/apperrors"
)

func TestAuthing_Register(t *testing.T) {
	db := newTestDB(t)
	authing := NewAuthing(db)

	user, err := authing.Register("wanderer", "secret123")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.Username != "wanderer" {
		t.Errorf("username = %q, want %q", user.Username, "wanderer")
	}
	if user.Password == "secret123" {
		t.Error("password stored in plain text")
	}
}

func TestAuthing_Register_Validation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantKind apperrors.Kind
	}{
		{name: "short username", username: "ab", password: "secret123", wantKind: apperrors.KindBadValues},
		{name: "username with spaces", username: "bad name", password: "secret123", wantKind: apperrors.KindBadValues},
		{name: "short password", username: "wanderer", password: "12345", wantKind: apperrors.KindBadValues},
		{name: "empty password", username: "wanderer", password: "", wantKind: apperrors.KindBadValues},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			authing := NewAuthing(db)

			_, err := authing.Register(tt.username, tt.password)
			if !apperrors.IsKind(err, tt.wantKind) {
				t.Errorf("Register() error = %v, want kind %v", err, tt.wantKind)
			}
		})
	}
}

func TestAuthing_Register_DuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	authing := NewAuthing(db)

	if _, err := authing.Register("wanderer", "secret123"); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}
	if _, err := authing.Register("wanderer", "different456"); !apperrors.IsKind(err, apperrors.KindConflict) {
		t.Errorf("second Register() error = %v, want Conflict", err)
	}
}

func TestAuthing_Authenticate(t *testing.T) {
	db := newTestDB(t)
	authing := NewAuthing(db)

	if _, err := authing.Register("wanderer", "secret123"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	user, err := authing.Authenticate("wanderer", "secret123")
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if user.Username != "wanderer" {
		t.Errorf("authenticated username = %q, want %q", user.Username, "wanderer")
	}

	// Unknown user and wrong password must be indistinguishable
	_, errUnknown := authing.Authenticate("stranger", "secret123")
	_, errWrongPass := authing.Authenticate("wanderer", "wrongpass")
	for _, err := range []error{errUnknown, errWrongPass} {
		if !apperrors.IsKind(err, apperrors.KindNotAllowed) {
			t.Errorf("Authenticate() error = %v, want NotAllowed", err)
		}
	}
	if errUnknown.Error() != errWrongPass.Error() {
		t.Errorf("unknown-user and wrong-password errors differ: %q vs %q",
			errUnknown.Error(), errWrongPass.Error())
	}
}

func TestAuthing_GetByUsername(t *testing.T) {
	db := newTestDB(t)
	authing := NewAuthing(db)

	if _, err := authing.Register("wanderer", "secret123"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	user, err := authing.GetByUsername("wanderer")
	if err != nil {
		t.Fatalf("GetByUsername() error = %v", err)
	}
	if user.Username != "wanderer" {
		t.Errorf("username = %q, want %q", user.Username, "wanderer")
	}

	if _, err := authing.GetByUsername("stranger"); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Errorf("GetByUsername() for unknown user error = %v, want NotFound", err)
	}
}

func TestAuthing_UpdateUsername(t *testing.T) {
	db := newTestDB(t)
	authing := NewAuthing(db)

	user, err := authing.Register("wanderer", "secret123")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if _, err := authing.Register("nomad", "secret123"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if err := authing.UpdateUsername(user.ID, "globetrotter"); err != nil {
		t.Fatalf("UpdateUsername() error = %v", err)
	}
	renamed, err := authing.GetByID(user.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if renamed.Username != "globetrotter" {
		t.Errorf("username = %q, want %q", renamed.Username, "globetrotter")
	}

	if err := authing.UpdateUsername(user.ID, "nomad"); !apperrors.IsKind(err, apperrors.KindConflict) {
		t.Errorf("UpdateUsername() to taken name error = %v, want Conflict", err)
	}
	if err := authing.UpdateUsername(user.ID, "x"); !apperrors.IsKind(err, apperrors.KindBadValues) {
		t.Errorf("UpdateUsername() to invalid name error = %v, want BadValues", err)
	}
	if err := authing.UpdateUsername("no-such-user", "somebody"); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Errorf("UpdateUsername() for missing user error = %v, want NotFound", err)
	}
}

func TestAuthing_UpdatePassword(t *testing.T) {
	db := newTestDB(t)
	authing := NewAuthing(db)

	user, err := authing.Register("wanderer", "secret123")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if err := authing.UpdatePassword(user.ID, "wrongpass", "newsecret"); !apperrors.IsKind(err, apperrors.KindNotAllowed) {
		t.Errorf("UpdatePassword() with wrong current error = %v, want NotAllowed", err)
	}
	if err := authing.UpdatePassword(user.ID, "secret123", "123"); !apperrors.IsKind(err, apperrors.KindBadValues) {
		t.Errorf("UpdatePassword() with weak new error = %v, want BadValues", err)
	}

	if err := authing.UpdatePassword(user.ID, "secret123", "newsecret"); err != nil {
		t.Fatalf("UpdatePassword() error = %v", err)
	}
	if _, err := authing.Authenticate("wanderer", "newsecret"); err != nil {
		t.Errorf("Authenticate() with new password error = %v", err)
	}
	if _, err := authing.Authenticate("wanderer", "secret123"); !apperrors.IsKind(err, apperrors.KindNotAllowed) {
		t.Errorf("Authenticate() with old password error = %v, want NotAllowed", err)
	}
}

func TestAuthing_Delete(t *testing.T) {
	db := newTestDB(t)
	authing := NewAuthing(db)

	user, err := authing.Register("wanderer", "secret123")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := authing.Delete(user.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := authing.GetByID(user.ID); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Errorf("GetByID() after delete error = %v, want NotFound", err)
	}
	if err := authing.Delete(user.ID); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Errorf("second Delete() error = %v, want NotFound", err)
	}
}

func TestAuthing_ListUsers(t *testing.T) {
	db := newTestDB(t)
	authing := NewAuthing(db)

	for _, name := range []string{"charlie", "alice", "bob"} {
		if _, err := authing.Register(name, "secret123"); err != nil {
			t.Fatalf("Register(%q) error = %v", name, err)
		}
	}

	users, err := authing.ListUsers()
	if err != nil {
		t.Fatalf("ListUsers() error = %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("ListUsers() returned %d users, want 3", len(users))
	}
	want := []string{"alice", "bob", "charlie"}
	for i, user := range users {
		if user.Username != want[i] {
			t.Errorf("user %d = %q, want %q (sorted by username)", i, user.Username, want[i])
		}
	}
}
