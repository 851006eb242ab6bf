package concepts

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tripmates-api/apperrors"
	"tripmates-api/models"
	"tripmates-api/utils"
)

// Authing owns identities and credentials. Password hashes never leave this
// concept; callers only ever see the User record with the hash blanked by
// the json:"-" tag.
type Authing struct {
	db *gorm.DB
}

func NewAuthing(db *gorm.DB) *Authing {
	return &Authing{db: db}
}

func (a *Authing) Register(username, password string) (*models.User, error) {
	if err := a.assertValidCredentials(username, password); err != nil {
		return nil, err
	}

	var existing models.User
	if err := a.db.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil, apperrors.Conflict("Username %s already taken.", username)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:       uuid.New().String(),
		Username: username,
		Password: string(hashed),
	}
	if err := a.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("Username %s already taken.", username)
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies credentials. The same error covers an unknown
// username and a wrong password.
func (a *Authing) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := a.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, apperrors.NotAllowed("Invalid username or password.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.NotAllowed("Invalid username or password.")
	}
	return &user, nil
}

func (a *Authing) GetByID(userID string) (*models.User, error) {
	var user models.User
	if err := a.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User not found.")
		}
		return nil, err
	}
	return &user, nil
}

func (a *Authing) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := a.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User %s not found.", username)
		}
		return nil, err
	}
	return &user, nil
}

func (a *Authing) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := a.db.Order("username").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (a *Authing) UpdateUsername(userID, username string) error {
	if !utils.IsValidUsername(username) {
		return apperrors.BadValues("Username must be 3-50 characters (letters, digits, '_', '.', '-').")
	}

	var existing models.User
	if err := a.db.Where("username = ? AND id <> ?", username, userID).First(&existing).Error; err == nil {
		return apperrors.Conflict("Username %s already taken.", username)
	}

	res := a.db.Model(&models.User{}).Where("id = ?", userID).Update("username", username)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("Username %s already taken.", username)
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("User not found.")
	}
	return nil
}

func (a *Authing) UpdatePassword(userID, currentPassword, newPassword string) error {
	user, err := a.GetByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return apperrors.NotAllowed("Current password is incorrect.")
	}
	if !utils.IsValidPassword(newPassword) {
		return apperrors.BadValues("Password must be at least 6 characters.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return a.db.Model(user).Update("password", string(hashed)).Error
}

func (a *Authing) Delete(userID string) error {
	res := a.db.Delete(&models.User{}, "id = ?", userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("User not found.")
	}
	return nil
}

func (a *Authing) assertValidCredentials(username, password string) error {
	if !utils.IsValidUsername(username) {
		return apperrors.BadValues("Username must be 3-50 characters (letters, digits, '_', '.', '-').")
	}
	if !utils.IsValidPassword(password) {
		return apperrors.BadValues("Password must be at least 6 characters.")
	}
	return nil
}
