package db

import (
	"gorm.io/gorm"

	"github.com/studio-ormeau/folio/internal/models"
)

// GetUserByUsername retrieves a user by username, or nil when absent.
func (db *DB) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "username = ?", username).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetUser retrieves a user by ID, or nil when absent.
func (db *DB) GetUser(id uint) (*models.User, error) {
	var user models.User
	err := db.First(&user, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser creates a new user. The caller is expected to have set the
// password hash through models.User.SetPassword.
func (db *DB) CreateUser(user *models.User) error {
	return db.Create(user).Error
}

// UserExists reports whether a user with the given username or email exists.
func (db *DB) UserExists(username, email string) (bool, error) {
	var count int64
	err := db.Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	return count > 0, err
}
