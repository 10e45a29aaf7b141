package db

import (
	"gorm.io/gorm"

	"github.com/studio-ormeau/folio/internal/models"
)

// CreateContact stores a contact form submission.
func (db *DB) CreateContact(contact *models.Contact) error {
	return db.Create(contact).Error
}

// ListContacts returns all contact messages, newest first.
func (db *DB) ListContacts() ([]models.Contact, error) {
	var contacts []models.Contact
	err := db.Order("created_at DESC, id DESC").Find(&contacts).Error
	return contacts, err
}

// GetContact retrieves a contact by ID, or nil when absent.
func (db *DB) GetContact(id uint) (*models.Contact, error) {
	var contact models.Contact
	err := db.First(&contact, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}

// MarkContactRead flips the read flag to true. The flag never goes back.
func (db *DB) MarkContactRead(id uint) error {
	return db.Model(&models.Contact{}).Where("id = ?", id).Update("read", true).Error
}

// DeleteContact removes a contact message by ID.
func (db *DB) DeleteContact(id uint) error {
	return db.Delete(&models.Contact{}, id).Error
}
