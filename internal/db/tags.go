package db

import "github.com/studio-ormeau/folio/internal/models"

// ListTags returns all tags ordered by name.
func (db *DB) ListTags() ([]models.Tag, error) {
	var tags []models.Tag
	err := db.Order("name ASC").Find(&tags).Error
	return tags, err
}
