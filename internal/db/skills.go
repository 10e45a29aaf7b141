package db

import (
	"gorm.io/gorm"

	"github.com/studio-ormeau/folio/internal/models"
)

// ListSkills returns all skills, optionally filtered by category.
// The pseudo-category "all" is treated as no filter.
func (db *DB) ListSkills(category string) ([]models.Skill, error) {
	var skills []models.Skill
	query := db.Order("id ASC")

	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}

	err := query.Find(&skills).Error
	return skills, err
}

// GetSkill retrieves a skill by ID, or nil when absent.
func (db *DB) GetSkill(id uint) (*models.Skill, error) {
	var skill models.Skill
	err := db.First(&skill, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &skill, nil
}

// CreateSkill creates a new skill.
func (db *DB) CreateSkill(skill *models.Skill) error {
	return db.Create(skill).Error
}

// UpdateSkill saves an existing skill.
func (db *DB) UpdateSkill(skill *models.Skill) error {
	return db.Save(skill).Error
}

// DeleteSkill removes a skill by ID.
func (db *DB) DeleteSkill(id uint) error {
	return db.Delete(&models.Skill{}, id).Error
}
