package db

import (
	"strings"

	"gorm.io/gorm"

	"github.com/studio-ormeau/folio/internal/models"
)

// ProjectFilter narrows ListProjects results.
type ProjectFilter struct {
	Featured bool
	Tag      string
}

// ListProjects returns projects with their tags preloaded, optionally
// filtered by featured flag or tag name.
func (db *DB) ListProjects(filter ProjectFilter) ([]models.Project, error) {
	var projects []models.Project
	// The tag filter joins tags, so the column must be qualified.
	query := db.Preload("Tags").Order("projects.id ASC")

	if filter.Featured {
		query = query.Where("featured = ?", true)
	}
	if filter.Tag != "" {
		query = query.
			Joins("JOIN project_tags pt ON pt.project_id = projects.id").
			Joins("JOIN tags ON tags.id = pt.tag_id").
			Where("tags.name = ?", filter.Tag)
	}

	err := query.Find(&projects).Error
	return projects, err
}

// GetProject retrieves a project by ID with its tags, or nil when absent.
func (db *DB) GetProject(id uint) (*models.Project, error) {
	var project models.Project
	err := db.Preload("Tags").First(&project, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

// CreateProject creates a project and associates it with the named tags,
// creating any tags that don't exist yet.
func (db *DB) CreateProject(project *models.Project, tagNames []string) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		tags, err := ensureTags(tx, tagNames)
		if err != nil {
			return err
		}
		project.Tags = tags
		return tx.Create(project).Error
	})
}

// UpdateProject saves project fields and replaces its tag set.
func (db *DB) UpdateProject(project *models.Project, tagNames []string) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		tags, err := ensureTags(tx, tagNames)
		if err != nil {
			return err
		}
		if err := tx.Model(project).Association("Tags").Replace(tags); err != nil {
			return err
		}
		project.Tags = tags
		return tx.Save(project).Error
	})
}

// DeleteProject removes a project and its tag associations.
func (db *DB) DeleteProject(id uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM project_tags WHERE project_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, id).Error
	})
}

// ensureTags resolves tag names into Tag records, creating missing ones.
// Blank names are skipped and duplicates collapse to one association.
func ensureTags(tx *gorm.DB, names []string) ([]models.Tag, error) {
	seen := make(map[string]bool)
	var tags []models.Tag
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[strings.ToLower(name)] {
			continue
		}
		seen[strings.ToLower(name)] = true

		var tag models.Tag
		err := tx.Where("name = ?", name).First(&tag).Error
		if err == gorm.ErrRecordNotFound {
			tag = models.Tag{Name: name}
			if err := tx.Create(&tag).Error; err != nil {
				return nil, err
			}
		} else if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}
