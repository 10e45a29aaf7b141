// Package models defines the core data structures for folio.
package models

// Project represents a portfolio project entry.
type Project struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:100;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`

	// Image is either a URL or embedded base64 data, so it needs text
	// rather than a bounded varchar.
	Image   string  `gorm:"type:text" json:"image"`
	DemoURL *string `gorm:"size:255;column:demo_url" json:"demoUrl"`
	RepoURL *string `gorm:"size:255;column:repo_url" json:"repoUrl"`

	Featured bool  `gorm:"default:false" json:"featured"`
	Tags     []Tag `gorm:"many2many:project_tags" json:"tags"`
}

// TableName specifies the table name for GORM.
func (Project) TableName() string {
	return "projects"
}

// TagNames returns the project's tag names in association order.
func (p *Project) TagNames() []string {
	names := make([]string, 0, len(p.Tags))
	for _, tag := range p.Tags {
		names = append(names, tag.Name)
	}
	return names
}
