package models

// Skill represents a single skill with a proficiency level out of 100.
type Skill struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:50;not null" json:"name"`
	Level    int    `gorm:"not null" json:"level"`
	Category string `gorm:"size:20;not null;index" json:"category"`
}

// TableName specifies the table name for GORM.
func (Skill) TableName() string {
	return "skills"
}

// Skill categories.
const (
	CategoryFrontend = "frontend"
	CategoryBackend  = "backend"
	CategoryDatabase = "database"
	CategoryDevOps   = "devops"
	CategoryMobile   = "mobile"
	CategoryDesign   = "design"
	CategoryOther    = "other"
)

// ValidCategories returns all valid skill categories.
func ValidCategories() []string {
	return []string{
		CategoryFrontend,
		CategoryBackend,
		CategoryDatabase,
		CategoryDevOps,
		CategoryMobile,
		CategoryDesign,
		CategoryOther,
	}
}

// IsValidCategory reports whether category is one of the fixed set.
func IsValidCategory(category string) bool {
	for _, c := range ValidCategories() {
		if c == category {
			return true
		}
	}
	return false
}
