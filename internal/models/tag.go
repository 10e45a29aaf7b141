package models

// Tag is a reusable label attached to projects. Tags are created on
// demand when a project references a new name and are shared across
// projects afterwards.
type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;uniqueIndex;not null" json:"name"`
}

// TableName specifies the table name for GORM.
func (Tag) TableName() string {
	return "tags"
}
