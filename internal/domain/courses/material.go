package courses

import (
	"time"

	"github.com/google/uuid"
)

type LearningMaterial struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CourseID     uuid.UUID `gorm:"type:uuid;not null;index;column:course_id" json:"course_id"`
	Course       *Course   `gorm:"constraint:OnDelete:CASCADE;foreignKey:CourseID;references:ID" json:"course,omitempty"`
	Title        string    `gorm:"not null;column:title" json:"title"`
	Description  string    `gorm:"column:description;type:text" json:"description,omitempty"`
	ContentURL   string    `gorm:"column:content_url" json:"content_url,omitempty"`
	FileURL      string    `gorm:"column:file_url" json:"file_url,omitempty"`
	MaterialType string    `gorm:"column:material_type" json:"material_type"`
	// Display order only; duplicates are allowed.
	OrderIndex int       `gorm:"not null;default:0;column:order_index" json:"order_index"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

func (LearningMaterial) TableName() string { return "learning_materials" }
