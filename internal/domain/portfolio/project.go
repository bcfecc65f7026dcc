package portfolio

import (
	"time"

	"github.com/google/uuid"

	"github.com/creativahub/creativahub-backend/internal/domain/user"
)

type Project struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID    uuid.UUID  `gorm:"type:uuid;not null;index;column:student_id" json:"student_id"`
	Student      *user.User `gorm:"constraint:OnDelete:CASCADE;foreignKey:StudentID;references:ID" json:"student,omitempty"`
	Title        string     `gorm:"not null;column:title" json:"title"`
	Description  string     `gorm:"column:description;type:text" json:"description,omitempty"`
	ProjectURL   string     `gorm:"column:project_url" json:"project_url,omitempty"`
	ThumbnailURL string     `gorm:"column:thumbnail_url" json:"thumbnail_url,omitempty"`
	// Comma-joined tag list, stored as entered.
	Tags      string    `gorm:"column:tags" json:"tags,omitempty"`
	IsPublic  bool      `gorm:"not null;default:false;index;column:is_public" json:"is_public"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Project) TableName() string { return "portfolio_projects" }
