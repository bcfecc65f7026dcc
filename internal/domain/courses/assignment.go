package courses

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type AssignmentStatus string

const (
	AssignmentDraft     AssignmentStatus = "draft"
	AssignmentPublished AssignmentStatus = "published"
	AssignmentClosed    AssignmentStatus = "closed"
)

func (s AssignmentStatus) Valid() bool {
	switch s {
	case AssignmentDraft, AssignmentPublished, AssignmentClosed:
		return true
	default:
		return false
	}
}

func ParseAssignmentStatus(s string) (AssignmentStatus, bool) {
	as := AssignmentStatus(strings.ToLower(strings.TrimSpace(s)))
	return as, as.Valid()
}

type Assignment struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	CourseID    uuid.UUID        `gorm:"type:uuid;not null;index;column:course_id" json:"course_id"`
	Course      *Course          `gorm:"constraint:OnDelete:CASCADE;foreignKey:CourseID;references:ID" json:"course,omitempty"`
	Title       string           `gorm:"not null;column:title" json:"title"`
	Description string           `gorm:"column:description;type:text" json:"description,omitempty"`
	DueDate     *time.Time       `gorm:"column:due_date" json:"due_date,omitempty"`
	MaxScore    float64          `gorm:"type:decimal(10,2);not null;column:max_score" json:"max_score"`
	Status      AssignmentStatus `gorm:"type:string;not null;default:'draft';index;column:status" json:"status"`
	CreatedAt   time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time        `gorm:"not null" json:"updated_at"`
}

func (Assignment) TableName() string { return "assignments" }
