package courses

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/creativahub/creativahub-backend/internal/domain/user"
)

type CourseStatus string

const (
	CourseDraft     CourseStatus = "draft"
	CoursePublished CourseStatus = "published"
	CourseArchived  CourseStatus = "archived"
)

func (s CourseStatus) Valid() bool {
	switch s {
	case CourseDraft, CoursePublished, CourseArchived:
		return true
	default:
		return false
	}
}

func ParseCourseStatus(s string) (CourseStatus, bool) {
	cs := CourseStatus(strings.ToLower(strings.TrimSpace(s)))
	return cs, cs.Valid()
}

type Course struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string       `gorm:"not null;column:title" json:"title"`
	Description  string       `gorm:"column:description;type:text" json:"description,omitempty"`
	TeacherID    uuid.UUID    `gorm:"type:uuid;not null;index;column:teacher_id" json:"teacher_id"`
	Teacher      *user.User   `gorm:"constraint:OnDelete:CASCADE;foreignKey:TeacherID;references:ID" json:"teacher,omitempty"`
	ThumbnailURL string       `gorm:"column:thumbnail_url" json:"thumbnail_url,omitempty"`
	Status       CourseStatus `gorm:"type:string;not null;default:'draft';index;column:status" json:"status"`
	CreatedAt    time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time    `gorm:"not null" json:"updated_at"`
}

func (Course) TableName() string { return "courses" }
