package courses

import (
	"time"

	"github.com/google/uuid"

	"github.com/creativahub/creativahub-backend/internal/domain/user"
)

// CourseEnrollment joins a student to a published course. The composite
// unique index is the backstop for concurrent duplicate enrollments.
type CourseEnrollment struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CourseID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_enrollment_course_student;column:course_id" json:"course_id"`
	Course     *Course    `gorm:"constraint:OnDelete:CASCADE;foreignKey:CourseID;references:ID" json:"course,omitempty"`
	StudentID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_enrollment_course_student;index;column:student_id" json:"student_id"`
	Student    *user.User `gorm:"constraint:OnDelete:CASCADE;foreignKey:StudentID;references:ID" json:"student,omitempty"`
	EnrolledAt time.Time  `gorm:"not null;column:enrolled_at" json:"enrolled_at"`
	CreatedAt  time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"not null" json:"updated_at"`
}

func (CourseEnrollment) TableName() string { return "course_enrollments" }
