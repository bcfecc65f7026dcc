package courses

import (
	"time"

	"github.com/google/uuid"

	"github.com/creativahub/creativahub-backend/internal/domain/user"
)

// SubmissionStatus moves draft → submitted → graded. Grading may repeat
// (score and feedback are overwritten); there is no path back to draft.
type SubmissionStatus string

const (
	SubmissionDraft     SubmissionStatus = "draft"
	SubmissionSubmitted SubmissionStatus = "submitted"
	SubmissionGraded    SubmissionStatus = "graded"
)

func (s SubmissionStatus) Valid() bool {
	switch s {
	case SubmissionDraft, SubmissionSubmitted, SubmissionGraded:
		return true
	default:
		return false
	}
}

type AssignmentSubmission struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	AssignmentID   uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uq_submission_assignment_student;column:assignment_id" json:"assignment_id"`
	Assignment     *Assignment      `gorm:"constraint:OnDelete:CASCADE;foreignKey:AssignmentID;references:ID" json:"assignment,omitempty"`
	StudentID      uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uq_submission_assignment_student;index;column:student_id" json:"student_id"`
	Student        *user.User       `gorm:"constraint:OnDelete:CASCADE;foreignKey:StudentID;references:ID" json:"student,omitempty"`
	SubmissionURL  string           `gorm:"column:submission_url" json:"submission_url,omitempty"`
	SubmissionText string           `gorm:"column:submission_text;type:text" json:"submission_text,omitempty"`
	Score          *float64         `gorm:"type:decimal(10,2);column:score" json:"score"`
	Feedback       *string          `gorm:"column:feedback;type:text" json:"feedback"`
	Status         SubmissionStatus `gorm:"type:string;not null;default:'draft';index;column:status" json:"status"`
	SubmittedAt    *time.Time       `gorm:"column:submitted_at" json:"submitted_at,omitempty"`
	GradedAt       *time.Time       `gorm:"column:graded_at" json:"graded_at,omitempty"`
	CreatedAt      time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time        `gorm:"not null" json:"updated_at"`
}

func (AssignmentSubmission) TableName() string { return "assignment_submissions" }
