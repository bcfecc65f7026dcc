package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/creativahub/creativahub-backend/internal/data/repos"
	types "github.com/creativahub/creativahub-backend/internal/domain"
	"github.com/creativahub/creativahub-backend/internal/platform/apierr"
	"github.com/creativahub/creativahub-backend/internal/platform/logger"
)

type CreateSubmissionInput struct {
	AssignmentID   uuid.UUID `json:"assignment_id"`
	StudentID      uuid.UUID `json:"student_id"`
	SubmissionURL  string    `json:"submission_url"`
	SubmissionText string    `json:"submission_text"`
}

type GradeSubmissionInput struct {
	SubmissionID uuid.UUID `json:"submission_id"`
	Score        float64   `json:"score"`
	Feedback     *string   `json:"feedback"`
}

type SubmissionService interface {
	Create(ctx context.Context, input CreateSubmissionInput) (*types.AssignmentSubmission, error)
	Grade(ctx context.Context, input GradeSubmissionInput) (*types.AssignmentSubmission, error)
	GetAssignmentSubmissions(ctx context.Context, assignmentID uuid.UUID) ([]*types.AssignmentSubmission, error)
	GetStudentSubmissions(ctx context.Context, studentID uuid.UUID) ([]*types.AssignmentSubmission, error)
}

type submissionService struct {
	db             *gorm.DB
	log            *logger.Logger
	assignmentRepo repos.AssignmentRepo
	enrollmentRepo repos.EnrollmentRepo
	submissionRepo repos.SubmissionRepo
}

func NewSubmissionService(db *gorm.DB, log *logger.Logger, assignmentRepo repos.AssignmentRepo, enrollmentRepo repos.EnrollmentRepo, submissionRepo repos.SubmissionRepo) SubmissionService {
	serviceLog := log.With("service", "SubmissionService")
	return &submissionService{
		db:             db,
		log:            serviceLog,
		assignmentRepo: assignmentRepo,
		enrollmentRepo: enrollmentRepo,
		submissionRepo: submissionRepo,
	}
}

// Create checks assignment existence, publication, enrollment, then the
// one-submission-per-student invariant. The new row is written as
// submitted: handing work in is what creation means here.
func (ss *submissionService) Create(ctx context.Context, input CreateSubmissionInput) (*types.AssignmentSubmission, error) {
	now := time.Now().UTC()
	submission := &types.AssignmentSubmission{
		ID:             uuid.New(),
		AssignmentID:   input.AssignmentID,
		StudentID:      input.StudentID,
		SubmissionURL:  strings.TrimSpace(input.SubmissionURL),
		SubmissionText: input.SubmissionText,
		Status:         types.SubmissionSubmitted,
		SubmittedAt:    &now,
	}

	if err := ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		assignment, err := ss.assignmentRepo.GetByID(ctx, tx, input.AssignmentID)
		if err != nil {
			return fmt.Errorf("fetch assignment: %w", err)
		}
		if assignment == nil {
			return apierr.NotFound("assignment_not_found", "assignment %s does not exist", input.AssignmentID)
		}
		if assignment.Status != types.AssignmentPublished {
			return apierr.InvalidState("assignment_not_published", "assignment %s is not published", input.AssignmentID)
		}

		enrolled, err := ss.enrollmentRepo.Exists(ctx, tx, assignment.CourseID, input.StudentID)
		if err != nil {
			return fmt.Errorf("check enrollment: %w", err)
		}
		if !enrolled {
			return apierr.InvalidRole("student_not_enrolled", "student %s is not enrolled in course %s", input.StudentID, assignment.CourseID)
		}

		exists, err := ss.submissionRepo.Exists(ctx, tx, input.AssignmentID, input.StudentID)
		if err != nil {
			return fmt.Errorf("check submission: %w", err)
		}
		if exists {
			return apierr.Duplicate("submission_already_exists", "student %s already submitted assignment %s", input.StudentID, input.AssignmentID)
		}

		if _, err := ss.submissionRepo.Create(ctx, tx, submission); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apierr.Duplicate("submission_already_exists", "student %s already submitted assignment %s", input.StudentID, input.AssignmentID)
			}
			return fmt.Errorf("create submission: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return submission, nil
}

// Grade is re-enterable: grading an already graded submission overwrites
// score and feedback and refreshes the timestamps.
func (ss *submissionService) Grade(ctx context.Context, input GradeSubmissionInput) (*types.AssignmentSubmission, error) {
	if input.Score < 0 {
		return nil, apierr.Invalid("invalid_score", "score cannot be negative")
	}

	var out *types.AssignmentSubmission
	if err := ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := ss.submissionRepo.GetByID(ctx, tx, input.SubmissionID)
		if err != nil {
			return fmt.Errorf("fetch submission: %w", err)
		}
		if existing == nil {
			return apierr.NotFound("submission_not_found", "submission %s does not exist", input.SubmissionID)
		}

		now := time.Now().UTC()
		fields := map[string]any{
			"score":      input.Score,
			"feedback":   input.Feedback,
			"status":     types.SubmissionGraded,
			"graded_at":  now,
			"updated_at": now,
		}
		if err := ss.submissionRepo.UpdateFields(ctx, tx, input.SubmissionID, fields); err != nil {
			return fmt.Errorf("grade submission: %w", err)
		}

		reloaded, err := ss.submissionRepo.GetByID(ctx, tx, input.SubmissionID)
		if err != nil || reloaded == nil {
			return fmt.Errorf("reload submission: %w", err)
		}
		out = reloaded
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}

func (ss *submissionService) GetAssignmentSubmissions(ctx context.Context, assignmentID uuid.UUID) ([]*types.AssignmentSubmission, error) {
	return ss.submissionRepo.ListByAssignment(ctx, nil, assignmentID)
}

func (ss *submissionService) GetStudentSubmissions(ctx context.Context, studentID uuid.UUID) ([]*types.AssignmentSubmission, error) {
	return ss.submissionRepo.ListByStudent(ctx, nil, studentID)
}
