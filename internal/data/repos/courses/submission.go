package courses

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/creativahub/creativahub-backend/internal/domain"
	"github.com/creativahub/creativahub-backend/internal/platform/logger"
)

type SubmissionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, submission *types.AssignmentSubmission) (*types.AssignmentSubmission, error)
	GetByID(ctx context.Context, tx *gorm.DB, submissionID uuid.UUID) (*types.AssignmentSubmission, error)
	Exists(ctx context.Context, tx *gorm.DB, assignmentID, studentID uuid.UUID) (bool, error)
	ListByAssignment(ctx context.Context, tx *gorm.DB, assignmentID uuid.UUID) ([]*types.AssignmentSubmission, error)
	ListByStudent(ctx context.Context, tx *gorm.DB, studentID uuid.UUID) ([]*types.AssignmentSubmission, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, submissionID uuid.UUID, fields map[string]any) error
}

type submissionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSubmissionRepo(db *gorm.DB, baseLog *logger.Logger) SubmissionRepo {
	repoLog := baseLog.With("repo", "SubmissionRepo")
	return &submissionRepo{db: db, log: repoLog}
}

func (sr *submissionRepo) Create(ctx context.Context, tx *gorm.DB, submission *types.AssignmentSubmission) (*types.AssignmentSubmission, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	if err := transaction.WithContext(ctx).Create(submission).Error; err != nil {
		return nil, err
	}
	return submission, nil
}

func (sr *submissionRepo) GetByID(ctx context.Context, tx *gorm.DB, submissionID uuid.UUID) (*types.AssignmentSubmission, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var results []*types.AssignmentSubmission
	if err := transaction.WithContext(ctx).
		Where("id = ?", submissionID).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (sr *submissionRepo) Exists(ctx context.Context, tx *gorm.DB, assignmentID, studentID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.AssignmentSubmission{}).
		Where("assignment_id = ? AND student_id = ?", assignmentID, studentID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (sr *submissionRepo) ListByAssignment(ctx context.Context, tx *gorm.DB, assignmentID uuid.UUID) ([]*types.AssignmentSubmission, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var results []*types.AssignmentSubmission
	if err := transaction.WithContext(ctx).
		Where("assignment_id = ?", assignmentID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *submissionRepo) ListByStudent(ctx context.Context, tx *gorm.DB, studentID uuid.UUID) ([]*types.AssignmentSubmission, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var results []*types.AssignmentSubmission
	if err := transaction.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *submissionRepo) UpdateFields(ctx context.Context, tx *gorm.DB, submissionID uuid.UUID, fields map[string]any) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	if len(fields) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Model(&types.AssignmentSubmission{}).
		Where("id = ?", submissionID).
		Updates(fields).Error
}
