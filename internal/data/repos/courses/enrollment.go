package courses

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/creativahub/creativahub-backend/internal/domain"
	"github.com/creativahub/creativahub-backend/internal/platform/logger"
)

type EnrollmentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, enrollment *types.CourseEnrollment) (*types.CourseEnrollment, error)
	Exists(ctx context.Context, tx *gorm.DB, courseID, studentID uuid.UUID) (bool, error)
	ListByCourse(ctx context.Context, tx *gorm.DB, courseID uuid.UUID) ([]*types.CourseEnrollment, error)
	ListByStudent(ctx context.Context, tx *gorm.DB, studentID uuid.UUID) ([]*types.CourseEnrollment, error)
}

type enrollmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEnrollmentRepo(db *gorm.DB, baseLog *logger.Logger) EnrollmentRepo {
	repoLog := baseLog.With("repo", "EnrollmentRepo")
	return &enrollmentRepo{db: db, log: repoLog}
}

func (er *enrollmentRepo) Create(ctx context.Context, tx *gorm.DB, enrollment *types.CourseEnrollment) (*types.CourseEnrollment, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	if err := transaction.WithContext(ctx).Create(enrollment).Error; err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (er *enrollmentRepo) Exists(ctx context.Context, tx *gorm.DB, courseID, studentID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.CourseEnrollment{}).
		Where("course_id = ? AND student_id = ?", courseID, studentID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (er *enrollmentRepo) ListByCourse(ctx context.Context, tx *gorm.DB, courseID uuid.UUID) ([]*types.CourseEnrollment, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	var results []*types.CourseEnrollment
	if err := transaction.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("enrolled_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (er *enrollmentRepo) ListByStudent(ctx context.Context, tx *gorm.DB, studentID uuid.UUID) ([]*types.CourseEnrollment, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	var results []*types.CourseEnrollment
	if err := transaction.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("enrolled_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
