package dashboard

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/creativahub/creativahub-backend/internal/domain"
	"github.com/creativahub/creativahub-backend/internal/platform/logger"
)

// DashboardRepo is the read-only counting surface behind the dashboard.
// Every method is an independent scalar query; nothing is cached.
type DashboardRepo interface {
	CountUsers(ctx context.Context, tx *gorm.DB) (int64, error)
	CountUsersByRole(ctx context.Context, tx *gorm.DB, role types.Role) (int64, error)
	CountCourses(ctx context.Context, tx *gorm.DB) (int64, error)
	CountCoursesByTeacher(ctx context.Context, tx *gorm.DB, teacherID uuid.UUID) (int64, error)
	CountAssignmentsByTeacher(ctx context.Context, tx *gorm.DB, teacherID uuid.UUID) (int64, error)
	CountSubmissionsByTeacherAndStatus(ctx context.Context, tx *gorm.DB, teacherID uuid.UUID, status types.SubmissionStatus) (int64, error)
	CountEnrollmentsByStudent(ctx context.Context, tx *gorm.DB, studentID uuid.UUID) (int64, error)
	CountPublishedAssignmentsForStudent(ctx context.Context, tx *gorm.DB, studentID uuid.UUID) (int64, error)
	CountSubmissionsByStudentAndStatus(ctx context.Context, tx *gorm.DB, studentID uuid.UUID, status types.SubmissionStatus) (int64, error)
	CountProjectsByStudent(ctx context.Context, tx *gorm.DB, studentID uuid.UUID) (int64, error)
}

type dashboardRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDashboardRepo(db *gorm.DB, baseLog *logger.Logger) DashboardRepo {
	repoLog := baseLog.With("repo", "DashboardRepo")
	return &dashboardRepo{db: db, log: repoLog}
}

func (dr *dashboardRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return dr.db
}

func (dr *dashboardRepo) CountUsers(ctx context.Context, tx *gorm.DB) (int64, error) {
	var count int64
	err := dr.conn(tx).WithContext(ctx).
		Model(&types.User{}).
		Count(&count).Error
	return count, err
}

func (dr *dashboardRepo) CountUsersByRole(ctx context.Context, tx *gorm.DB, role types.Role) (int64, error) {
	var count int64
	err := dr.conn(tx).WithContext(ctx).
		Model(&types.User{}).
		Where("role = ?", role).
		Count(&count).Error
	return count, err
}

func (dr *dashboardRepo) CountCourses(ctx context.Context, tx *gorm.DB) (int64, error) {
	var count int64
	err := dr.conn(tx).WithContext(ctx).
		Model(&types.Course{}).
		Count(&count).Error
	return count, err
}

func (dr *dashboardRepo) CountCoursesByTeacher(ctx context.Context, tx *gorm.DB, teacherID uuid.UUID) (int64, error) {
	var count int64
	err := dr.conn(tx).WithContext(ctx).
		Model(&types.Course{}).
		Where("teacher_id = ?", teacherID).
		Count(&count).Error
	return count, err
}

func (dr *dashboardRepo) CountAssignmentsByTeacher(ctx context.Context, tx *gorm.DB, teacherID uuid.UUID) (int64, error) {
	var count int64
	err := dr.conn(tx).WithContext(ctx).
		Model(&types.Assignment{}).
		Joins("JOIN courses ON courses.id = assignments.course_id").
		Where("courses.teacher_id = ?", teacherID).
		Count(&count).Error
	return count, err
}

func (dr *dashboardRepo) CountSubmissionsByTeacherAndStatus(ctx context.Context, tx *gorm.DB, teacherID uuid.UUID, status types.SubmissionStatus) (int64, error) {
	var count int64
	err := dr.conn(tx).WithContext(ctx).
		Model(&types.AssignmentSubmission{}).
		Joins("JOIN assignments ON assignments.id = assignment_submissions.assignment_id").
		Joins("JOIN courses ON courses.id = assignments.course_id").
		Where("courses.teacher_id = ? AND assignment_submissions.status = ?", teacherID, status).
		Count(&count).Error
	return count, err
}

func (dr *dashboardRepo) CountEnrollmentsByStudent(ctx context.Context, tx *gorm.DB, studentID uuid.UUID) (int64, error) {
	var count int64
	err := dr.conn(tx).WithContext(ctx).
		Model(&types.CourseEnrollment{}).
		Where("student_id = ?", studentID).
		Count(&count).Error
	return count, err
}

func (dr *dashboardRepo) CountPublishedAssignmentsForStudent(ctx context.Context, tx *gorm.DB, studentID uuid.UUID) (int64, error) {
	var count int64
	err := dr.conn(tx).WithContext(ctx).
		Model(&types.Assignment{}).
		Joins("JOIN course_enrollments ON course_enrollments.course_id = assignments.course_id").
		Where("course_enrollments.student_id = ? AND assignments.status = ?", studentID, types.AssignmentPublished).
		Count(&count).Error
	return count, err
}

func (dr *dashboardRepo) CountSubmissionsByStudentAndStatus(ctx context.Context, tx *gorm.DB, studentID uuid.UUID, status types.SubmissionStatus) (int64, error) {
	var count int64
	err := dr.conn(tx).WithContext(ctx).
		Model(&types.AssignmentSubmission{}).
		Where("student_id = ? AND status = ?", studentID, status).
		Count(&count).Error
	return count, err
}

func (dr *dashboardRepo) CountProjectsByStudent(ctx context.Context, tx *gorm.DB, studentID uuid.UUID) (int64, error) {
	var count int64
	err := dr.conn(tx).WithContext(ctx).
		Model(&types.PortfolioProject{}).
		Where("student_id = ?", studentID).
		Count(&count).Error
	return count, err
}
