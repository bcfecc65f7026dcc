package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/creativahub/creativahub-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string, role types.Role) *types.User {
	tb.Helper()
	u := &types.User{
		ID:       uuid.New(),
		Email:    email,
		Password: "pw",
		FullName: "Seed User",
		Role:     role,
		IsActive: true,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedInactiveUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string, role types.Role) *types.User {
	tb.Helper()
	u := SeedUser(tb, ctx, tx, email, role)
	if err := tx.WithContext(ctx).
		Model(&types.User{}).
		Where("id = ?", u.ID).
		Update("is_active", false).Error; err != nil {
		tb.Fatalf("deactivate seed user: %v", err)
	}
	u.IsActive = false
	return u
}

func SeedCourse(tb testing.TB, ctx context.Context, tx *gorm.DB, teacherID uuid.UUID, status types.CourseStatus) *types.Course {
	tb.Helper()
	c := &types.Course{
		ID:        uuid.New(),
		Title:     "course",
		TeacherID: teacherID,
		Status:    status,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed course: %v", err)
	}
	return c
}

func SeedEnrollment(tb testing.TB, ctx context.Context, tx *gorm.DB, courseID, studentID uuid.UUID) *types.CourseEnrollment {
	tb.Helper()
	e := &types.CourseEnrollment{
		ID:         uuid.New(),
		CourseID:   courseID,
		StudentID:  studentID,
		EnrolledAt: time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed enrollment: %v", err)
	}
	return e
}

func SeedMaterial(tb testing.TB, ctx context.Context, tx *gorm.DB, courseID uuid.UUID, orderIndex int) *types.LearningMaterial {
	tb.Helper()
	m := &types.LearningMaterial{
		ID:           uuid.New(),
		CourseID:     courseID,
		Title:        "material",
		MaterialType: "video",
		OrderIndex:   orderIndex,
	}
	if err := tx.WithContext(ctx).Create(m).Error; err != nil {
		tb.Fatalf("seed material: %v", err)
	}
	return m
}

func SeedAssignment(tb testing.TB, ctx context.Context, tx *gorm.DB, courseID uuid.UUID, status types.AssignmentStatus) *types.Assignment {
	tb.Helper()
	a := &types.Assignment{
		ID:       uuid.New(),
		CourseID: courseID,
		Title:    "assignment",
		MaxScore: 100,
		Status:   status,
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed assignment: %v", err)
	}
	return a
}

func SeedSubmission(tb testing.TB, ctx context.Context, tx *gorm.DB, assignmentID, studentID uuid.UUID, status types.SubmissionStatus) *types.AssignmentSubmission {
	tb.Helper()
	now := time.Now().UTC()
	s := &types.AssignmentSubmission{
		ID:           uuid.New(),
		AssignmentID: assignmentID,
		StudentID:    studentID,
		Status:       status,
		SubmittedAt:  &now,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed submission: %v", err)
	}
	return s
}

func SeedProject(tb testing.TB, ctx context.Context, tx *gorm.DB, studentID uuid.UUID, isPublic bool) *types.PortfolioProject {
	tb.Helper()
	p := &types.PortfolioProject{
		ID:        uuid.New(),
		StudentID: studentID,
		Title:     "project",
		IsPublic:  isPublic,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed project: %v", err)
	}
	return p
}
