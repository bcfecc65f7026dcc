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

type CreateCourseInput struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	TeacherID    uuid.UUID `json:"teacher_id"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Status       string    `json:"status"`
}

type UpdateCourseInput struct {
	ID           uuid.UUID `json:"id"`
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	Status       *string   `json:"status"`
}

type CourseService interface {
	Create(ctx context.Context, input CreateCourseInput) (*types.Course, error)
	Update(ctx context.Context, input UpdateCourseInput) (*types.Course, error)
	GetPublishedCourses(ctx context.Context) ([]*types.Course, error)
	GetUserCourses(ctx context.Context, userID uuid.UUID, role string) ([]*types.Course, error)
	GetCourseDetails(ctx context.Context, courseID uuid.UUID) (*types.Course, error)
	Enroll(ctx context.Context, courseID, studentID uuid.UUID) (*types.CourseEnrollment, error)
}

type courseService struct {
	db             *gorm.DB
	log            *logger.Logger
	userRepo       repos.UserRepo
	courseRepo     repos.CourseRepo
	enrollmentRepo repos.EnrollmentRepo
}

func NewCourseService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, courseRepo repos.CourseRepo, enrollmentRepo repos.EnrollmentRepo) CourseService {
	serviceLog := log.With("service", "CourseService")
	return &courseService{
		db:             db,
		log:            serviceLog,
		userRepo:       userRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// Create checks the teacher in a fixed order (existence, role, active) so
// the failure reported for a bad teacher is always the same one.
func (cs *courseService) Create(ctx context.Context, input CreateCourseInput) (*types.Course, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apierr.Invalid("title_required", "a course title is required")
	}

	status := types.CourseDraft
	if strings.TrimSpace(input.Status) != "" {
		parsed, ok := types.ParseCourseStatus(input.Status)
		if !ok {
			return nil, apierr.Invalid("invalid_status", "status must be draft, published or archived")
		}
		status = parsed
	}

	course := &types.Course{
		ID:           uuid.New(),
		Title:        title,
		Description:  strings.TrimSpace(input.Description),
		TeacherID:    input.TeacherID,
		ThumbnailURL: strings.TrimSpace(input.ThumbnailURL),
		Status:       status,
	}

	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		teacher, err := cs.userRepo.GetByID(ctx, tx, input.TeacherID)
		if err != nil {
			return fmt.Errorf("fetch teacher: %w", err)
		}
		if teacher == nil {
			return apierr.NotFound("teacher_not_found", "teacher %s does not exist", input.TeacherID)
		}
		if teacher.Role != types.RoleTeacher && teacher.Role != types.RoleAdmin {
			return apierr.InvalidRole("invalid_teacher_role", "user %s is not a teacher", input.TeacherID)
		}
		if !teacher.IsActive {
			return apierr.Inactive("teacher_inactive", "teacher %s is deactivated", input.TeacherID)
		}
		if _, err := cs.courseRepo.Create(ctx, tx, course); err != nil {
			return fmt.Errorf("create course: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return course, nil
}

func (cs *courseService) Update(ctx context.Context, input UpdateCourseInput) (*types.Course, error) {
	var out *types.Course
	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := cs.courseRepo.GetByID(ctx, tx, input.ID)
		if err != nil {
			return fmt.Errorf("fetch course: %w", err)
		}
		if existing == nil {
			return apierr.NotFound("course_not_found", "course %s does not exist", input.ID)
		}

		fields := map[string]any{"updated_at": time.Now().UTC()}
		if input.Title != nil {
			title := strings.TrimSpace(*input.Title)
			if title == "" {
				return apierr.Invalid("title_required", "course title cannot be empty")
			}
			fields["title"] = title
		}
		if input.Description != nil {
			fields["description"] = strings.TrimSpace(*input.Description)
		}
		if input.ThumbnailURL != nil {
			fields["thumbnail_url"] = strings.TrimSpace(*input.ThumbnailURL)
		}
		if input.Status != nil {
			parsed, ok := types.ParseCourseStatus(*input.Status)
			if !ok {
				return apierr.Invalid("invalid_status", "status must be draft, published or archived")
			}
			fields["status"] = parsed
		}

		if err := cs.courseRepo.UpdateFields(ctx, tx, input.ID, fields); err != nil {
			return fmt.Errorf("update course: %w", err)
		}

		reloaded, err := cs.courseRepo.GetByID(ctx, tx, input.ID)
		if err != nil || reloaded == nil {
			return fmt.Errorf("reload course: %w", err)
		}
		out = reloaded
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}

func (cs *courseService) GetPublishedCourses(ctx context.Context) ([]*types.Course, error) {
	return cs.courseRepo.ListByStatus(ctx, nil, types.CoursePublished)
}

func (cs *courseService) GetUserCourses(ctx context.Context, userID uuid.UUID, role string) ([]*types.Course, error) {
	parsed, err := types.ParseRole(role)
	if err != nil {
		return nil, apierr.Invalid("invalid_role", "role must be student, teacher or admin")
	}
	switch parsed {
	case types.RoleTeacher:
		return cs.courseRepo.ListByTeacher(ctx, nil, userID)
	case types.RoleStudent:
		return cs.courseRepo.ListEnrolledByStudent(ctx, nil, userID)
	default:
		return cs.courseRepo.ListAll(ctx, nil)
	}
}

func (cs *courseService) GetCourseDetails(ctx context.Context, courseID uuid.UUID) (*types.Course, error) {
	course, err := cs.courseRepo.GetByID(ctx, nil, courseID)
	if err != nil {
		return nil, fmt.Errorf("fetch course: %w", err)
	}
	if course == nil {
		return nil, apierr.NotFound("course_not_found", "course %s does not exist", courseID)
	}
	return course, nil
}

// Enroll runs the longest precondition chain in the system: student
// existence, role, active flag, then course existence and publication,
// then the duplicate check. The composite unique index catches the race
// two concurrent enrollments can win against the read.
func (cs *courseService) Enroll(ctx context.Context, courseID, studentID uuid.UUID) (*types.CourseEnrollment, error) {
	enrollment := &types.CourseEnrollment{
		ID:         uuid.New(),
		CourseID:   courseID,
		StudentID:  studentID,
		EnrolledAt: time.Now().UTC(),
	}

	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		student, err := cs.userRepo.GetByID(ctx, tx, studentID)
		if err != nil {
			return fmt.Errorf("fetch student: %w", err)
		}
		if student == nil {
			return apierr.NotFound("student_not_found", "student %s does not exist", studentID)
		}
		if student.Role != types.RoleStudent {
			return apierr.InvalidRole("invalid_student_role", "user %s is not a student", studentID)
		}
		if !student.IsActive {
			return apierr.Inactive("student_inactive", "student %s is deactivated", studentID)
		}

		course, err := cs.courseRepo.GetByID(ctx, tx, courseID)
		if err != nil {
			return fmt.Errorf("fetch course: %w", err)
		}
		if course == nil {
			return apierr.NotFound("course_not_found", "course %s does not exist", courseID)
		}
		if course.Status != types.CoursePublished {
			return apierr.InvalidState("course_not_enrollable", "course %s is not published", courseID)
		}

		enrolled, err := cs.enrollmentRepo.Exists(ctx, tx, courseID, studentID)
		if err != nil {
			return fmt.Errorf("check enrollment: %w", err)
		}
		if enrolled {
			return apierr.Duplicate("already_enrolled", "student %s is already enrolled in course %s", studentID, courseID)
		}

		if _, err := cs.enrollmentRepo.Create(ctx, tx, enrollment); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apierr.Duplicate("already_enrolled", "student %s is already enrolled in course %s", studentID, courseID)
			}
			return fmt.Errorf("create enrollment: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return enrollment, nil
}
