package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/creativahub/creativahub-backend/internal/data/repos"
	types "github.com/creativahub/creativahub-backend/internal/domain"
	"github.com/creativahub/creativahub-backend/internal/pkg/ctxutil"
	"github.com/creativahub/creativahub-backend/internal/platform/apierr"
	"github.com/creativahub/creativahub-backend/internal/platform/logger"
)

type CreateAssignmentInput struct {
	CourseID    uuid.UUID  `json:"course_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	MaxScore    float64    `json:"max_score"`
	Status      string     `json:"status"`
}

type AssignmentService interface {
	Create(ctx context.Context, input CreateAssignmentInput) (*types.Assignment, error)
	GetCourseAssignments(ctx context.Context, courseID uuid.UUID) ([]*types.Assignment, error)
}

type assignmentService struct {
	db             *gorm.DB
	log            *logger.Logger
	courseRepo     repos.CourseRepo
	assignmentRepo repos.AssignmentRepo
}

func NewAssignmentService(db *gorm.DB, log *logger.Logger, courseRepo repos.CourseRepo, assignmentRepo repos.AssignmentRepo) AssignmentService {
	serviceLog := log.With("service", "AssignmentService")
	return &assignmentService{
		db:             db,
		log:            serviceLog,
		courseRepo:     courseRepo,
		assignmentRepo: assignmentRepo,
	}
}

// Create requires the acting user to own the course (or be an admin).
func (as *assignmentService) Create(ctx context.Context, input CreateAssignmentInput) (*types.Assignment, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.New(http.StatusUnauthorized, "unauthorized", fmt.Errorf("no authenticated user"))
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apierr.Invalid("title_required", "an assignment title is required")
	}
	if input.MaxScore <= 0 {
		return nil, apierr.Invalid("invalid_max_score", "max_score must be positive")
	}

	status := types.AssignmentDraft
	if strings.TrimSpace(input.Status) != "" {
		parsed, ok := types.ParseAssignmentStatus(input.Status)
		if !ok {
			return nil, apierr.Invalid("invalid_status", "status must be draft, published or closed")
		}
		status = parsed
	}

	assignment := &types.Assignment{
		ID:          uuid.New(),
		CourseID:    input.CourseID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		DueDate:     input.DueDate,
		MaxScore:    input.MaxScore,
		Status:      status,
	}

	if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		course, err := as.courseRepo.GetByID(ctx, tx, input.CourseID)
		if err != nil {
			return fmt.Errorf("fetch course: %w", err)
		}
		if course == nil {
			return apierr.NotFound("course_not_found", "course %s does not exist", input.CourseID)
		}
		if rd.Role != string(types.RoleAdmin) && course.TeacherID != rd.UserID {
			return apierr.InvalidRole("not_course_teacher", "only the course teacher can create assignments")
		}
		if _, err := as.assignmentRepo.Create(ctx, tx, assignment); err != nil {
			return fmt.Errorf("create assignment: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (as *assignmentService) GetCourseAssignments(ctx context.Context, courseID uuid.UUID) ([]*types.Assignment, error) {
	return as.assignmentRepo.ListByCourse(ctx, nil, courseID)
}
