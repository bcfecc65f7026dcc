package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/creativahub/creativahub-backend/internal/data/repos"
	types "github.com/creativahub/creativahub-backend/internal/domain"
	"github.com/creativahub/creativahub-backend/internal/platform/apierr"
	"github.com/creativahub/creativahub-backend/internal/platform/logger"
)

type CreateProjectInput struct {
	StudentID    uuid.UUID `json:"student_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ProjectURL   string    `json:"project_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Tags         string    `json:"tags"`
	IsPublic     bool      `json:"is_public"`
}

type PortfolioService interface {
	Create(ctx context.Context, input CreateProjectInput) (*types.PortfolioProject, error)
	GetStudentPortfolio(ctx context.Context, studentID uuid.UUID) ([]*types.PortfolioProject, error)
	GetPublicProjects(ctx context.Context) ([]*types.PortfolioProject, error)
}

type portfolioService struct {
	db          *gorm.DB
	log         *logger.Logger
	userRepo    repos.UserRepo
	projectRepo repos.PortfolioProjectRepo
}

func NewPortfolioService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, projectRepo repos.PortfolioProjectRepo) PortfolioService {
	serviceLog := log.With("service", "PortfolioService")
	return &portfolioService{
		db:          db,
		log:         serviceLog,
		userRepo:    userRepo,
		projectRepo: projectRepo,
	}
}

func (ps *portfolioService) Create(ctx context.Context, input CreateProjectInput) (*types.PortfolioProject, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apierr.Invalid("title_required", "a project title is required")
	}

	project := &types.PortfolioProject{
		ID:           uuid.New(),
		StudentID:    input.StudentID,
		Title:        title,
		Description:  strings.TrimSpace(input.Description),
		ProjectURL:   strings.TrimSpace(input.ProjectURL),
		ThumbnailURL: strings.TrimSpace(input.ThumbnailURL),
		Tags:         strings.TrimSpace(input.Tags),
		IsPublic:     input.IsPublic,
	}

	if err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		student, err := ps.userRepo.GetByID(ctx, tx, input.StudentID)
		if err != nil {
			return fmt.Errorf("fetch student: %w", err)
		}
		if student == nil {
			return apierr.NotFound("student_not_found", "student %s does not exist", input.StudentID)
		}
		if student.Role != types.RoleStudent {
			return apierr.InvalidRole("invalid_student_role", "user %s is not a student", input.StudentID)
		}
		if !student.IsActive {
			return apierr.Inactive("student_inactive", "student %s is deactivated", input.StudentID)
		}
		if _, err := ps.projectRepo.Create(ctx, tx, project); err != nil {
			return fmt.Errorf("create project: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return project, nil
}

func (ps *portfolioService) GetStudentPortfolio(ctx context.Context, studentID uuid.UUID) ([]*types.PortfolioProject, error) {
	return ps.projectRepo.ListByStudent(ctx, nil, studentID)
}

func (ps *portfolioService) GetPublicProjects(ctx context.Context) ([]*types.PortfolioProject, error) {
	return ps.projectRepo.ListPublic(ctx, nil)
}
