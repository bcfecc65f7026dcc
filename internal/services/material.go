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

type CreateMaterialInput struct {
	CourseID     uuid.UUID `json:"course_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ContentURL   string    `json:"content_url"`
	FileURL      string    `json:"file_url"`
	MaterialType string    `json:"material_type"`
	OrderIndex   int       `json:"order_index"`
}

type MaterialService interface {
	Create(ctx context.Context, input CreateMaterialInput) (*types.LearningMaterial, error)
	GetCourseMaterials(ctx context.Context, courseID uuid.UUID) ([]*types.LearningMaterial, error)
}

type materialService struct {
	db           *gorm.DB
	log          *logger.Logger
	courseRepo   repos.CourseRepo
	materialRepo repos.MaterialRepo
}

func NewMaterialService(db *gorm.DB, log *logger.Logger, courseRepo repos.CourseRepo, materialRepo repos.MaterialRepo) MaterialService {
	serviceLog := log.With("service", "MaterialService")
	return &materialService{
		db:           db,
		log:          serviceLog,
		courseRepo:   courseRepo,
		materialRepo: materialRepo,
	}
}

func (ms *materialService) Create(ctx context.Context, input CreateMaterialInput) (*types.LearningMaterial, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apierr.Invalid("title_required", "a material title is required")
	}

	material := &types.LearningMaterial{
		ID:           uuid.New(),
		CourseID:     input.CourseID,
		Title:        title,
		Description:  strings.TrimSpace(input.Description),
		ContentURL:   strings.TrimSpace(input.ContentURL),
		FileURL:      strings.TrimSpace(input.FileURL),
		MaterialType: strings.TrimSpace(input.MaterialType),
		OrderIndex:   input.OrderIndex,
	}

	if err := ms.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		course, err := ms.courseRepo.GetByID(ctx, tx, input.CourseID)
		if err != nil {
			return fmt.Errorf("fetch course: %w", err)
		}
		if course == nil {
			return apierr.NotFound("course_not_found", "course %s does not exist", input.CourseID)
		}
		if _, err := ms.materialRepo.Create(ctx, tx, material); err != nil {
			return fmt.Errorf("create material: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return material, nil
}

func (ms *materialService) GetCourseMaterials(ctx context.Context, courseID uuid.UUID) ([]*types.LearningMaterial, error) {
	return ms.materialRepo.ListByCourse(ctx, nil, courseID)
}
