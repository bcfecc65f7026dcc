package courses

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/creativahub/creativahub-backend/internal/domain"
	"github.com/creativahub/creativahub-backend/internal/platform/logger"
)

type MaterialRepo interface {
	Create(ctx context.Context, tx *gorm.DB, material *types.LearningMaterial) (*types.LearningMaterial, error)
	ListByCourse(ctx context.Context, tx *gorm.DB, courseID uuid.UUID) ([]*types.LearningMaterial, error)
}

type materialRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMaterialRepo(db *gorm.DB, baseLog *logger.Logger) MaterialRepo {
	repoLog := baseLog.With("repo", "MaterialRepo")
	return &materialRepo{db: db, log: repoLog}
}

func (mr *materialRepo) Create(ctx context.Context, tx *gorm.DB, material *types.LearningMaterial) (*types.LearningMaterial, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	if err := transaction.WithContext(ctx).Create(material).Error; err != nil {
		return nil, err
	}
	return material, nil
}

func (mr *materialRepo) ListByCourse(ctx context.Context, tx *gorm.DB, courseID uuid.UUID) ([]*types.LearningMaterial, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	var results []*types.LearningMaterial
	if err := transaction.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("order_index ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
