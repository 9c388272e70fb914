package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nutrition-clinic-service/internal/domain/entities"
	"nutrition-clinic-service/internal/logger"
)

type nutritionistRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewNutritionistRepository builds the gorm-backed nutritionist store.
func NewNutritionistRepository(db *gorm.DB, baseLog *logger.Logger) NutritionistRepositoryContract {
	return &nutritionistRepository{db: db, log: baseLog.With("repo", "NutritionistRepository")}
}

func (r *nutritionistRepository) Create(ctx context.Context, nutritionist *entities.Nutritionist) error {
	if nutritionist.ID == uuid.Nil {
		nutritionist.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(nutritionist).Error
}

func (r *nutritionistRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Nutritionist, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *nutritionistRepository) Update(ctx context.Context, nutritionist *entities.Nutritionist) error {
	return r.db.WithContext(ctx).Save(nutritionist).Error
}

func (r *nutritionistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.Nutritionist{}, "id = ?", id).Error
}

func (r *nutritionistRepository) FindByMatricula(ctx context.Context, matricula string) (*entities.Nutritionist, error) {
	return r.findOne(ctx, "matricula = ?", matricula)
}

func (r *nutritionistRepository) FindByCRN(ctx context.Context, crn string) (*entities.Nutritionist, error) {
	return r.findOne(ctx, "crn = ?", crn)
}

func (r *nutritionistRepository) ListAll(ctx context.Context) ([]*entities.Nutritionist, error) {
	var nutritionists []*entities.Nutritionist
	if err := r.db.WithContext(ctx).Find(&nutritionists).Error; err != nil {
		return nil, err
	}
	return nutritionists, nil
}

func (r *nutritionistRepository) findOne(ctx context.Context, query string, arg interface{}) (*entities.Nutritionist, error) {
	var nutritionist entities.Nutritionist
	err := r.db.WithContext(ctx).First(&nutritionist, query, arg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &nutritionist, nil
}
