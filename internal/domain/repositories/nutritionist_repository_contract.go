package repositories

import (
	"context"

	"github.com/google/uuid"

	"nutrition-clinic-service/internal/domain/entities"
)

// NutritionistRepositoryContract defines the store operations for
// nutritionists. Lookup methods return (nil, nil) when no record matches.
type NutritionistRepositoryContract interface {
	Create(ctx context.Context, nutritionist *entities.Nutritionist) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Nutritionist, error)
	Update(ctx context.Context, nutritionist *entities.Nutritionist) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByMatricula(ctx context.Context, matricula string) (*entities.Nutritionist, error)
	FindByCRN(ctx context.Context, crn string) (*entities.Nutritionist, error)
	ListAll(ctx context.Context) ([]*entities.Nutritionist, error)
}
