package services

import (
	"context"

	"github.com/google/uuid"

	"nutrition-clinic-service/internal/domain/dtos"
)

// NutritionistServiceContract defines the operations the nutritionist
// service exposes to the HTTP boundary. AddExperienceYear and
// AddCertification are narrow mutations that bypass full update.
type NutritionistServiceContract interface {
	ListNutritionists(ctx context.Context) ([]dtos.NutritionistResponse, error)
	GetNutritionist(ctx context.Context, id uuid.UUID) (*dtos.NutritionistResponse, error)
	CreateNutritionist(ctx context.Context, request dtos.NutritionistRequest) (*dtos.NutritionistResponse, error)
	UpdateNutritionist(ctx context.Context, id uuid.UUID, request dtos.NutritionistRequest) (*dtos.NutritionistResponse, error)
	RemoveNutritionist(ctx context.Context, id uuid.UUID) error
	AddExperienceYear(ctx context.Context, id uuid.UUID) error
	AddCertification(ctx context.Context, certification string, id uuid.UUID) error
}
