package repositories

import (
	"context"

	"github.com/google/uuid"

	"nutrition-clinic-service/internal/domain/entities"
)

// ConsultationRepositoryContract defines the store operations for
// consultations. GetByID returns (nil, nil) when no record matches.
type ConsultationRepositoryContract interface {
	Create(ctx context.Context, consultation *entities.Consultation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Consultation, error)
	ListAll(ctx context.Context) ([]*entities.Consultation, error)
}
