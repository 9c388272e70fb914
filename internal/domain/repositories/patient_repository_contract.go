package repositories

import (
	"context"

	"github.com/google/uuid"

	"nutrition-clinic-service/internal/domain/entities"
)

// PatientRepositoryContract defines the store operations for patients.
// GetByID and FindByCPF return (nil, nil) when no record matches.
type PatientRepositoryContract interface {
	Create(ctx context.Context, patient *entities.Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Patient, error)
	Update(ctx context.Context, patient *entities.Patient) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByCPF(ctx context.Context, cpf string) (*entities.Patient, error)
	ListAll(ctx context.Context) ([]*entities.Patient, error)
}
