package services

import (
	"context"

	"github.com/google/uuid"

	"nutrition-clinic-service/internal/domain/dtos"
)

// PatientServiceContract defines the operations the patient service exposes
// to the HTTP boundary.
type PatientServiceContract interface {
	ListPatients(ctx context.Context) ([]dtos.PatientResponse, error)
	GetPatient(ctx context.Context, id uuid.UUID) (*dtos.PatientResponse, error)
	CreatePatient(ctx context.Context, request dtos.PatientRequest) (*dtos.PatientResponse, error)
	UpdatePatient(ctx context.Context, id uuid.UUID, request dtos.PatientRequest) (*dtos.PatientResponse, error)
	RemovePatient(ctx context.Context, id uuid.UUID) error
}
