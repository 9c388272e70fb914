package services

import (
	"context"

	"github.com/google/uuid"

	"nutrition-clinic-service/internal/domain/dtos"
)

// ConsultationServiceContract defines the operations the consultation
// service exposes to the HTTP boundary.
type ConsultationServiceContract interface {
	ListConsultations(ctx context.Context) ([]dtos.ConsultationResponse, error)
	GetConsultation(ctx context.Context, id uuid.UUID) (*dtos.ConsultationResponse, error)
	CreateConsultation(ctx context.Context, request dtos.ConsultationRequest) (*dtos.ConsultationResponse, error)
}
