package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"nutrition-clinic-service/internal/domain/dtos"
	"nutrition-clinic-service/internal/domain/repositories"
	"nutrition-clinic-service/internal/logger"
	"nutrition-clinic-service/internal/mappers"
)

// ConsultationServiceImpl implements ConsultationServiceContract. Reference
// validation goes through the patient and nutritionist services directly:
// the operation is synchronous and must fail before any write.
type ConsultationServiceImpl struct {
	consultationRepo repositories.ConsultationRepositoryContract
	patients         PatientServiceContract
	nutritionists    NutritionistServiceContract
	log              *logger.Logger
}

// NewConsultationService creates a new instance of ConsultationServiceImpl.
func NewConsultationService(
	repo repositories.ConsultationRepositoryContract,
	patients PatientServiceContract,
	nutritionists NutritionistServiceContract,
	baseLog *logger.Logger,
) ConsultationServiceContract {
	return &ConsultationServiceImpl{
		consultationRepo: repo,
		patients:         patients,
		nutritionists:    nutritionists,
		log:              baseLog.With("service", "ConsultationService"),
	}
}

func (s *ConsultationServiceImpl) ListConsultations(ctx context.Context) ([]dtos.ConsultationResponse, error) {
	consultations, err := s.consultationRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing consultations: %w", err)
	}
	responses := make([]dtos.ConsultationResponse, 0, len(consultations))
	for _, consultation := range consultations {
		responses = append(responses, mappers.ConsultationToResponse(consultation))
	}
	return responses, nil
}

func (s *ConsultationServiceImpl) GetConsultation(ctx context.Context, id uuid.UUID) (*dtos.ConsultationResponse, error) {
	consultation, err := s.consultationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching consultation %s: %w", id, err)
	}
	if consultation == nil {
		return nil, ErrNotFound
	}
	response := mappers.ConsultationToResponse(consultation)
	return &response, nil
}

func (s *ConsultationServiceImpl) CreateConsultation(ctx context.Context, request dtos.ConsultationRequest) (*dtos.ConsultationResponse, error) {
	if err := s.resolveReferences(ctx, request); err != nil {
		return nil, err
	}

	consultation, err := mappers.ConsultationFromRequest(request)
	if err != nil {
		return nil, &ValidationError{Field: "dataConsulta", Reason: err.Error()}
	}
	if err := s.consultationRepo.Create(ctx, consultation); err != nil {
		return nil, fmt.Errorf("creating consultation: %w", err)
	}

	s.log.Info("consultation created",
		"id", consultation.ID,
		"patient", consultation.PatientID,
		"nutritionist", consultation.NutritionistID)
	response := mappers.ConsultationToResponse(consultation)
	return &response, nil
}

// resolveReferences checks both referenced records exist before anything is
// written.
func (s *ConsultationServiceImpl) resolveReferences(ctx context.Context, request dtos.ConsultationRequest) error {
	if _, err := s.patients.GetPatient(ctx, request.PatientID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return &ReferenceError{Field: "idPaciente", ID: request.PatientID}
		}
		return fmt.Errorf("resolving patient %s: %w", request.PatientID, err)
	}
	if _, err := s.nutritionists.GetNutritionist(ctx, request.NutritionistID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return &ReferenceError{Field: "idNutricionista", ID: request.NutritionistID}
		}
		return fmt.Errorf("resolving nutritionist %s: %w", request.NutritionistID, err)
	}
	return nil
}
