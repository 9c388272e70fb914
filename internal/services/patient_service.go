package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"nutrition-clinic-service/internal/domain/dtos"
	"nutrition-clinic-service/internal/domain/repositories"
	"nutrition-clinic-service/internal/logger"
	"nutrition-clinic-service/internal/mappers"
)

// PatientServiceImpl implements PatientServiceContract. It holds no state
// beyond the store handle; every operation is a single unit of work.
type PatientServiceImpl struct {
	patientRepo repositories.PatientRepositoryContract
	log         *logger.Logger
}

// NewPatientService creates a new instance of PatientServiceImpl.
func NewPatientService(repo repositories.PatientRepositoryContract, baseLog *logger.Logger) PatientServiceContract {
	return &PatientServiceImpl{
		patientRepo: repo,
		log:         baseLog.With("service", "PatientService"),
	}
}

func (s *PatientServiceImpl) ListPatients(ctx context.Context) ([]dtos.PatientResponse, error) {
	patients, err := s.patientRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing patients: %w", err)
	}
	responses := make([]dtos.PatientResponse, 0, len(patients))
	for _, patient := range patients {
		responses = append(responses, mappers.PatientToResponse(patient))
	}
	return responses, nil
}

func (s *PatientServiceImpl) GetPatient(ctx context.Context, id uuid.UUID) (*dtos.PatientResponse, error) {
	patient, err := s.patientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching patient %s: %w", id, err)
	}
	if patient == nil {
		return nil, ErrNotFound
	}
	response := mappers.PatientToResponse(patient)
	return &response, nil
}

func (s *PatientServiceImpl) CreatePatient(ctx context.Context, request dtos.PatientRequest) (*dtos.PatientResponse, error) {
	if err := s.validateRequest(request); err != nil {
		return nil, err
	}
	if err := s.checkCPFConflict(ctx, request.CPF, uuid.Nil); err != nil {
		return nil, err
	}

	patient, err := mappers.PatientFromRequest(request)
	if err != nil {
		return nil, &ValidationError{Field: "dataNascimento", Reason: err.Error()}
	}
	if err := s.patientRepo.Create(ctx, patient); err != nil {
		return nil, fmt.Errorf("creating patient: %w", err)
	}

	s.log.Info("patient created", "id", patient.ID)
	response := mappers.PatientToResponse(patient)
	return &response, nil
}

func (s *PatientServiceImpl) UpdatePatient(ctx context.Context, id uuid.UUID, request dtos.PatientRequest) (*dtos.PatientResponse, error) {
	patient, err := s.patientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching patient %s: %w", id, err)
	}
	if patient == nil {
		return nil, ErrNotFound
	}

	if err := s.validateRequest(request); err != nil {
		return nil, err
	}
	if err := s.checkCPFConflict(ctx, request.CPF, id); err != nil {
		return nil, err
	}

	if err := mappers.ApplyPatientRequest(patient, request); err != nil {
		return nil, &ValidationError{Field: "dataNascimento", Reason: err.Error()}
	}
	if err := s.patientRepo.Update(ctx, patient); err != nil {
		return nil, fmt.Errorf("updating patient %s: %w", id, err)
	}

	s.log.Info("patient updated", "id", id)
	response := mappers.PatientToResponse(patient)
	return &response, nil
}

func (s *PatientServiceImpl) RemovePatient(ctx context.Context, id uuid.UUID) error {
	if err := s.patientRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("removing patient %s: %w", id, err)
	}
	s.log.Info("patient removed", "id", id)
	return nil
}

func (s *PatientServiceImpl) validateRequest(request dtos.PatientRequest) error {
	if blank(request.Name) {
		return &ValidationError{Field: "nome", Reason: "must not be empty"}
	}
	if !validCPF(request.CPF) {
		return &ValidationError{Field: "cpf", Reason: "must match the format 000.000.000-00"}
	}
	if !validEmail(request.Email) {
		return &ValidationError{Field: "email", Reason: "must contain exactly one @ and a domain"}
	}
	birthDate, err := mappers.ParseWireDate(request.BirthDate)
	if err != nil {
		return &ValidationError{Field: "dataNascimento", Reason: err.Error()}
	}
	if birthDate.After(time.Now()) {
		return &ValidationError{Field: "dataNascimento", Reason: "must not be in the future"}
	}
	return nil
}

// checkCPFConflict fails when another patient already owns the cpf. The
// current record's own id is excluded so updates can keep their cpf.
func (s *PatientServiceImpl) checkCPFConflict(ctx context.Context, cpf string, selfID uuid.UUID) error {
	existing, err := s.patientRepo.FindByCPF(ctx, cpf)
	if err != nil {
		return fmt.Errorf("checking cpf uniqueness: %w", err)
	}
	if existing != nil && existing.ID != selfID {
		return &ConflictError{Field: "cpf", Value: cpf}
	}
	return nil
}
