package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"nutrition-clinic-service/internal/domain/dtos"
	"nutrition-clinic-service/internal/domain/repositories"
	"nutrition-clinic-service/internal/logger"
	"nutrition-clinic-service/internal/mappers"
)

// NutritionistServiceOptions carries the behavior switches of the service.
type NutritionistServiceOptions struct {
	// DedupeCertifications makes AddCertification a no-op when the
	// certification is already present. Off by default: the historical
	// behavior is an unconditional append.
	DedupeCertifications bool
}

// NutritionistServiceImpl implements NutritionistServiceContract.
type NutritionistServiceImpl struct {
	nutritionistRepo repositories.NutritionistRepositoryContract
	opts             NutritionistServiceOptions
	log              *logger.Logger
}

// NewNutritionistService creates a new instance of NutritionistServiceImpl.
func NewNutritionistService(repo repositories.NutritionistRepositoryContract, opts NutritionistServiceOptions, baseLog *logger.Logger) NutritionistServiceContract {
	return &NutritionistServiceImpl{
		nutritionistRepo: repo,
		opts:             opts,
		log:              baseLog.With("service", "NutritionistService"),
	}
}

func (s *NutritionistServiceImpl) ListNutritionists(ctx context.Context) ([]dtos.NutritionistResponse, error) {
	nutritionists, err := s.nutritionistRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing nutritionists: %w", err)
	}
	responses := make([]dtos.NutritionistResponse, 0, len(nutritionists))
	for _, nutritionist := range nutritionists {
		responses = append(responses, mappers.NutritionistToResponse(nutritionist))
	}
	return responses, nil
}

func (s *NutritionistServiceImpl) GetNutritionist(ctx context.Context, id uuid.UUID) (*dtos.NutritionistResponse, error) {
	nutritionist, err := s.nutritionistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching nutritionist %s: %w", id, err)
	}
	if nutritionist == nil {
		return nil, ErrNotFound
	}
	response := mappers.NutritionistToResponse(nutritionist)
	return &response, nil
}

func (s *NutritionistServiceImpl) CreateNutritionist(ctx context.Context, request dtos.NutritionistRequest) (*dtos.NutritionistResponse, error) {
	if err := s.validateRequest(request); err != nil {
		return nil, err
	}
	if err := s.checkKeyConflicts(ctx, request, uuid.Nil); err != nil {
		return nil, err
	}

	nutritionist := mappers.NutritionistFromRequest(request)
	if err := s.nutritionistRepo.Create(ctx, nutritionist); err != nil {
		return nil, fmt.Errorf("creating nutritionist: %w", err)
	}

	s.log.Info("nutritionist created", "id", nutritionist.ID)
	response := mappers.NutritionistToResponse(nutritionist)
	return &response, nil
}

func (s *NutritionistServiceImpl) UpdateNutritionist(ctx context.Context, id uuid.UUID, request dtos.NutritionistRequest) (*dtos.NutritionistResponse, error) {
	nutritionist, err := s.nutritionistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching nutritionist %s: %w", id, err)
	}
	if nutritionist == nil {
		return nil, ErrNotFound
	}

	if err := s.validateRequest(request); err != nil {
		return nil, err
	}
	if err := s.checkKeyConflicts(ctx, request, id); err != nil {
		return nil, err
	}

	mappers.ApplyNutritionistRequest(nutritionist, request)
	if err := s.nutritionistRepo.Update(ctx, nutritionist); err != nil {
		return nil, fmt.Errorf("updating nutritionist %s: %w", id, err)
	}

	s.log.Info("nutritionist updated", "id", id)
	response := mappers.NutritionistToResponse(nutritionist)
	return &response, nil
}

func (s *NutritionistServiceImpl) RemoveNutritionist(ctx context.Context, id uuid.UUID) error {
	if err := s.nutritionistRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("removing nutritionist %s: %w", id, err)
	}
	s.log.Info("nutritionist removed", "id", id)
	return nil
}

// AddExperienceYear increments the experience counter by exactly one.
// Fetch, compute, single save.
func (s *NutritionistServiceImpl) AddExperienceYear(ctx context.Context, id uuid.UUID) error {
	nutritionist, err := s.nutritionistRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("fetching nutritionist %s: %w", id, err)
	}
	if nutritionist == nil {
		return ErrNotFound
	}

	nutritionist.ExperienceYears++
	if err := s.nutritionistRepo.Update(ctx, nutritionist); err != nil {
		return fmt.Errorf("saving experience for nutritionist %s: %w", id, err)
	}

	s.log.Info("experience year added", "id", id, "experience", nutritionist.ExperienceYears)
	return nil
}

// AddCertification appends a certification, preserving insertion order. With
// DedupeCertifications set, an already-present certification is left alone
// and no write happens.
func (s *NutritionistServiceImpl) AddCertification(ctx context.Context, certification string, id uuid.UUID) error {
	if blank(certification) {
		return &ValidationError{Field: "certificacao", Reason: "must not be empty"}
	}

	nutritionist, err := s.nutritionistRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("fetching nutritionist %s: %w", id, err)
	}
	if nutritionist == nil {
		return ErrNotFound
	}

	if s.opts.DedupeCertifications {
		for _, existing := range nutritionist.Certifications {
			if existing == certification {
				return nil
			}
		}
	}

	nutritionist.Certifications = append(nutritionist.Certifications, certification)
	if err := s.nutritionistRepo.Update(ctx, nutritionist); err != nil {
		return fmt.Errorf("saving certification for nutritionist %s: %w", id, err)
	}

	s.log.Info("certification added", "id", id, "certification", certification)
	return nil
}

func (s *NutritionistServiceImpl) validateRequest(request dtos.NutritionistRequest) error {
	if blank(request.Name) {
		return &ValidationError{Field: "nome", Reason: "must not be empty"}
	}
	if blank(request.Matricula) {
		return &ValidationError{Field: "matricula", Reason: "must not be empty"}
	}
	if blank(request.CRN) {
		return &ValidationError{Field: "crn", Reason: "must not be empty"}
	}
	if request.ExperienceYears < 0 {
		return &ValidationError{Field: "tempoExperiencia", Reason: "must not be negative"}
	}
	return nil
}

// checkKeyConflicts fails when another nutritionist already owns the
// matricula or crn. The current record's own id is excluded.
func (s *NutritionistServiceImpl) checkKeyConflicts(ctx context.Context, request dtos.NutritionistRequest, selfID uuid.UUID) error {
	byMatricula, err := s.nutritionistRepo.FindByMatricula(ctx, request.Matricula)
	if err != nil {
		return fmt.Errorf("checking matricula uniqueness: %w", err)
	}
	if byMatricula != nil && byMatricula.ID != selfID {
		return &ConflictError{Field: "matricula", Value: request.Matricula}
	}

	byCRN, err := s.nutritionistRepo.FindByCRN(ctx, request.CRN)
	if err != nil {
		return fmt.Errorf("checking crn uniqueness: %w", err)
	}
	if byCRN != nil && byCRN.ID != selfID {
		return &ConflictError{Field: "crn", Value: request.CRN}
	}
	return nil
}
