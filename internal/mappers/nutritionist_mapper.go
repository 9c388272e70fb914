package mappers

import (
	"nutrition-clinic-service/internal/domain/dtos"
	"nutrition-clinic-service/internal/domain/entities"
)

// NutritionistFromRequest translates a wire request into a nutritionist
// entity. The identifier is left unset; the store assigns it on insert.
func NutritionistFromRequest(request dtos.NutritionistRequest) *entities.Nutritionist {
	return &entities.Nutritionist{
		Name:            request.Name,
		Matricula:       request.Matricula,
		CRN:             request.CRN,
		Specialty:       request.Specialty,
		ExperienceYears: request.ExperienceYears,
		Certifications:  append([]string(nil), request.Certifications...),
	}
}

// ApplyNutritionistRequest overwrites every mutable field of the entity with
// the request's values, certifications included.
func ApplyNutritionistRequest(nutritionist *entities.Nutritionist, request dtos.NutritionistRequest) {
	nutritionist.Name = request.Name
	nutritionist.Matricula = request.Matricula
	nutritionist.CRN = request.CRN
	nutritionist.Specialty = request.Specialty
	nutritionist.ExperienceYears = request.ExperienceYears
	nutritionist.Certifications = append([]string(nil), request.Certifications...)
}

// NutritionistToResponse projects a stored nutritionist onto its wire shape.
func NutritionistToResponse(nutritionist *entities.Nutritionist) dtos.NutritionistResponse {
	return dtos.NutritionistResponse{
		ID:              nutritionist.ID,
		Name:            nutritionist.Name,
		Matricula:       nutritionist.Matricula,
		CRN:             nutritionist.CRN,
		Specialty:       nutritionist.Specialty,
		ExperienceYears: nutritionist.ExperienceYears,
		Certifications:  append([]string(nil), nutritionist.Certifications...),
	}
}
