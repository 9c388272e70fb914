package mappers

import (
	"nutrition-clinic-service/internal/domain/dtos"
	"nutrition-clinic-service/internal/domain/entities"
)

// ConsultationFromRequest translates a wire request into a consultation
// entity carrying only the two references.
func ConsultationFromRequest(request dtos.ConsultationRequest) (*entities.Consultation, error) {
	date, err := ParseWireDate(request.Date)
	if err != nil {
		return nil, err
	}
	return &entities.Consultation{
		NutritionistID: request.NutritionistID,
		PatientID:      request.PatientID,
		Date:           date,
		Notes:          request.Notes,
	}, nil
}

// ConsultationToResponse projects a stored consultation onto its wire shape.
func ConsultationToResponse(consultation *entities.Consultation) dtos.ConsultationResponse {
	return dtos.ConsultationResponse{
		ID:             consultation.ID,
		NutritionistID: consultation.NutritionistID,
		PatientID:      consultation.PatientID,
		Date:           FormatWireDate(consultation.Date),
		Notes:          consultation.Notes,
	}
}
