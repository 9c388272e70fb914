package dtos

import "github.com/google/uuid"

// ConsultationResponse is the wire projection of a stored consultation.
type ConsultationResponse struct {
	ID             uuid.UUID `json:"id"`
	NutritionistID uuid.UUID `json:"idNutricionista"`
	PatientID      uuid.UUID `json:"idPaciente"`
	Date           string    `json:"dataConsulta"` // dd/MM/yyyy
	Notes          string    `json:"observacoes"`
}
