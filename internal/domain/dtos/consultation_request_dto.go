package dtos

import "github.com/google/uuid"

// ConsultationRequest is the payload for scheduling a consultation. Both
// referenced records must already exist.
type ConsultationRequest struct {
	NutritionistID uuid.UUID `json:"idNutricionista"`
	PatientID      uuid.UUID `json:"idPaciente"`
	Date           string    `json:"dataConsulta"` // dd/MM/yyyy
	Notes          string    `json:"observacoes"`
}
