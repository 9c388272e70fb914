package dtos

import "github.com/google/uuid"

// NutritionistResponse is the wire projection of a stored nutritionist.
type NutritionistResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"nome"`
	Matricula       string    `json:"matricula"`
	CRN             string    `json:"crn"`
	Specialty       string    `json:"especialidade"`
	ExperienceYears int       `json:"tempoExperiencia"`
	Certifications  []string  `json:"certificacoes"`
}
