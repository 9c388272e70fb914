package dtos

import "github.com/google/uuid"

// PatientResponse is the wire projection of a stored patient.
type PatientResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"nome"`
	BirthDate string    `json:"dataNascimento"` // dd/MM/yyyy
	CPF       string    `json:"cpf"`
	Phone     string    `json:"telefone"`
	Email     string    `json:"email"`
}
