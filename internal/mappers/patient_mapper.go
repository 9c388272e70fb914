package mappers

import (
	"nutrition-clinic-service/internal/domain/dtos"
	"nutrition-clinic-service/internal/domain/entities"
)

// PatientFromRequest translates a wire request into a patient entity. The
// identifier is left unset; the store assigns it on insert.
func PatientFromRequest(request dtos.PatientRequest) (*entities.Patient, error) {
	birthDate, err := ParseWireDate(request.BirthDate)
	if err != nil {
		return nil, err
	}
	return &entities.Patient{
		Name:      request.Name,
		BirthDate: birthDate,
		CPF:       request.CPF,
		Phone:     request.Phone,
		Email:     request.Email,
	}, nil
}

// ApplyPatientRequest overwrites every mutable field of the entity with the
// request's values. Whole-object replace, not a partial merge.
func ApplyPatientRequest(patient *entities.Patient, request dtos.PatientRequest) error {
	birthDate, err := ParseWireDate(request.BirthDate)
	if err != nil {
		return err
	}
	patient.Name = request.Name
	patient.BirthDate = birthDate
	patient.CPF = request.CPF
	patient.Phone = request.Phone
	patient.Email = request.Email
	return nil
}

// PatientToResponse projects a stored patient onto its wire shape.
func PatientToResponse(patient *entities.Patient) dtos.PatientResponse {
	return dtos.PatientResponse{
		ID:        patient.ID,
		Name:      patient.Name,
		BirthDate: FormatWireDate(patient.BirthDate),
		CPF:       patient.CPF,
		Phone:     patient.Phone,
		Email:     patient.Email,
	}
}
