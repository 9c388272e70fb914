package dtos

// PatientRequest is the whole-object payload for creating or updating a
// patient. Updates replace every mutable field; there is no partial merge.
type PatientRequest struct {
	Name      string `json:"nome"`
	BirthDate string `json:"dataNascimento"` // dd/MM/yyyy
	CPF       string `json:"cpf"`            // 000.000.000-00
	Phone     string `json:"telefone"`
	Email     string `json:"email"`
}
