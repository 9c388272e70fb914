package dtos

// NutritionistRequest is the whole-object payload for creating or updating a
// nutritionist.
type NutritionistRequest struct {
	Name            string   `json:"nome"`
	Matricula       string   `json:"matricula"`
	CRN             string   `json:"crn"`
	Specialty       string   `json:"especialidade"`
	ExperienceYears int      `json:"tempoExperiencia"`
	Certifications  []string `json:"certificacoes"`
}

// AddCertificationRequest is the payload for appending one certification.
type AddCertificationRequest struct {
	Certification string `json:"certificacao"`
}
