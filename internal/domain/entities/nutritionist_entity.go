package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Nutritionist represents a nutritionist record in the clinic.
// Certifications keep insertion order; the column is a postgres text array.
type Nutritionist struct {
	ID              uuid.UUID      `json:"id" db:"id" gorm:"type:uuid;primary_key"`
	Name            string         `json:"name" db:"name" gorm:"not null"`
	Matricula       string         `json:"matricula" db:"matricula" gorm:"uniqueIndex;not null"`
	CRN             string         `json:"crn" db:"crn" gorm:"uniqueIndex;not null"`
	Specialty       string         `json:"specialty" db:"specialty"`
	ExperienceYears int            `json:"experience_years" db:"experience_years" gorm:"not null"`
	Certifications  pq.StringArray `json:"certifications" db:"certifications" gorm:"type:text[]"`
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" db:"updated_at"`
}
