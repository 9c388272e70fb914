package entities

import (
	"time"

	"github.com/google/uuid"
)

// Consultation links a nutritionist and a patient on a given date. It holds
// only the two references, never copies of the referenced records.
type Consultation struct {
	ID             uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primary_key"`
	NutritionistID uuid.UUID `json:"nutritionist_id" db:"nutritionist_id" gorm:"type:uuid;not null"`
	PatientID      uuid.UUID `json:"patient_id" db:"patient_id" gorm:"type:uuid;not null"`
	Date           time.Time `json:"date" db:"consultation_date" gorm:"column:consultation_date;not null"`
	Notes          string    `json:"notes" db:"notes"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
