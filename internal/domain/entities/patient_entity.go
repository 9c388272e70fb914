package entities

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a patient record in the clinic.
type Patient struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primary_key"`
	Name      string    `json:"name" db:"name" gorm:"not null"`
	BirthDate time.Time `json:"birth_date" db:"birth_date" gorm:"not null"`
	CPF       string    `json:"cpf" db:"cpf" gorm:"uniqueIndex;not null"`
	Phone     string    `json:"phone" db:"phone"`
	Email     string    `json:"email" db:"email" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
