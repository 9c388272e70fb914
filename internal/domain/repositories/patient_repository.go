package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nutrition-clinic-service/internal/domain/entities"
	"nutrition-clinic-service/internal/logger"
)

type patientRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewPatientRepository builds the gorm-backed patient store.
func NewPatientRepository(db *gorm.DB, baseLog *logger.Logger) PatientRepositoryContract {
	return &patientRepository{db: db, log: baseLog.With("repo", "PatientRepository")}
}

func (r *patientRepository) Create(ctx context.Context, patient *entities.Patient) error {
	if patient.ID == uuid.Nil {
		patient.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Patient, error) {
	var patient entities.Patient
	err := r.db.WithContext(ctx).First(&patient, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *entities.Patient) error {
	return r.db.WithContext(ctx).Save(patient).Error
}

func (r *patientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.Patient{}, "id = ?", id).Error
}

func (r *patientRepository) FindByCPF(ctx context.Context, cpf string) (*entities.Patient, error) {
	var patient entities.Patient
	err := r.db.WithContext(ctx).First(&patient, "cpf = ?", cpf).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) ListAll(ctx context.Context) ([]*entities.Patient, error) {
	var patients []*entities.Patient
	if err := r.db.WithContext(ctx).Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}
