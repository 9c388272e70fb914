package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nutrition-clinic-service/internal/domain/entities"
	"nutrition-clinic-service/internal/logger"
)

type consultationRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewConsultationRepository builds the gorm-backed consultation store.
func NewConsultationRepository(db *gorm.DB, baseLog *logger.Logger) ConsultationRepositoryContract {
	return &consultationRepository{db: db, log: baseLog.With("repo", "ConsultationRepository")}
}

func (r *consultationRepository) Create(ctx context.Context, consultation *entities.Consultation) error {
	if consultation.ID == uuid.Nil {
		consultation.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(consultation).Error
}

func (r *consultationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Consultation, error) {
	var consultation entities.Consultation
	err := r.db.WithContext(ctx).First(&consultation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &consultation, nil
}

func (r *consultationRepository) ListAll(ctx context.Context) ([]*entities.Consultation, error) {
	var consultations []*entities.Consultation
	if err := r.db.WithContext(ctx).Find(&consultations).Error; err != nil {
		return nil, err
	}
	return consultations, nil
}
