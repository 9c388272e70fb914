package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"

	"nutrition-clinic-service/internal/domain/entities"
	"nutrition-clinic-service/internal/domain/repositories"
	"nutrition-clinic-service/internal/logger"
)

// Compile-time checks that the mocks satisfy the repository contracts.
var (
	_ repositories.PatientRepositoryContract      = (*MockPatientRepository)(nil)
	_ repositories.NutritionistRepositoryContract = (*MockNutritionistRepository)(nil)
	_ repositories.ConsultationRepositoryContract = (*MockConsultationRepository)(nil)
)

// MockPatientRepository is a mock implementation of PatientRepositoryContract.
type MockPatientRepository struct {
	CreateFunc    func(ctx context.Context, patient *entities.Patient) error
	GetByIDFunc   func(ctx context.Context, id uuid.UUID) (*entities.Patient, error)
	UpdateFunc    func(ctx context.Context, patient *entities.Patient) error
	DeleteFunc    func(ctx context.Context, id uuid.UUID) error
	FindByCPFFunc func(ctx context.Context, cpf string) (*entities.Patient, error)
	ListAllFunc   func(ctx context.Context) ([]*entities.Patient, error)

	CreateCallCount int32
	UpdateCallCount int32
	DeleteCallCount int32
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *entities.Patient) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, patient)
	}
	if patient.ID == uuid.Nil {
		patient.ID = uuid.New()
	}
	return nil
}

func (m *MockPatientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Patient, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockPatientRepository) Update(ctx context.Context, patient *entities.Patient) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, patient)
	}
	return nil
}

func (m *MockPatientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockPatientRepository) FindByCPF(ctx context.Context, cpf string) (*entities.Patient, error) {
	if m.FindByCPFFunc != nil {
		return m.FindByCPFFunc(ctx, cpf)
	}
	return nil, nil
}

func (m *MockPatientRepository) ListAll(ctx context.Context) ([]*entities.Patient, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, errors.New("ListAllFunc not implemented in mock")
}

// MockNutritionistRepository is a mock implementation of
// NutritionistRepositoryContract.
type MockNutritionistRepository struct {
	CreateFunc          func(ctx context.Context, nutritionist *entities.Nutritionist) error
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*entities.Nutritionist, error)
	UpdateFunc          func(ctx context.Context, nutritionist *entities.Nutritionist) error
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
	FindByMatriculaFunc func(ctx context.Context, matricula string) (*entities.Nutritionist, error)
	FindByCRNFunc       func(ctx context.Context, crn string) (*entities.Nutritionist, error)
	ListAllFunc         func(ctx context.Context) ([]*entities.Nutritionist, error)

	CreateCallCount int32
	UpdateCallCount int32
	DeleteCallCount int32
}

func (m *MockNutritionistRepository) Create(ctx context.Context, nutritionist *entities.Nutritionist) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, nutritionist)
	}
	if nutritionist.ID == uuid.Nil {
		nutritionist.ID = uuid.New()
	}
	return nil
}

func (m *MockNutritionistRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Nutritionist, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockNutritionistRepository) Update(ctx context.Context, nutritionist *entities.Nutritionist) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, nutritionist)
	}
	return nil
}

func (m *MockNutritionistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockNutritionistRepository) FindByMatricula(ctx context.Context, matricula string) (*entities.Nutritionist, error) {
	if m.FindByMatriculaFunc != nil {
		return m.FindByMatriculaFunc(ctx, matricula)
	}
	return nil, nil
}

func (m *MockNutritionistRepository) FindByCRN(ctx context.Context, crn string) (*entities.Nutritionist, error) {
	if m.FindByCRNFunc != nil {
		return m.FindByCRNFunc(ctx, crn)
	}
	return nil, nil
}

func (m *MockNutritionistRepository) ListAll(ctx context.Context) ([]*entities.Nutritionist, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, errors.New("ListAllFunc not implemented in mock")
}

// MockConsultationRepository is a mock implementation of
// ConsultationRepositoryContract.
type MockConsultationRepository struct {
	CreateFunc  func(ctx context.Context, consultation *entities.Consultation) error
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*entities.Consultation, error)
	ListAllFunc func(ctx context.Context) ([]*entities.Consultation, error)

	CreateCallCount int32
}

func (m *MockConsultationRepository) Create(ctx context.Context, consultation *entities.Consultation) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, consultation)
	}
	if consultation.ID == uuid.Nil {
		consultation.ID = uuid.New()
	}
	return nil
}

func (m *MockConsultationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Consultation, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockConsultationRepository) ListAll(ctx context.Context) ([]*entities.Consultation, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, errors.New("ListAllFunc not implemented in mock")
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("dev")
	if err != nil {
		t.Fatalf("building test logger: %v", err)
	}
	return log
}
