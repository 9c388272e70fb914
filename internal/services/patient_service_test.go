package services

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutrition-clinic-service/internal/domain/dtos"
	"nutrition-clinic-service/internal/domain/entities"
)

func validPatientRequest() dtos.PatientRequest {
	return dtos.PatientRequest{
		Name:      "Joao",
		BirthDate: "17/06/1979",
		CPF:       "000.000.000-00",
		Phone:     "(48) 99999-9999",
		Email:     "a@b.com",
	}
}

func storedPatient(id uuid.UUID) *entities.Patient {
	return &entities.Patient{
		ID:        id,
		Name:      "Joao",
		BirthDate: time.Date(1979, time.June, 17, 0, 0, 0, 0, time.UTC),
		CPF:       "000.000.000-00",
		Phone:     "(48) 99999-9999",
		Email:     "a@b.com",
	}
}

func TestListPatients(t *testing.T) {
	id := uuid.New()
	mockRepo := &MockPatientRepository{
		ListAllFunc: func(ctx context.Context) ([]*entities.Patient, error) {
			return []*entities.Patient{storedPatient(id)}, nil
		},
	}
	service := NewPatientService(mockRepo, testLogger(t))

	result, err := service.ListPatients(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, id, result[0].ID)
	assert.Equal(t, "Joao", result[0].Name)
	assert.Equal(t, "17/06/1979", result[0].BirthDate)
}

func TestListPatientsEmptyStore(t *testing.T) {
	mockRepo := &MockPatientRepository{
		ListAllFunc: func(ctx context.Context) ([]*entities.Patient, error) {
			return nil, nil
		},
	}
	service := NewPatientService(mockRepo, testLogger(t))

	result, err := service.ListPatients(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestGetPatient(t *testing.T) {
	id := uuid.New()
	mockRepo := &MockPatientRepository{
		GetByIDFunc: func(ctx context.Context, got uuid.UUID) (*entities.Patient, error) {
			assert.Equal(t, id, got)
			return storedPatient(id), nil
		},
	}
	service := NewPatientService(mockRepo, testLogger(t))

	first, err := service.GetPatient(context.Background(), id)
	require.NoError(t, err)

	// get is idempotent: a second call returns an identical projection.
	second, err := service.GetPatient(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetPatientNotFound(t *testing.T) {
	mockRepo := &MockPatientRepository{}
	service := NewPatientService(mockRepo, testLogger(t))

	result, err := service.GetPatient(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, result)
}

func TestCreatePatient(t *testing.T) {
	mockRepo := &MockPatientRepository{}
	service := NewPatientService(mockRepo, testLogger(t))

	result, err := service.CreatePatient(context.Background(), validPatientRequest())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, result.ID)
	assert.Equal(t, "Joao", result.Name)
	assert.Equal(t, "17/06/1979", result.BirthDate)
	assert.Equal(t, "000.000.000-00", result.CPF)
	assert.Equal(t, "(48) 99999-9999", result.Phone)
	assert.Equal(t, "a@b.com", result.Email)
	assert.Equal(t, int32(1), atomic.LoadInt32(&mockRepo.CreateCallCount))
}

func TestCreatePatientValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dtos.PatientRequest)
		field  string
	}{
		{"empty name", func(r *dtos.PatientRequest) { r.Name = "  " }, "nome"},
		{"bad cpf", func(r *dtos.PatientRequest) { r.CPF = "00000000000" }, "cpf"},
		{"no at sign", func(r *dtos.PatientRequest) { r.Email = "a.b.com" }, "email"},
		{"two at signs", func(r *dtos.PatientRequest) { r.Email = "a@@b.com" }, "email"},
		{"missing domain", func(r *dtos.PatientRequest) { r.Email = "a@" }, "email"},
		{"unparseable date", func(r *dtos.PatientRequest) { r.BirthDate = "1979-06-17" }, "dataNascimento"},
		{"future birth date", func(r *dtos.PatientRequest) {
			r.BirthDate = time.Now().AddDate(1, 0, 0).Format("02/01/2006")
		}, "dataNascimento"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &MockPatientRepository{}
			service := NewPatientService(mockRepo, testLogger(t))

			request := validPatientRequest()
			tc.mutate(&request)

			result, err := service.CreatePatient(context.Background(), request)

			assert.Nil(t, result)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.field, validationErr.Field)
			assert.Zero(t, atomic.LoadInt32(&mockRepo.CreateCallCount), "no store write on validation failure")
		})
	}
}

func TestCreatePatientCPFConflict(t *testing.T) {
	other := storedPatient(uuid.New())
	mockRepo := &MockPatientRepository{
		FindByCPFFunc: func(ctx context.Context, cpf string) (*entities.Patient, error) {
			return other, nil
		},
	}
	service := NewPatientService(mockRepo, testLogger(t))

	result, err := service.CreatePatient(context.Background(), validPatientRequest())

	assert.Nil(t, result)
	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "cpf", conflictErr.Field)
	assert.Zero(t, atomic.LoadInt32(&mockRepo.CreateCallCount))
}

func TestUpdatePatient(t *testing.T) {
	id := uuid.New()
	var saved *entities.Patient
	mockRepo := &MockPatientRepository{
		GetByIDFunc: func(ctx context.Context, got uuid.UUID) (*entities.Patient, error) {
			return storedPatient(id), nil
		},
		UpdateFunc: func(ctx context.Context, patient *entities.Patient) error {
			saved = patient
			return nil
		},
	}
	service := NewPatientService(mockRepo, testLogger(t))

	request := validPatientRequest()
	request.Name = "Joao Silva"
	request.Phone = "(48) 91111-1111"

	result, err := service.UpdatePatient(context.Background(), id, request)

	require.NoError(t, err)
	assert.Equal(t, id, result.ID)
	assert.Equal(t, "Joao Silva", result.Name)
	require.NotNil(t, saved)
	// update is a whole-object replace, every mutable field takes the
	// request's value.
	assert.Equal(t, "Joao Silva", saved.Name)
	assert.Equal(t, "(48) 91111-1111", saved.Phone)
	assert.Equal(t, id, saved.ID)
}

func TestUpdatePatientKeepsOwnCPF(t *testing.T) {
	id := uuid.New()
	mockRepo := &MockPatientRepository{
		GetByIDFunc: func(ctx context.Context, got uuid.UUID) (*entities.Patient, error) {
			return storedPatient(id), nil
		},
		FindByCPFFunc: func(ctx context.Context, cpf string) (*entities.Patient, error) {
			return storedPatient(id), nil
		},
	}
	service := NewPatientService(mockRepo, testLogger(t))

	_, err := service.UpdatePatient(context.Background(), id, validPatientRequest())

	assert.NoError(t, err, "a record keeping its own cpf is not a conflict")
}

func TestUpdatePatientNotFound(t *testing.T) {
	mockRepo := &MockPatientRepository{}
	service := NewPatientService(mockRepo, testLogger(t))

	result, err := service.UpdatePatient(context.Background(), uuid.New(), validPatientRequest())

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, result)
	assert.Zero(t, atomic.LoadInt32(&mockRepo.UpdateCallCount), "no store write when the record is absent")
}

func TestRemovePatient(t *testing.T) {
	mockRepo := &MockPatientRepository{}
	service := NewPatientService(mockRepo, testLogger(t))

	err := service.RemovePatient(context.Background(), uuid.New())

	assert.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&mockRepo.DeleteCallCount))
}
