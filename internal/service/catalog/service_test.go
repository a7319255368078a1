package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog/models"
)

type fakeRepo struct {
	createFn  func(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	getByIDFn func(ctx context.Context, id int64) (*domain.Service, error)
	getAllFn  func(ctx context.Context) ([]*domain.Service, error)
	updateFn  func(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	deleteFn  func(ctx context.Context, id int64) error
}

func (f *fakeRepo) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	if f.createFn == nil {
		panic("Create not configured")
	}
	return f.createFn(ctx, svc)
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	if f.getByIDFn == nil {
		panic("GetByID not configured")
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeRepo) GetAll(ctx context.Context) ([]*domain.Service, error) {
	if f.getAllFn == nil {
		panic("GetAll not configured")
	}
	return f.getAllFn(ctx)
}

func (f *fakeRepo) Update(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	if f.updateFn == nil {
		panic("Update not configured")
	}
	return f.updateFn(ctx, svc)
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteFn == nil {
		panic("Delete not configured")
	}
	return f.deleteFn(ctx, id)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestCreate_Success(t *testing.T) {
	repo := &fakeRepo{
		createFn: func(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
			svc.ID = 5
			return svc, nil
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateServiceRequest{
		Name:            "Consultation",
		DurationMinutes: 30,
		Price:           50,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "Consultation", resp.Name)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	tests := []struct {
		name string
		req  models.CreateServiceRequest
	}{
		{"empty name", models.CreateServiceRequest{Name: "  ", DurationMinutes: 30, Price: 10}},
		{"name too long", models.CreateServiceRequest{Name: strings.Repeat("a", 201), DurationMinutes: 30, Price: 10}},
		{"zero duration", models.CreateServiceRequest{Name: "x", DurationMinutes: 0, Price: 10}},
		{"duration above limit", models.CreateServiceRequest{Name: "x", DurationMinutes: 481, Price: 10}},
		{"negative price", models.CreateServiceRequest{Name: "x", DurationMinutes: 30, Price: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Service, error) {
			return nil, catalogRepo.ErrServiceNotFound
		},
	}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &fakeRepo{
		updateFn: func(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
			return nil, catalogRepo.ErrServiceNotFound
		},
	}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 99, &models.UpdateServiceRequest{
		Name:            "Consultation",
		DurationMinutes: 30,
		Price:           50,
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUpdate_PassesIDThrough(t *testing.T) {
	var updated *domain.Service
	repo := &fakeRepo{
		updateFn: func(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
			updated = svc
			return svc, nil
		},
	}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 7, &models.UpdateServiceRequest{
		Name:            "Consultation",
		DurationMinutes: 45,
		Price:           80,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), updated.ID)
	assert.Equal(t, 45, updated.DurationMinutes)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &fakeRepo{
		deleteFn: func(ctx context.Context, id int64) error {
			return catalogRepo.ErrServiceNotFound
		},
	}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestGetAll_EmptyList(t *testing.T) {
	repo := &fakeRepo{
		getAllFn: func(ctx context.Context) ([]*domain.Service, error) {
			return []*domain.Service{}, nil
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, resp.Services)
}
