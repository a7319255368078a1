package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

type fakeRepo struct {
	getByIDFn       func(ctx context.Context, id int64) (*domain.Appointment, error)
	getAllFn        func(ctx context.Context) ([]*domain.Appointment, error)
	getByClientIDFn func(ctx context.Context, clientID int64) ([]*domain.Appointment, error)
	getByStaffIDFn  func(ctx context.Context, staffID int64) ([]*domain.Appointment, error)
	updateStatusFn  func(ctx context.Context, id int64, status domain.AppointmentStatus) (*domain.Appointment, error)
	deleteFn        func(ctx context.Context, id int64) error

	updateStatusCalls int
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	if f.getByIDFn == nil {
		panic("GetByID not configured")
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeRepo) GetAll(ctx context.Context) ([]*domain.Appointment, error) {
	if f.getAllFn == nil {
		panic("GetAll not configured")
	}
	return f.getAllFn(ctx)
}

func (f *fakeRepo) GetByClientID(ctx context.Context, clientID int64) ([]*domain.Appointment, error) {
	if f.getByClientIDFn == nil {
		panic("GetByClientID not configured")
	}
	return f.getByClientIDFn(ctx, clientID)
}

func (f *fakeRepo) GetByStaffID(ctx context.Context, staffID int64) ([]*domain.Appointment, error) {
	if f.getByStaffIDFn == nil {
		panic("GetByStaffID not configured")
	}
	return f.getByStaffIDFn(ctx, staffID)
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) (*domain.Appointment, error) {
	f.updateStatusCalls++
	if f.updateStatusFn == nil {
		panic("UpdateStatus not configured")
	}
	return f.updateStatusFn(ctx, id, status)
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

func pendingAppointment(id int64) *domain.Appointment {
	return &domain.Appointment{
		ID:        id,
		ClientID:  7,
		StaffID:   1,
		ServiceID: 5,
		Date:      time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
		StartTime: "09:00",
		EndTime:   "09:30",
		Status:    domain.StatusPending,
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Appointment, error) {
			return nil, appointmentRepo.ErrAppointmentNotFound
		},
	}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetByID_Success(t *testing.T) {
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Appointment, error) {
			return pendingAppointment(id), nil
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2025-10-13", resp.Date)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "Pending", resp.Status)
}

func TestUpdateStatus_ValidTransition(t *testing.T) {
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Appointment, error) {
			return pendingAppointment(id), nil
		},
		updateStatusFn: func(ctx context.Context, id int64, status domain.AppointmentStatus) (*domain.Appointment, error) {
			appt := pendingAppointment(id)
			appt.Status = status
			now := time.Now()
			appt.StatusChangedAt = &now
			return appt, nil
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "Confirmed"})
	require.NoError(t, err)
	assert.Equal(t, "Confirmed", resp.Status)
	require.NotNil(t, resp.StatusChangedAt)
	_, parseErr := time.Parse(time.RFC3339, *resp.StatusChangedAt)
	assert.NoError(t, parseErr)
	assert.Equal(t, 1, repo.updateStatusCalls)
}

func TestUpdateStatus_InvalidTransitionDoesNotWrite(t *testing.T) {
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Appointment, error) {
			appt := pendingAppointment(id)
			appt.Status = domain.StatusCompleted
			return appt, nil
		},
	}
	svc := NewService(repo, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "Cancelled"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Zero(t, repo.updateStatusCalls)
}

func TestUpdateStatus_PendingToCompletedIsForbidden(t *testing.T) {
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Appointment, error) {
			return pendingAppointment(id), nil
		},
	}
	svc := NewService(repo, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "Completed"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Zero(t, repo.updateStatusCalls)
}

func TestUpdateStatus_UnknownStatusRejectedBeforeLookup(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "Archived"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Appointment, error) {
			return nil, appointmentRepo.ErrAppointmentNotFound
		},
	}
	svc := NewService(repo, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 99, &models.UpdateStatusRequest{Status: "Confirmed"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &fakeRepo{
		deleteFn: func(ctx context.Context, id int64) error {
			return appointmentRepo.ErrAppointmentNotFound
		},
	}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestDelete_Success(t *testing.T) {
	repo := &fakeRepo{
		deleteFn: func(ctx context.Context, id int64) error {
			return nil
		},
	}
	svc := NewService(repo, nopLogger{})

	assert.NoError(t, svc.Delete(context.Background(), 42))
}

func TestGetByClientID_EmptyListIsNotAnError(t *testing.T) {
	repo := &fakeRepo{
		getByClientIDFn: func(ctx context.Context, clientID int64) ([]*domain.Appointment, error) {
			return []*domain.Appointment{}, nil
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByClientID(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, resp.Appointments)
}

func TestGetAll_RepositoryErrorWrapped(t *testing.T) {
	repo := &fakeRepo{
		getAllFn: func(ctx context.Context) ([]*domain.Appointment, error) {
			return nil, errors.New("connection reset")
		},
	}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetAll(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
