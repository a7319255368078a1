package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	availabilityRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/availability"
	catalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
)

// Фейки в стиле function fields: тест конфигурирует только нужные методы

type fakeAppointmentRepo struct {
	createFn             func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	getByStaffIDAndDates func(ctx context.Context, staffID int64, date time.Time) ([]*domain.Appointment, error)
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.createFn == nil {
		panic("Create not configured")
	}
	return f.createFn(ctx, appt)
}

func (f *fakeAppointmentRepo) GetByStaffIDAndDate(ctx context.Context, staffID int64, date time.Time) ([]*domain.Appointment, error) {
	if f.getByStaffIDAndDates == nil {
		return []*domain.Appointment{}, nil
	}
	return f.getByStaffIDAndDates(ctx, staffID, date)
}

type fakeAvailabilityRepo struct {
	getByStaffIDAndDayFn func(ctx context.Context, staffID int64, dayOfWeek int) (*domain.Availability, error)
}

func (f *fakeAvailabilityRepo) GetByStaffIDAndDay(ctx context.Context, staffID int64, dayOfWeek int) (*domain.Availability, error) {
	if f.getByStaffIDAndDayFn == nil {
		panic("GetByStaffIDAndDay not configured")
	}
	return f.getByStaffIDAndDayFn(ctx, staffID, dayOfWeek)
}

type fakeServiceRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Service, error)
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	if f.getByIDFn == nil {
		panic("GetByID not configured")
	}
	return f.getByIDFn(ctx, id)
}

// fakeTxManager выполняет функцию без настоящей транзакции
// commitErr имитирует ошибку фиксации транзакции после успешного выполнения fn
type fakeTxManager struct {
	commitErr error
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return f.commitErr
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// Общие данные сценариев: понедельник, сотрудник 1 работает 08:00-12:00,
// услуга 5 длится 30 минут

var monday = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

func mondayAvailability() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{
		getByStaffIDAndDayFn: func(ctx context.Context, staffID int64, dayOfWeek int) (*domain.Availability, error) {
			if staffID == 1 && dayOfWeek == 1 {
				return &domain.Availability{
					ID:        10,
					StaffID:   1,
					DayOfWeek: 1,
					StartTime: "08:00",
					EndTime:   "12:00",
				}, nil
			}
			return nil, availabilityRepo.ErrAvailabilityNotFound
		},
	}
}

func thirtyMinuteService() *fakeServiceRepo {
	return &fakeServiceRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Service, error) {
			if id == 5 {
				return &domain.Service{ID: 5, Name: "Consultation", DurationMinutes: 30, Price: 50}, nil
			}
			return nil, catalogRepo.ErrServiceNotFound
		},
	}
}

func echoCreate() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{
		createFn: func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
			appt.ID = 100
			return appt, nil
		},
	}
}

func newTestUseCase(ar *fakeAppointmentRepo, av *fakeAvailabilityRepo, sr *fakeServiceRepo) *UseCase {
	return NewUseCase(ar, av, sr, &fakeTxManager{}, nopLogger{})
}

func baseRequest() *Request {
	return &Request{
		ClientID:  7,
		StaffID:   1,
		ServiceID: 5,
		Date:      monday,
		StartTime: "09:00",
	}
}

func TestExecute_Success(t *testing.T) {
	uc := newTestUseCase(echoCreate(), mondayAvailability(), thirtyMinuteService())

	resp, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, "09:00", resp.StartTime.String())
	assert.Equal(t, "09:30", resp.EndTime.String())
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, string(domain.ShiftMorning), resp.Shift)
}

func TestExecute_CancelledAppointmentDoesNotBlockSlot(t *testing.T) {
	repo := echoCreate()
	repo.getByStaffIDAndDates = func(ctx context.Context, staffID int64, date time.Time) ([]*domain.Appointment, error) {
		return []*domain.Appointment{
			{ID: 1, StaffID: 1, StartTime: "09:00", EndTime: "09:30", Status: domain.StatusCancelled},
		}, nil
	}
	uc := newTestUseCase(repo, mondayAvailability(), thirtyMinuteService())

	req := baseRequest()
	req.StartTime = "09:15"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "09:45", resp.EndTime.String())
}

func TestExecute_ConflictWithExistingAppointment(t *testing.T) {
	repo := echoCreate()
	repo.getByStaffIDAndDates = func(ctx context.Context, staffID int64, date time.Time) ([]*domain.Appointment, error) {
		return []*domain.Appointment{
			{ID: 1, StaffID: 1, StartTime: "09:00", EndTime: "09:30", Status: domain.StatusPending},
		}, nil
	}
	uc := newTestUseCase(repo, mondayAvailability(), thirtyMinuteService())

	req := baseRequest()
	req.StartTime = "09:15"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTimeConflict)
}

func TestExecute_BackToBackIsAllowed(t *testing.T) {
	repo := echoCreate()
	repo.getByStaffIDAndDates = func(ctx context.Context, staffID int64, date time.Time) ([]*domain.Appointment, error) {
		return []*domain.Appointment{
			{ID: 1, StaffID: 1, StartTime: "10:00", EndTime: "10:30", Status: domain.StatusConfirmed},
		}, nil
	}
	uc := newTestUseCase(repo, mondayAvailability(), thirtyMinuteService())

	req := baseRequest()
	req.StartTime = "10:30"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "11:00", resp.EndTime.String())
}

func TestExecute_TouchingWindowStartIsAllowed(t *testing.T) {
	uc := newTestUseCase(echoCreate(), mondayAvailability(), thirtyMinuteService())

	req := baseRequest()
	req.StartTime = "08:00"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "08:30", resp.EndTime.String())
}

func TestExecute_EndTouchingWindowEndIsAllowed(t *testing.T) {
	uc := newTestUseCase(echoCreate(), mondayAvailability(), thirtyMinuteService())

	req := baseRequest()
	req.StartTime = "11:30"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "12:00", resp.EndTime.String())
}

func TestExecute_OutOfShift(t *testing.T) {
	// Окно доступности есть, но 23:00 не попадает ни в одну смену
	av := &fakeAvailabilityRepo{
		getByStaffIDAndDayFn: func(ctx context.Context, staffID int64, dayOfWeek int) (*domain.Availability, error) {
			return &domain.Availability{StaffID: 1, DayOfWeek: 1, StartTime: "06:00", EndTime: "23:59"}, nil
		},
	}
	uc := newTestUseCase(echoCreate(), av, thirtyMinuteService())

	req := baseRequest()
	req.StartTime = "23:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutOfShift)
}

func TestExecute_NoAvailability(t *testing.T) {
	uc := newTestUseCase(echoCreate(), mondayAvailability(), thirtyMinuteService())

	req := baseRequest()
	req.StaffID = 2 // у второго сотрудника нет окон

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNoAvailability)
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	uc := newTestUseCase(echoCreate(), mondayAvailability(), thirtyMinuteService())

	req := baseRequest()
	req.StartTime = "11:45" // конец 12:15 выходит за окно 08:00-12:00

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)
}

func TestExecute_StartBeforeWindow(t *testing.T) {
	uc := newTestUseCase(echoCreate(), mondayAvailability(), thirtyMinuteService())

	req := baseRequest()
	req.StartTime = "07:30" // смена Morning, но раньше начала окна

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)
}

func TestExecute_CrossingMidnightIsOutsideWorkingHours(t *testing.T) {
	av := &fakeAvailabilityRepo{
		getByStaffIDAndDayFn: func(ctx context.Context, staffID int64, dayOfWeek int) (*domain.Availability, error) {
			return &domain.Availability{StaffID: 1, DayOfWeek: 1, StartTime: "06:00", EndTime: "23:59"}, nil
		},
	}
	sr := &fakeServiceRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Service, error) {
			return &domain.Service{ID: id, Name: "Long service", DurationMinutes: 180, Price: 200}, nil
		},
	}
	uc := newTestUseCase(echoCreate(), av, sr)

	req := baseRequest()
	req.StartTime = "22:00" // 22:00 + 180 минут уходит за полночь

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(echoCreate(), mondayAvailability(), thirtyMinuteService())

	req := baseRequest()
	req.ServiceID = 999

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_PersistenceFailure(t *testing.T) {
	repo := &fakeAppointmentRepo{
		createFn: func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
			return nil, errors.New("connection reset")
		},
	}
	uc := newTestUseCase(repo, mondayAvailability(), thirtyMinuteService())

	_, err := uc.Execute(context.Background(), baseRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_ConcurrentSlotConflictFromConstraint(t *testing.T) {
	repo := &fakeAppointmentRepo{
		createFn: func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
			return nil, appointmentRepo.ErrSlotConflict
		},
	}
	uc := newTestUseCase(repo, mondayAvailability(), thirtyMinuteService())

	_, err := uc.Execute(context.Background(), baseRequest())
	assert.ErrorIs(t, err, ErrTimeConflict)
}

func TestExecute_SerializationFailureOnCommitIsTimeConflict(t *testing.T) {
	// Сериализуемая транзакция может оборваться на commit уже после всех проверок
	tx := &fakeTxManager{
		commitErr: fmt.Errorf("txmanager: commit: %w", &pq.Error{Code: "40001"}),
	}
	uc := NewUseCase(echoCreate(), mondayAvailability(), thirtyMinuteService(), tx, nopLogger{})

	_, err := uc.Execute(context.Background(), baseRequest())
	assert.ErrorIs(t, err, ErrTimeConflict)
}

func TestExecute_CreatePassesPendingStatus(t *testing.T) {
	var created *domain.Appointment
	repo := &fakeAppointmentRepo{
		createFn: func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
			created = appt
			appt.ID = 1
			return appt, nil
		},
	}
	uc := newTestUseCase(repo, mondayAvailability(), thirtyMinuteService())

	_, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, monday, created.Date)
}
