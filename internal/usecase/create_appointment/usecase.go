package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	availabilityRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/availability"
	catalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
)

// UseCase use case для создания записи на приём
type UseCase struct {
	appointmentRepo  AppointmentRepository
	availabilityRepo AvailabilityRepository
	serviceRepo      ServiceRepository
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	availabilityRepo AvailabilityRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		availabilityRepo: availabilityRepo,
		serviceRepo:      serviceRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute выполняет use case создания записи
// Проверки выполняются строго по порядку: доступность сотрудника, смена,
// услуга, рабочие часы, пересечения. Первая провалившаяся проверка
// останавливает процесс, последующие не выполняются.
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%d, staff=%d, service=%d, date=%s, time=%s",
		req.ClientID, req.StaffID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// Переменные для хранения результата
	var result *domain.Appointment
	var shift domain.Shift

	// 2. Выполняем все проверки и создание в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем окно доступности сотрудника на день недели записи
		dayOfWeek := int(req.Date.Weekday())

		availability, err := uc.availabilityRepo.GetByStaffIDAndDay(txCtx, req.StaffID, dayOfWeek)
		if err != nil {
			if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
				uc.logger.Warn("CreateAppointment: staff id=%d has no availability on day=%d",
					req.StaffID, dayOfWeek)
				return ErrNoAvailability
			}
			uc.logger.Error("CreateAppointment: failed to get availability: %v", err)
			return fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
		}

		// 2.2. Классифицируем время начала по сменам
		shift = domain.ClassifyShift(req.StartTime)
		if shift == domain.ShiftOutOfShift {
			uc.logger.Warn("CreateAppointment: start time %s is outside of any shift", req.StartTime)
			return ErrOutOfShift
		}

		// 2.3. Получаем услугу для определения длительности
		service, err := uc.serviceRepo.GetByID(txCtx, req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
				return ErrServiceNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
			return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}

		// 2.4. Вычисляем время окончания
		// Переход через полночь трактуем как выход за рабочие часы
		endTime, err := req.StartTime.AddMinutes(service.DurationMinutes)
		if err != nil {
			uc.logger.Warn("CreateAppointment: appointment crosses midnight: %v", err)
			return ErrOutsideWorkingHours
		}

		// 2.5. Проверяем, что интервал записи целиком внутри рабочих часов
		if !availability.Contains(req.StartTime, endTime) {
			uc.logger.Warn("CreateAppointment: interval [%s, %s] is outside working hours [%s, %s]",
				req.StartTime, endTime, availability.StartTime, availability.EndTime)
			return ErrOutsideWorkingHours
		}

		// 2.6. Получаем все записи сотрудника на эту дату с блокировкой (FOR UPDATE)
		appointments, err := uc.appointmentRepo.GetByStaffIDAndDate(txCtx, req.StaffID, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 2.7. Проверяем пересечения с существующими записями
		// Полуоткрытые интервалы: запись встык (конец одной = начало другой) допустима.
		// Отмененные записи слот не занимают, как и в exclusion constraint БД
		for _, existing := range appointments {
			if !existing.IsActive() {
				continue
			}
			if existing.Overlaps(req.StartTime, endTime) {
				uc.logger.Warn("CreateAppointment: interval [%s, %s] conflicts with appointment id=%d [%s, %s]",
					req.StartTime, endTime, existing.ID, existing.StartTime, existing.EndTime)
				return ErrTimeConflict
			}
		}

		// 2.8. Создаем запись в статусе Pending
		appt := &domain.Appointment{
			ClientID:  req.ClientID,
			StaffID:   req.StaffID,
			ServiceID: req.ServiceID,
			Date:      req.Date,
			StartTime: req.StartTime,
			EndTime:   endTime,
			Status:    domain.StatusPending,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			// Exclusion constraint БД сработал раньше нас: конкурентная запись успела первой
			if errors.Is(err, appointmentRepo.ErrSlotConflict) {
				uc.logger.Warn("CreateAppointment: concurrent appointment won the slot")
				return ErrTimeConflict
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Обрыв сериализуемой транзакции (в том числе на commit): конкурентное
		// создание зафиксировалось первым, трактуем как конфликт времени
		if appointmentRepo.IsSerializationFailure(err) {
			uc.logger.Warn("CreateAppointment: serializable transaction aborted by concurrent appointment")
			return nil, ErrTimeConflict
		}
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:        result.ID,
		ClientID:  result.ClientID,
		StaffID:   result.StaffID,
		ServiceID: result.ServiceID,
		Date:      result.Date,
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
		Status:    string(result.Status),
		Shift:     string(shift),
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}
