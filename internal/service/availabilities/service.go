package availabilities

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-AppointmentService/internal/service/availabilities/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Service сервис для работы с окнами доступности сотрудников
type Service struct {
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(availabilityRepo AvailabilityRepository, logger Logger) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// Create создает новое окно доступности сотрудника
func (s *Service) Create(ctx context.Context, req *models.CreateAvailabilityRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("Create: creating availability for staff=%d, day=%d, window=[%s, %s]",
		req.StaffID, req.DayOfWeek, req.StartTime, req.EndTime)

	av, err := s.buildAvailability(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.availabilityRepo.Create(ctx, av)
	if err != nil {
		s.logger.Error("Create: repository error for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created availability id=%d", created.ID)
	return models.FromDomainAvailability(created), nil
}

// GetByStaffID получает все окна доступности сотрудника
// Возвращает пустой список, если окон нет
func (s *Service) GetByStaffID(ctx context.Context, staffID int64) (*models.AvailabilityListResponse, error) {
	s.logger.Info("GetByStaffID: fetching availabilities for staff=%d", staffID)

	availabilities, err := s.availabilityRepo.GetByStaffID(ctx, staffID)
	if err != nil {
		s.logger.Error("GetByStaffID: repository error for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: GetByStaffID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByStaffID: successfully fetched %d availabilities for staff=%d",
		len(availabilities), staffID)
	return models.FromDomainAvailabilityList(availabilities), nil
}

// Delete удаляет окно доступности
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting availability id=%d", id)

	if err := s.availabilityRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			s.logger.Warn("Delete: availability id=%d not found", id)
			return ErrAvailabilityNotFound
		}
		s.logger.Error("Delete: repository error for availability id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted availability id=%d", id)
	return nil
}

// buildAvailability валидирует запрос и собирает domain модель
// Время нормализуется к формату "HH:MM" (секунды отбрасываются)
func (s *Service) buildAvailability(req *models.CreateAvailabilityRequest) (*domain.Availability, error) {
	if req.StaffID <= 0 {
		return nil, fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return nil, fmt.Errorf("%w: dayOfWeek must be between 0 and 6", ErrInvalidInput)
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	endTime, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	// Окно должно иметь положительную длину
	if !startTime.IsBefore(endTime) {
		return nil, fmt.Errorf("%w: startTime must be before endTime", ErrInvalidTimeRange)
	}

	return &domain.Availability{
		StaffID:   req.StaffID,
		DayOfWeek: req.DayOfWeek,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}
