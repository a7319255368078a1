package models

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модели

// CreateAvailabilityRequest запрос на создание окна доступности
type CreateAvailabilityRequest struct {
	StaffID   int64  `json:"staffId"`
	DayOfWeek int    `json:"dayOfWeek"` // 0=воскресенье .. 6=суббота
	StartTime string `json:"startTime"` // "08:00"
	EndTime   string `json:"endTime"`   // "16:00"
}

// Response модели

// AvailabilityResponse ответ с данными окна доступности
type AvailabilityResponse struct {
	ID        int64  `json:"id"`
	StaffID   int64  `json:"staffId"`
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AvailabilityListResponse ответ со списком окон доступности
type AvailabilityListResponse struct {
	Availabilities []AvailabilityResponse `json:"availabilities"`
}

// Методы конвертации

// FromDomainAvailability конвертирует domain модель в DTO
func FromDomainAvailability(a *domain.Availability) *AvailabilityResponse {
	if a == nil {
		return nil
	}

	return &AvailabilityResponse{
		ID:        a.ID,
		StaffID:   a.StaffID,
		DayOfWeek: a.DayOfWeek,
		StartTime: a.StartTime.String(),
		EndTime:   a.EndTime.String(),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// FromDomainAvailabilityList конвертирует список domain моделей в DTO
func FromDomainAvailabilityList(availabilities []*domain.Availability) *AvailabilityListResponse {
	if availabilities == nil {
		return &AvailabilityListResponse{
			Availabilities: []AvailabilityResponse{},
		}
	}

	resp := &AvailabilityListResponse{
		Availabilities: make([]AvailabilityResponse, 0, len(availabilities)),
	}

	for _, a := range availabilities {
		resp.Availabilities = append(resp.Availabilities, *FromDomainAvailability(a))
	}

	return resp
}
