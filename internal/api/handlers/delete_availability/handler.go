package delete_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/availabilities"
)

const (
	msgInvalidAvailabilityID = "некорректный ID окна доступности"
	msgNotFound              = "окно доступности не найдено"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/availabilities/{availabilityId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем availabilityId из URL
	vars := mux.Vars(r)
	availabilityIDStr := vars["availabilityId"]

	availabilityID, err := strconv.ParseInt(availabilityIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /availabilities/{id} - Invalid availability ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAvailabilityID)
		return
	}

	if err := h.service.Delete(r.Context(), availabilityID); err != nil {
		switch {
		case errors.Is(err, availabilities.ErrAvailabilityNotFound):
			h.logger.Warn("DELETE /availabilities/{id} - Availability not found: availability_id=%d", availabilityID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /availabilities/{id} - Failed to delete availability: availability_id=%d, error=%v",
				availabilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /availabilities/{id} - Availability deleted successfully: availability_id=%d", availabilityID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
