package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientID  int64            // ID клиента
	StaffID   int64            // ID сотрудника
	ServiceID int64            // ID услуги
	Date      time.Time        // Дата записи (без времени)
	StartTime types.TimeString // Время начала (например, "09:00")
}

// Response модель ответа с созданной записью
type Response struct {
	ID        int64            // ID созданной записи
	ClientID  int64            // ID клиента
	StaffID   int64            // ID сотрудника
	ServiceID int64            // ID услуги
	Date      time.Time        // Дата записи
	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время окончания (начало + длительность услуги)
	Status    string           // Статус записи
	Shift     string           // Смена, в которую попадает запись

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
