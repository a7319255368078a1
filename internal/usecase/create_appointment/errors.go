package create_appointment

import "errors"

var (
	// ErrNoAvailability возвращается, когда у сотрудника нет окна доступности на этот день недели
	ErrNoAvailability = errors.New("create_appointment: staff has no availability on this day")

	// ErrOutOfShift возвращается, когда время начала не попадает ни в одну смену
	ErrOutOfShift = errors.New("create_appointment: start time is outside of any shift")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrOutsideWorkingHours возвращается, когда интервал записи выходит за рабочие часы сотрудника
	ErrOutsideWorkingHours = errors.New("create_appointment: appointment is outside staff working hours")

	// ErrTimeConflict возвращается, когда интервал записи пересекается с существующей записью
	ErrTimeConflict = errors.New("create_appointment: time slot conflicts with an existing appointment")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
