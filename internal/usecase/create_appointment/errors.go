package create_appointment

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда мастер не найден или неактивен
	ErrProfessionalNotFound = errors.New("create_appointment: professional not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("create_appointment: client not found")

	// ErrNoSchedule возвращается, когда у мастера не задан график работы
	ErrNoSchedule = errors.New("create_appointment: professional has no schedule defined")

	// ErrInvalidDate возвращается при некорректной дате записи (в прошлом)
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrOutsideWorkingHours возвращается, когда интервал записи выходит за рабочее окно мастера
	ErrOutsideWorkingHours = errors.New("create_appointment: time is outside working hours")

	// ErrLunchBreak возвращается, когда интервал записи пересекается с обеденным перерывом
	ErrLunchBreak = errors.New("create_appointment: time overlaps lunch break")

	// ErrTimeConflict возвращается, когда интервал записи пересекается с существующей записью мастера
	ErrTimeConflict = errors.New("create_appointment: time conflicts with an existing appointment")

	// ErrInvalidServiceDuration возвращается при неположительной длительности услуги в каталоге
	ErrInvalidServiceDuration = errors.New("create_appointment: service duration must be positive")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
