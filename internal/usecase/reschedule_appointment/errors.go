package reschedule_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("reschedule_appointment: appointment not found")

	// ErrAccessDenied возвращается, когда пользователь не является ни клиентом записи, ни её мастером
	ErrAccessDenied = errors.New("reschedule_appointment: access denied")

	// ErrCannotReschedule возвращается, когда запись в статусе, не допускающем перенос
	ErrCannotReschedule = errors.New("reschedule_appointment: appointment cannot be rescheduled")

	// ErrNoSchedule возвращается, когда у мастера не задан график работы
	ErrNoSchedule = errors.New("reschedule_appointment: professional has no schedule defined")

	// ErrInvalidDate возвращается при некорректной новой дате записи (в прошлом)
	ErrInvalidDate = errors.New("reschedule_appointment: invalid appointment date")

	// ErrOutsideWorkingHours возвращается, когда новый интервал выходит за рабочее окно мастера
	ErrOutsideWorkingHours = errors.New("reschedule_appointment: time is outside working hours")

	// ErrLunchBreak возвращается, когда новый интервал пересекается с обеденным перерывом
	ErrLunchBreak = errors.New("reschedule_appointment: time overlaps lunch break")

	// ErrTimeConflict возвращается, когда новый интервал пересекается с другой записью мастера
	ErrTimeConflict = errors.New("reschedule_appointment: time conflicts with an existing appointment")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_appointment: internal error")
)
