package get_available_slots

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда мастер не найден или неактивен
	ErrProfessionalNotFound = errors.New("get_available_slots: professional not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrInvalidServiceDuration возвращается при неположительной длительности услуги.
	// Это ошибка конфигурации каталога, а не пользовательского ввода - падаем громко.
	ErrInvalidServiceDuration = errors.New("get_available_slots: service duration must be positive")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
