package domain

// Default values
const (
	// SlotStepMinutes шаг сетки слотов записи. Слоты всегда генерируются
	// с фиксированным шагом 30 минут от начала рабочего дня мастера.
	SlotStepMinutes = 30
)

// Business validation constants
const (
	MinServiceDurationMinutes = 1
	MaxServiceDurationMinutes = 480 // 8 часов

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных записей.
// Неактивные записи не участвуют в расчёте доступных слотов и проверке конфликтов.
var InactiveStatuses = []AppointmentStatus{
	StatusCancelledByClient,
	StatusCancelledBySalon,
	StatusNoShow,
}

// ActiveStatuses список статусов активных записей
var ActiveStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}
