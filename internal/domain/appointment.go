package domain

import (
	"time"

	"github.com/anvlasova/Salon-SchedulingService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled         AppointmentStatus = "scheduled"
	StatusConfirmed         AppointmentStatus = "confirmed"
	StatusInProgress        AppointmentStatus = "in_progress"
	StatusCompleted         AppointmentStatus = "completed"
	StatusCancelledByClient AppointmentStatus = "cancelled_by_client"
	StatusCancelledBySalon  AppointmentStatus = "cancelled_by_salon"
	StatusNoShow            AppointmentStatus = "no_show"
)

// Appointment represents a client appointment with a professional
type Appointment struct {
	ID              int64
	ClientID        int64
	ProfessionalID  int64
	ServiceID       int64
	Date            time.Time // дата записи (без времени)
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64
	ClientName   *string
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndTime возвращает время окончания записи (начало + длительность)
func (a *Appointment) EndTime() (types.TimeString, error) {
	return a.StartTime.AddMinutes(a.DurationMinutes)
}

// IsActive returns true if the appointment is in an active state
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelledByClient &&
		a.Status != StatusCancelledBySalon &&
		a.Status != StatusNoShow
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the appointment can be moved to another slot
func (a *Appointment) CanBeRescheduled() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelledByClient || a.Status == StatusCancelledBySalon
}

// ProfessionalAppointmentsFilter фильтр для получения записей мастера
type ProfessionalAppointmentsFilter struct {
	ProfessionalID  int64              // Обязательный параметр
	StartDate       *time.Time         // Начало периода (опционально, если nil - без ограничения)
	EndDate         *time.Time         // Конец периода (опционально, если nil - без ограничения)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли неактивные записи (отменённые, no-show)
}
