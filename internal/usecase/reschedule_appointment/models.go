package reschedule_appointment

import (
	"time"

	"github.com/anvlasova/Salon-SchedulingService/pkg/types"
)

// Request модель запроса на перенос записи
type Request struct {
	UserID        int64            // ID пользователя, инициирующего перенос
	AppointmentID int64            // ID переносимой записи
	Date          time.Time        // Новая дата записи
	StartTime     types.TimeString // Новое время начала
}

// Response модель ответа с перенесённой записью
type Response struct {
	ID              int64            // ID записи
	ClientID        int64            // ID клиента
	ProfessionalID  int64            // ID мастера
	ServiceID       int64            // ID услуги
	Date            time.Time        // Новая дата записи
	StartTime       types.TimeString // Новое время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус записи

	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги
	ClientName   *string // Имя клиента
	Notes        *string // Заметки
}
