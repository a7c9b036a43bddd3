package get_available_slots

import (
	"time"

	"github.com/anvlasova/Salon-SchedulingService/internal/domain"
)

// Availability тег результата расчёта слотов.
// Пустой список слотов без тега неразличим для вызывающей стороны:
// "у мастера не задан график" и "всё занято" - разные состояния,
// и UI обязан показывать их по-разному.
type Availability string

const (
	// AvailabilityOK есть хотя бы один доступный слот
	AvailabilityOK Availability = "available"

	// AvailabilityNoSchedule у мастера не задан (или задан некорректно) график работы
	AvailabilityNoSchedule Availability = "no_schedule"

	// AvailabilityNoSlots график задан, но доступных слотов не осталось
	AvailabilityNoSlots Availability = "no_slots"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	UserID         int64     // ID пользователя (для логирования, не влияет на результат)
	ProfessionalID int64     // ID мастера
	ServiceID      int64     // ID услуги (определяет длительность)
	Date           time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date           time.Time     // Дата, на которую запрашивались слоты
	ProfessionalID int64         // ID мастера
	ServiceID      int64         // ID услуги
	Status         Availability  // Тег результата
	Slots          []domain.Slot // Список доступных слотов (пустой для no_schedule/no_slots)
}
