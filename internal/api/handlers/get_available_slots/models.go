package get_available_slots

import (
	"time"

	"github.com/anvlasova/Salon-SchedulingService/internal/domain"
	getAvailableSlots "github.com/anvlasova/Salon-SchedulingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date           string          `json:"date"`
	ProfessionalID int64           `json:"professionalId"`
	ServiceID      int64           `json:"serviceId"`
	Status         string          `json:"status"` // available | no_schedule | no_slots
	Slots          []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		s := AvailableSlot{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
		}
		if end, err := slot.EndTime(); err == nil {
			s.EndTime = end.String()
		}
		slots[i] = s
	}

	return &AvailableSlotsResponse{
		Date:           resp.Date.Format(domain.DateFormat),
		ProfessionalID: resp.ProfessionalID,
		ServiceID:      resp.ServiceID,
		Status:         string(resp.Status),
		Slots:          slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров URL
func ToUseCaseRequest(professionalID, serviceID int64, dateStr string) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ProfessionalID: professionalID,
		ServiceID:      serviceID,
		Date:           date,
	}, nil
}
