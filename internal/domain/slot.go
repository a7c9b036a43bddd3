package domain

import "github.com/anvlasova/Salon-SchedulingService/pkg/types"

// Slot represents a bookable start time for an appointment.
// Слоты эфемерны: вычисляются на каждый запрос и нигде не сохраняются.
type Slot struct {
	StartTime       types.TimeString
	DurationMinutes int
}

// EndTime возвращает время окончания слота
func (s *Slot) EndTime() (types.TimeString, error) {
	return s.StartTime.AddMinutes(s.DurationMinutes)
}

// Label возвращает человекочитаемую метку слота ("HH:MM")
func (s *Slot) Label() string {
	return s.StartTime.String()
}
