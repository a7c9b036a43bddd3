package domain

import (
	"time"

	"github.com/anvlasova/Salon-SchedulingService/pkg/types"
)

// FindConflict ищет первую активную запись того же мастера на ту же дату,
// пересекающуюся с интервалом [start, start+durationMinutes).
//
// Интервалы считаются полуоткрытыми: [a,b) и [c,d) пересекаются только если
// a < d И b > c. Граничащие интервалы (конец одного равен началу другого)
// конфликтом НЕ считаются:
//   - кандидат 10:15-10:45, запись 10:00-10:30 → конфликт (пересечение 10:15-10:30)
//   - кандидат 10:30-11:00, запись 10:00-10:30 → нет конфликта (граничат)
//
// excludeID исключает из проверки редактируемую запись: при переносе запись
// не должна конфликтовать сама с собой. Возвращает nil, если конфликтов нет.
func FindConflict(
	professionalID int64,
	date time.Time,
	start types.TimeString,
	durationMinutes int,
	existing []*Appointment,
	excludeID *int64,
) *Appointment {
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		// Интервал выходит за границы суток - сравнивать не с чем
		return nil
	}

	for _, appt := range existing {
		if appt.ProfessionalID != professionalID {
			continue
		}
		if excludeID != nil && appt.ID == *excludeID {
			continue
		}
		// Пропускаем неактивные записи (отменённые, no-show)
		if !appt.IsActive() {
			continue
		}
		if !isSameDay(appt.Date, date) {
			continue
		}

		apptEnd, err := appt.EndTime()
		if err != nil {
			continue
		}

		// Строгие неравенства: граничные случаи не считаются пересечением
		if appt.StartTime.IsBefore(end) && apptEnd.IsAfter(start) {
			return appt
		}
	}

	return nil
}

// HasConflict возвращает true, если найдена хотя бы одна конфликтующая запись
func HasConflict(
	professionalID int64,
	date time.Time,
	start types.TimeString,
	durationMinutes int,
	existing []*Appointment,
	excludeID *int64,
) bool {
	return FindConflict(professionalID, date, start, durationMinutes, existing, excludeID) != nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
