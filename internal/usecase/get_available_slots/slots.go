package get_available_slots

import (
	"time"

	"github.com/anvlasova/Salon-SchedulingService/internal/domain"
	"github.com/anvlasova/Salon-SchedulingService/pkg/types"
)

// generateTimeSlots генерирует все кандидатные времена начала на день:
// от начала рабочего окна (включительно) до конца (исключительно)
// с фиксированным шагом domain.SlotStepMinutes.
//
// Длительность услуги здесь не участвует - кандидаты, не помещающиеся
// до конца рабочего дня, отсеиваются отдельным фильтром.
func generateTimeSlots(schedule daySchedule) []types.TimeString {
	candidates := make([]types.TimeString, 0)
	current := schedule.workStart

	for current.IsBefore(schedule.workEnd) {
		candidates = append(candidates, current)

		next, err := current.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			// Следующий шаг вышел за границу суток
			break
		}
		current = next
	}

	return candidates
}

// filterAvailableSlots оставляет только те кандидаты, на которые реально можно
// записаться. Кандидат отбрасывается, если:
//  1. дата запроса - сегодня, и время начала уже прошло (start < now);
//  2. услуга не успевает закончиться до конца рабочего дня (end > workEnd);
//  3. интервал пересекается с существующей активной записью мастера;
//  4. интервал пересекается с обеденным перерывом.
//
// Везде используется полуоткрытое пересечение интервалов: граничащие
// интервалы не конфликтуют (запись, заканчивающаяся в 10:00, не мешает
// слоту, начинающемуся в 10:00).
func filterAvailableSlots(
	professionalID int64,
	candidates []types.TimeString,
	schedule daySchedule,
	serviceDuration int,
	appointments []*domain.Appointment,
	requestDate time.Time,
	now time.Time,
) []domain.Slot {
	today := isSameDay(requestDate, now)
	currentTime := types.NewTimeString(now)

	slots := make([]domain.Slot, 0, len(candidates))

	for _, start := range candidates {
		// 1. Прошедшие слоты отсеиваются только для сегодняшней даты
		if today && start.IsBefore(currentTime) {
			continue
		}

		end, err := start.AddMinutes(serviceDuration)
		if err != nil {
			// Конец услуги за границей суток - заведомо не помещается
			continue
		}

		// 2. Услуга должна закончиться не позже конца рабочего дня
		if end.IsAfter(schedule.workEnd) {
			continue
		}

		// 3. Пересечение с существующими записями мастера
		if domain.HasConflict(professionalID, requestDate, start, serviceDuration, appointments, nil) {
			continue
		}

		// 4. Пересечение с обеденным перерывом
		if schedule.hasLunch && start.IsBefore(schedule.lunchEnd) && end.IsAfter(schedule.lunchStart) {
			continue
		}

		slots = append(slots, domain.Slot{
			StartTime:       start,
			DurationMinutes: serviceDuration,
		})
	}

	return slots
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
