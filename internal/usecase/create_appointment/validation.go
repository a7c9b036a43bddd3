package create_appointment

import (
	"fmt"
	"time"

	"github.com/anvlasova/Salon-SchedulingService/internal/domain"
	"github.com/anvlasova/Salon-SchedulingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата записи не в прошлом
func validateDate(date time.Time, now time.Time) error {
	if isDateInPast(date, now) {
		return ErrInvalidDate
	}
	return nil
}

// validateWithinSchedule проверяет, что интервал [start, start+duration)
// лежит внутри рабочего окна мастера и не пересекается с обеденным перерывом.
// Времена мастера парсятся из строк "HH:MM"; некорректный или отсутствующий
// график даёт ErrNoSchedule.
func validateWithinSchedule(prof *domain.Professional, start types.TimeString, durationMinutes int) error {
	if !prof.HasSchedule() {
		return ErrNoSchedule
	}

	workStart, err := types.NewTimeStringFromString(*prof.WorkStartTime)
	if err != nil {
		return ErrNoSchedule
	}

	workEnd, err := types.NewTimeStringFromString(*prof.WorkEndTime)
	if err != nil {
		return ErrNoSchedule
	}

	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		// Конец услуги за границей суток
		return ErrOutsideWorkingHours
	}

	if start.IsBefore(workStart) || end.IsAfter(workEnd) {
		return ErrOutsideWorkingHours
	}

	if prof.HasLunchBreak() {
		lunchStart, err := types.NewTimeStringFromString(*prof.LunchStartTime)
		if err != nil {
			return ErrNoSchedule
		}

		lunchEnd, err := types.NewTimeStringFromString(*prof.LunchEndTime)
		if err != nil {
			return ErrNoSchedule
		}

		// Полуоткрытое пересечение: граничащие интервалы не конфликтуют
		if start.IsBefore(lunchEnd) && end.IsAfter(lunchStart) {
			return ErrLunchBreak
		}
	}

	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
