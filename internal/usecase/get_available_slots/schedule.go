package get_available_slots

import (
	"github.com/anvlasova/Salon-SchedulingService/internal/domain"
	"github.com/anvlasova/Salon-SchedulingService/pkg/types"
)

// daySchedule рабочее окно мастера на день, приведённое к конкретным значениям времени
type daySchedule struct {
	workStart types.TimeString
	workEnd   types.TimeString

	hasLunch   bool
	lunchStart types.TimeString
	lunchEnd   types.TimeString
}

// resolveDaySchedule конвертирует строки "HH:MM" из карточки мастера в рабочее
// окно дня. Возвращает ok=false, если график не задан или строки некорректны -
// для вызывающей стороны это состояние "график не задан", а не ошибка.
//
// Обеденный перерыв учитывается только когда заданы обе границы; перерыв
// с одной границей трактуется как отсутствие перерыва. Некорректная строка
// в заданной границе обеда означает испорченную карточку - тоже ok=false.
func resolveDaySchedule(prof *domain.Professional) (daySchedule, bool) {
	if !prof.HasSchedule() {
		return daySchedule{}, false
	}

	workStart, err := types.NewTimeStringFromString(*prof.WorkStartTime)
	if err != nil {
		return daySchedule{}, false
	}

	workEnd, err := types.NewTimeStringFromString(*prof.WorkEndTime)
	if err != nil {
		return daySchedule{}, false
	}

	schedule := daySchedule{
		workStart: workStart,
		workEnd:   workEnd,
	}

	if prof.HasLunchBreak() {
		lunchStart, err := types.NewTimeStringFromString(*prof.LunchStartTime)
		if err != nil {
			return daySchedule{}, false
		}

		lunchEnd, err := types.NewTimeStringFromString(*prof.LunchEndTime)
		if err != nil {
			return daySchedule{}, false
		}

		schedule.hasLunch = true
		schedule.lunchStart = lunchStart
		schedule.lunchEnd = lunchEnd
	}

	return schedule, true
}
