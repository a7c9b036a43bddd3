package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvlasova/Salon-SchedulingService/internal/domain"
	"github.com/anvlasova/Salon-SchedulingService/pkg/types"
)

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func slotStarts(slots []domain.Slot) []string {
	starts := make([]string, 0, len(slots))
	for _, s := range slots {
		starts = append(starts, s.StartTime.String())
	}
	return starts
}

func strPtr(s string) *string {
	return &s
}

func TestGenerateTimeSlots(t *testing.T) {
	t.Run("full working day", func(t *testing.T) {
		schedule := daySchedule{
			workStart: mustTime(t, "09:00"),
			workEnd:   mustTime(t, "18:00"),
		}

		candidates := generateTimeSlots(schedule)

		// 9 часов с шагом 30 минут: 09:00, 09:30, ..., 17:30 - конец окна не включается
		require.Len(t, candidates, 18)
		assert.Equal(t, "09:00", candidates[0].String())
		assert.Equal(t, "09:30", candidates[1].String())
		assert.Equal(t, "17:30", candidates[17].String())
	})

	t.Run("short window", func(t *testing.T) {
		schedule := daySchedule{
			workStart: mustTime(t, "10:00"),
			workEnd:   mustTime(t, "11:00"),
		}

		candidates := generateTimeSlots(schedule)

		require.Len(t, candidates, 2)
		assert.Equal(t, "10:00", candidates[0].String())
		assert.Equal(t, "10:30", candidates[1].String())
	})

	t.Run("empty window", func(t *testing.T) {
		schedule := daySchedule{
			workStart: mustTime(t, "10:00"),
			workEnd:   mustTime(t, "10:00"),
		}

		assert.Empty(t, generateTimeSlots(schedule))
	})

	t.Run("inverted window", func(t *testing.T) {
		schedule := daySchedule{
			workStart: mustTime(t, "18:00"),
			workEnd:   mustTime(t, "09:00"),
		}

		assert.Empty(t, generateTimeSlots(schedule))
	})

	t.Run("window ending at midnight", func(t *testing.T) {
		schedule := daySchedule{
			workStart: mustTime(t, "23:00"),
			workEnd:   mustTime(t, "23:59"),
		}

		candidates := generateTimeSlots(schedule)

		require.Len(t, candidates, 2)
		assert.Equal(t, "23:00", candidates[0].String())
		assert.Equal(t, "23:30", candidates[1].String())
	})
}

func TestFilterAvailableSlots_NoConstraints(t *testing.T) {
	// Будущая дата, нет записей и обеда - проходят все кандидаты,
	// кроме не помещающихся до конца дня
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	schedule := daySchedule{
		workStart: mustTime(t, "09:00"),
		workEnd:   mustTime(t, "11:00"),
	}
	candidates := generateTimeSlots(schedule)

	slots := filterAvailableSlots(7, candidates, schedule, 60, nil, date, now)

	// Кандидаты 09:00..10:30; услуга 60 минут с 10:30 закончилась бы в 11:30
	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, slotStarts(slots))
	for _, s := range slots {
		assert.Equal(t, 60, s.DurationMinutes)
	}
}

func TestFilterAvailableSlots_LunchBreak(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	schedule := daySchedule{
		workStart:  mustTime(t, "09:00"),
		workEnd:    mustTime(t, "15:00"),
		hasLunch:   true,
		lunchStart: mustTime(t, "12:00"),
		lunchEnd:   mustTime(t, "13:00"),
	}
	candidates := generateTimeSlots(schedule)

	slots := filterAvailableSlots(7, candidates, schedule, 30, nil, date, now)

	// 11:30-12:00 граничит с обедом и остаётся; 12:00 и 12:30 выпадают;
	// 13:00 начинается ровно на границе конца обеда и остаётся
	assert.Equal(t,
		[]string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30", "13:00", "13:30", "14:00", "14:30"},
		slotStarts(slots))
}

func TestFilterAvailableSlots_LunchBreakLongService(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	schedule := daySchedule{
		workStart:  mustTime(t, "09:00"),
		workEnd:    mustTime(t, "15:00"),
		hasLunch:   true,
		lunchStart: mustTime(t, "12:00"),
		lunchEnd:   mustTime(t, "13:00"),
	}
	candidates := generateTimeSlots(schedule)

	// Услуга 60 минут: 11:30 заехала бы на обед, 11:00 заканчивается ровно в 12:00
	slots := filterAvailableSlots(7, candidates, schedule, 60, nil, date, now)

	assert.Equal(t,
		[]string{"09:00", "09:30", "10:00", "10:30", "11:00", "13:00", "13:30", "14:00"},
		slotStarts(slots))
}

func TestFilterAvailableSlots_ExistingAppointments(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	schedule := daySchedule{
		workStart: mustTime(t, "09:00"),
		workEnd:   mustTime(t, "12:00"),
	}
	candidates := generateTimeSlots(schedule)

	appointments := []*domain.Appointment{
		{
			ID:              1,
			ProfessionalID:  7,
			Date:            date,
			StartTime:       mustTime(t, "10:00"),
			DurationMinutes: 30,
			Status:          domain.StatusScheduled,
		},
	}

	slots := filterAvailableSlots(7, candidates, schedule, 30, appointments, date, now)

	// 09:30-10:00 граничит с записью и остаётся; 10:00 занят; 10:30 начинается
	// ровно в конце записи и остаётся
	assert.Equal(t, []string{"09:00", "09:30", "10:30", "11:00", "11:30"}, slotStarts(slots))
}

func TestFilterAvailableSlots_CancelledAppointmentFreesSlot(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	schedule := daySchedule{
		workStart: mustTime(t, "10:00"),
		workEnd:   mustTime(t, "11:00"),
	}
	candidates := generateTimeSlots(schedule)

	appointments := []*domain.Appointment{
		{
			ID:              1,
			ProfessionalID:  7,
			Date:            date,
			StartTime:       mustTime(t, "10:00"),
			DurationMinutes: 30,
			Status:          domain.StatusCancelledByClient,
		},
	}

	slots := filterAvailableSlots(7, candidates, schedule, 30, appointments, date, now)

	assert.Equal(t, []string{"10:00", "10:30"}, slotStarts(slots))
}

func TestFilterAvailableSlots_PastSlotsToday(t *testing.T) {
	// Запрос на сегодня в 14:35 - все слоты с началом до 14:35 выпадают
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 10, 14, 35, 0, 0, time.UTC)

	schedule := daySchedule{
		workStart: mustTime(t, "14:00"),
		workEnd:   mustTime(t, "16:00"),
	}
	candidates := generateTimeSlots(schedule)

	slots := filterAvailableSlots(7, candidates, schedule, 30, nil, date, now)

	assert.Equal(t, []string{"15:00", "15:30"}, slotStarts(slots))
}

func TestFilterAvailableSlots_PastSlotsOnlyForToday(t *testing.T) {
	// Для будущей даты текущее время суток не влияет на результат
	date := time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 10, 23, 0, 0, 0, time.UTC)

	schedule := daySchedule{
		workStart: mustTime(t, "09:00"),
		workEnd:   mustTime(t, "10:00"),
	}
	candidates := generateTimeSlots(schedule)

	slots := filterAvailableSlots(7, candidates, schedule, 30, nil, date, now)

	assert.Equal(t, []string{"09:00", "09:30"}, slotStarts(slots))
}

func TestFilterAvailableSlots_SlotStartingExactlyNow(t *testing.T) {
	// Слот, начинающийся ровно сейчас, ещё доступен (строгое "раньше")
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC)

	schedule := daySchedule{
		workStart: mustTime(t, "14:00"),
		workEnd:   mustTime(t, "16:00"),
	}
	candidates := generateTimeSlots(schedule)

	slots := filterAvailableSlots(7, candidates, schedule, 30, nil, date, now)

	assert.Equal(t, []string{"15:00", "15:30"}, slotStarts(slots))
}

func TestFilterAvailableSlots_ServiceLongerThanDay(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	schedule := daySchedule{
		workStart: mustTime(t, "09:00"),
		workEnd:   mustTime(t, "12:00"),
	}
	candidates := generateTimeSlots(schedule)

	// 4 часа не помещаются в 3-часовое окно ни с одного кандидата
	slots := filterAvailableSlots(7, candidates, schedule, 240, nil, date, now)

	assert.Empty(t, slots)
}

func TestResolveDaySchedule(t *testing.T) {
	t.Run("full schedule with lunch", func(t *testing.T) {
		prof := &domain.Professional{
			WorkStartTime:  strPtr("09:00"),
			WorkEndTime:    strPtr("18:00"),
			LunchStartTime: strPtr("12:00"),
			LunchEndTime:   strPtr("13:00"),
		}

		schedule, ok := resolveDaySchedule(prof)
		require.True(t, ok)
		assert.Equal(t, "09:00", schedule.workStart.String())
		assert.Equal(t, "18:00", schedule.workEnd.String())
		require.True(t, schedule.hasLunch)
		assert.Equal(t, "12:00", schedule.lunchStart.String())
		assert.Equal(t, "13:00", schedule.lunchEnd.String())
	})

	t.Run("schedule without lunch", func(t *testing.T) {
		prof := &domain.Professional{
			WorkStartTime: strPtr("09:00"),
			WorkEndTime:   strPtr("18:00"),
		}

		schedule, ok := resolveDaySchedule(prof)
		require.True(t, ok)
		assert.False(t, schedule.hasLunch)
	})

	t.Run("one-sided lunch means no lunch", func(t *testing.T) {
		prof := &domain.Professional{
			WorkStartTime:  strPtr("09:00"),
			WorkEndTime:    strPtr("18:00"),
			LunchStartTime: strPtr("12:00"),
		}

		schedule, ok := resolveDaySchedule(prof)
		require.True(t, ok)
		assert.False(t, schedule.hasLunch)
	})

	t.Run("no schedule", func(t *testing.T) {
		_, ok := resolveDaySchedule(&domain.Professional{})
		assert.False(t, ok)
	})

	t.Run("partial schedule", func(t *testing.T) {
		prof := &domain.Professional{WorkStartTime: strPtr("09:00")}
		_, ok := resolveDaySchedule(prof)
		assert.False(t, ok)
	})

	t.Run("malformed work time", func(t *testing.T) {
		prof := &domain.Professional{
			WorkStartTime: strPtr("9am"),
			WorkEndTime:   strPtr("18:00"),
		}
		_, ok := resolveDaySchedule(prof)
		assert.False(t, ok)
	})

	t.Run("malformed lunch time", func(t *testing.T) {
		prof := &domain.Professional{
			WorkStartTime:  strPtr("09:00"),
			WorkEndTime:    strPtr("18:00"),
			LunchStartTime: strPtr("noon"),
			LunchEndTime:   strPtr("13:00"),
		}
		_, ok := resolveDaySchedule(prof)
		assert.False(t, ok)
	})
}
