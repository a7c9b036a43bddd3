package domain

import "time"

// Professional represents a salon professional (master) with an optional daily schedule.
// Время хранится строками "HH:MM"; NULL в work_start_time/work_end_time означает,
// что график не задан и запись к мастеру невозможна.
type Professional struct {
	ID        int64
	UserID    int64
	FullName  string
	Specialty *string

	WorkStartTime  *string // "09:00", NULL = график не задан
	WorkEndTime    *string // "18:00", NULL = график не задан
	LunchStartTime *string // "12:00", NULL = без обеда
	LunchEndTime   *string // "13:00", NULL = без обеда

	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasSchedule returns true if both work window bounds are set
func (p *Professional) HasSchedule() bool {
	return p.WorkStartTime != nil && p.WorkEndTime != nil
}

// HasLunchBreak returns true if both lunch bounds are set
func (p *Professional) HasLunchBreak() bool {
	return p.LunchStartTime != nil && p.LunchEndTime != nil
}
