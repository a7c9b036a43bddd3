package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const (
	// Format формат времени HH:MM (24-часовой)
	Format = "15:04"

	minutesPerDay = 24 * 60
)

var (
	// ErrInvalidFormat возвращается при некорректном формате строки времени
	ErrInvalidFormat = errors.New("invalid time string format")

	// ErrOutOfDayRange возвращается, когда результат операции выходит за границы суток
	ErrOutOfDayRange = errors.New("time is out of day range")
)

// TimeString неизменяемое значение времени суток (HH:MM) без привязки к дате.
// Все операции возвращают новое значение, исходное не модифицируется.
// Нулевое значение считается "не заданным" (IsZero() == true).
type TimeString struct {
	minutes int // минуты с начала суток [0, 1440)
	valid   bool
}

// NewTimeString создает TimeString из time.Time (отбрасывая дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString{
		minutes: t.Hour()*60 + t.Minute(),
		valid:   true,
	}
}

// NewTimeStringFromString парсит строку формата "HH:MM" (часы 0-23, минуты 0-59)
func NewTimeStringFromString(s string) (TimeString, error) {
	if len(s) != len(Format) {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	parsed, err := time.Parse(Format, s)
	if err != nil {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return NewTimeString(parsed), nil
}

// NewTimeStringFromMinutes создает TimeString из количества минут с начала суток
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return TimeString{}, fmt.Errorf("%w: %d minutes", ErrOutOfDayRange, minutes)
	}
	return TimeString{minutes: minutes, valid: true}, nil
}

// IsZero возвращает true для незаданного значения
func (t TimeString) IsZero() bool {
	return !t.valid
}

// Validate проверяет, что значение задано и лежит в пределах суток
func (t TimeString) Validate() error {
	if !t.valid {
		return ErrInvalidFormat
	}
	if t.minutes < 0 || t.minutes >= minutesPerDay {
		return ErrOutOfDayRange
	}
	return nil
}

// Hour возвращает часы (0-23)
func (t TimeString) Hour() int {
	return t.minutes / 60
}

// Minute возвращает минуты (0-59)
func (t TimeString) Minute() int {
	return t.minutes % 60
}

// TotalMinutes возвращает количество минут с начала суток
func (t TimeString) TotalMinutes() int {
	return t.minutes
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutes < other.minutes
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.minutes > other.minutes
}

// Equal возвращает true при совпадении времени
func (t TimeString) Equal(other TimeString) bool {
	return t.valid == other.valid && t.minutes == other.minutes
}

// AddMinutes возвращает новое значение, сдвинутое на m минут вперед.
// Переход через границу суток считается ошибкой: рабочие окна и обеденные
// перерывы никогда не пересекают полночь.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	if !t.valid {
		return TimeString{}, ErrInvalidFormat
	}
	result := t.minutes + m
	if result < 0 || result > minutesPerDay {
		return TimeString{}, fmt.Errorf("%w: %s + %d minutes", ErrOutOfDayRange, t, m)
	}
	return TimeString{minutes: result, valid: true}, nil
}

// OnDate возвращает абсолютный момент времени: полночь указанной даты плюс смещение t
func (t TimeString) OnDate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}

// String возвращает представление "HH:MM" с ведущими нулями
func (t TimeString) String() string {
	if !t.valid {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Scan реализует sql.Scanner (поддерживает TIME колонки postgres)
func (t *TimeString) Scan(value interface{}) error {
	if value == nil {
		*t = TimeString{}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidFormat, value)
	}
}

// scanString парсит "HH:MM" или "HH:MM:SS" из БД
func (t *TimeString) scanString(s string) error {
	if len(s) > 5 {
		s = s[:5]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if !t.valid {
		return nil, nil
	}
	return t.String(), nil
}
