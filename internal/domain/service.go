package domain

import "time"

// SalonService represents a service from the salon catalog
type SalonService struct {
	ID              int64
	Name            string
	Price           float64
	DurationMinutes int
	IsActive        bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasValidDuration returns true if the duration lies within business limits
func (s *SalonService) HasValidDuration() bool {
	return s.DurationMinutes >= MinServiceDurationMinutes &&
		s.DurationMinutes <= MaxServiceDurationMinutes
}
