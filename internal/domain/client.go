package domain

import "time"

// Client represents a salon client
type Client struct {
	ID       int64
	UserID   int64
	FullName string
	Phone    *string
	Email    *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
