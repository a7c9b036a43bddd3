package models

import (
	"time"

	"github.com/anvlasova/Salon-SchedulingService/internal/domain"
)

// Request модели

// UpdateWorkingHoursRequest запрос на обновление графика работы мастера
// Передача NULL в обеих границах обеда убирает обеденный перерыв
type UpdateWorkingHoursRequest struct {
	UserID         int64   `json:"userId"`
	WorkStartTime  *string `json:"workStartTime"`  // "09:00"
	WorkEndTime    *string `json:"workEndTime"`    // "18:00"
	LunchStartTime *string `json:"lunchStartTime"` // "12:00", NULL = без обеда
	LunchEndTime   *string `json:"lunchEndTime"`   // "13:00", NULL = без обеда
}

// Response модели

// ProfessionalResponse ответ с данными мастера
type ProfessionalResponse struct {
	ID        int64   `json:"id"`
	FullName  string  `json:"fullName"`
	Specialty *string `json:"specialty,omitempty"`

	WorkStartTime  *string `json:"workStartTime,omitempty"`
	WorkEndTime    *string `json:"workEndTime,omitempty"`
	LunchStartTime *string `json:"lunchStartTime,omitempty"`
	LunchEndTime   *string `json:"lunchEndTime,omitempty"`

	IsActive bool `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Методы конвертации

// FromDomainProfessional конвертирует domain модель в DTO
func FromDomainProfessional(p *domain.Professional) *ProfessionalResponse {
	if p == nil {
		return nil
	}

	return &ProfessionalResponse{
		ID:             p.ID,
		FullName:       p.FullName,
		Specialty:      p.Specialty,
		WorkStartTime:  p.WorkStartTime,
		WorkEndTime:    p.WorkEndTime,
		LunchStartTime: p.LunchStartTime,
		LunchEndTime:   p.LunchEndTime,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
