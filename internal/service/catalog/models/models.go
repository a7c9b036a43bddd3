package models

import (
	"time"

	"github.com/anvlasova/Salon-SchedulingService/internal/domain"
)

// SalonServiceResponse ответ с данными услуги каталога
type SalonServiceResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"durationMinutes"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// SalonServiceListResponse ответ со списком услуг
type SalonServiceListResponse struct {
	Services []SalonServiceResponse `json:"services"`
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.SalonService) *SalonServiceResponse {
	if s == nil {
		return nil
	}

	return &SalonServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		IsActive:        s.IsActive,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.SalonService) *SalonServiceListResponse {
	if services == nil {
		return &SalonServiceListResponse{
			Services: []SalonServiceResponse{},
		}
	}

	resp := &SalonServiceListResponse{
		Services: make([]SalonServiceResponse, len(services)),
	}

	for i, svc := range services {
		if svcResp := FromDomainService(svc); svcResp != nil {
			resp.Services[i] = *svcResp
		}
	}

	return resp
}
