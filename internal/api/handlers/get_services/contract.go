package get_services

import (
	"context"

	"github.com/anvlasova/Salon-SchedulingService/internal/service/catalog/models"
)

type CatalogService interface {
	GetAllActive(ctx context.Context) (*models.SalonServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
