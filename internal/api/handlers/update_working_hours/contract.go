package update_working_hours

import (
	"context"

	"github.com/anvlasova/Salon-SchedulingService/internal/service/professionals/models"
)

type ProfessionalService interface {
	UpdateWorkingHours(ctx context.Context, professionalID int64, req *models.UpdateWorkingHoursRequest) (*models.ProfessionalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
