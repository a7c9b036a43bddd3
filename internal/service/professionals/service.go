package professionals

import (
	"context"
	"errors"
	"fmt"

	professionalRepo "github.com/anvlasova/Salon-SchedulingService/internal/infra/storage/professional"
	"github.com/anvlasova/Salon-SchedulingService/internal/service/professionals/models"
	"github.com/anvlasova/Salon-SchedulingService/pkg/types"
)

// Service сервис для работы с мастерами
type Service struct {
	professionalRepo ProfessionalRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса мастеров
func NewService(professionalRepo ProfessionalRepository, logger Logger) *Service {
	return &Service{
		professionalRepo: professionalRepo,
		logger:           logger,
	}
}

// GetByID получает профиль мастера по ID
// Публичный метод - доступен всем
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ProfessionalResponse, error) {
	s.logger.Info("GetByID: fetching professional id=%d", id)

	prof, err := s.professionalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			s.logger.Warn("GetByID: professional id=%d not found", id)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("GetByID: repository error for professional id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched professional id=%d", id)
	return models.FromDomainProfessional(prof), nil
}

// UpdateWorkingHours обновляет график работы мастера
// Доступно только самому мастеру
// График задаётся целиком: обе границы рабочего окна обязательны,
// границы обеда задаются обе или не задаются вовсе
func (s *Service) UpdateWorkingHours(ctx context.Context, professionalID int64, req *models.UpdateWorkingHoursRequest) (*models.ProfessionalResponse, error) {
	s.logger.Info("UpdateWorkingHours: updating schedule for professional=%d by user=%d",
		professionalID, req.UserID)

	// 1. Валидируем новый график
	if err := validateWorkingHours(req); err != nil {
		s.logger.Warn("UpdateWorkingHours: validation failed for professional=%d: %v", professionalID, err)
		return nil, err
	}

	// 2. Получаем мастера
	prof, err := s.professionalRepo.GetByID(ctx, professionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			s.logger.Warn("UpdateWorkingHours: professional id=%d not found", professionalID)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("UpdateWorkingHours: repository error for professional id=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: UpdateWorkingHours - repository error: %v", ErrInternal, err)
	}

	// 3. Проверяем права доступа (только сам мастер)
	if prof.UserID != req.UserID {
		s.logger.Warn("UpdateWorkingHours: user=%d is not professional=%d", req.UserID, professionalID)
		return nil, ErrAccessDenied
	}

	// 4. Обновляем график
	if err := s.professionalRepo.UpdateWorkingHours(ctx, professionalID,
		req.WorkStartTime, req.WorkEndTime, req.LunchStartTime, req.LunchEndTime); err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			s.logger.Warn("UpdateWorkingHours: professional id=%d not found during update", professionalID)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("UpdateWorkingHours: repository error for professional id=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: UpdateWorkingHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateWorkingHours: successfully updated schedule for professional=%d", professionalID)

	// Возвращаем профиль с новым графиком
	prof.WorkStartTime = req.WorkStartTime
	prof.WorkEndTime = req.WorkEndTime
	prof.LunchStartTime = req.LunchStartTime
	prof.LunchEndTime = req.LunchEndTime

	return models.FromDomainProfessional(prof), nil
}

// validateWorkingHours валидирует новый график работы
// Правила: обе границы рабочего окна заданы и упорядочены; обед задаётся
// обеими границами или никакой; обед лежит строго внутри рабочего окна
func validateWorkingHours(req *models.UpdateWorkingHoursRequest) error {
	if req.WorkStartTime == nil || req.WorkEndTime == nil {
		return fmt.Errorf("%w: workStartTime and workEndTime are required", ErrInvalidInput)
	}

	workStart, err := types.NewTimeStringFromString(*req.WorkStartTime)
	if err != nil {
		return fmt.Errorf("%w: invalid workStartTime: %v", ErrInvalidInput, err)
	}

	workEnd, err := types.NewTimeStringFromString(*req.WorkEndTime)
	if err != nil {
		return fmt.Errorf("%w: invalid workEndTime: %v", ErrInvalidInput, err)
	}

	if !workStart.IsBefore(workEnd) {
		return fmt.Errorf("%w: workStartTime must be before workEndTime", ErrInvalidInput)
	}

	// Обед: обе границы или ни одной
	if (req.LunchStartTime == nil) != (req.LunchEndTime == nil) {
		return fmt.Errorf("%w: lunchStartTime and lunchEndTime must be set together", ErrInvalidInput)
	}

	if req.LunchStartTime != nil {
		lunchStart, err := types.NewTimeStringFromString(*req.LunchStartTime)
		if err != nil {
			return fmt.Errorf("%w: invalid lunchStartTime: %v", ErrInvalidInput, err)
		}

		lunchEnd, err := types.NewTimeStringFromString(*req.LunchEndTime)
		if err != nil {
			return fmt.Errorf("%w: invalid lunchEndTime: %v", ErrInvalidInput, err)
		}

		if !lunchStart.IsBefore(lunchEnd) {
			return fmt.Errorf("%w: lunchStartTime must be before lunchEndTime", ErrInvalidInput)
		}

		if lunchStart.IsBefore(workStart) || lunchEnd.IsAfter(workEnd) {
			return fmt.Errorf("%w: lunch break must be within working hours", ErrInvalidInput)
		}
	}

	return nil
}
