package catalog

import (
	"context"
	"errors"
	"fmt"

	serviceRepo "github.com/anvlasova/Salon-SchedulingService/internal/infra/storage/service"
	"github.com/anvlasova/Salon-SchedulingService/internal/service/catalog/models"
)

// Service сервис для работы с каталогом услуг
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// GetByID получает услугу по ID
// Публичный метод - доступен всем
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SalonServiceResponse, error) {
	s.logger.Info("GetByID: fetching service id=%d", id)

	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByID: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched service id=%d", id)
	return models.FromDomainService(svc), nil
}

// GetAllActive получает все активные услуги каталога
// Публичный метод - доступен всем
func (s *Service) GetAllActive(ctx context.Context) (*models.SalonServiceListResponse, error) {
	s.logger.Info("GetAllActive: fetching active services")

	services, err := s.serviceRepo.GetAllActive(ctx)
	if err != nil {
		s.logger.Error("GetAllActive: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAllActive - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAllActive: successfully fetched %d services", len(services))
	return models.FromDomainServiceList(services), nil
}
