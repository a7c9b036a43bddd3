package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/anvlasova/Salon-SchedulingService/internal/domain"
	professionalRepo "github.com/anvlasova/Salon-SchedulingService/internal/infra/storage/professional"
	serviceRepo "github.com/anvlasova/Salon-SchedulingService/internal/infra/storage/service"
)

// UseCase use case для получения доступных слотов записи к мастеру
type UseCase struct {
	appointmentRepo  AppointmentRepository
	professionalRepo ProfessionalRepository
	serviceRepo      ServiceRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	professionalRepo ProfessionalRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		professionalRepo: professionalRepo,
		serviceRepo:      serviceRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов.
//
// Конвейер: карточка мастера → рабочее окно дня → сетка кандидатов с шагом
// 30 минут → фильтрация (прошедшее время, выход за конец дня, конфликты
// с записями, обед). Результат помечается тегом: available / no_schedule /
// no_slots.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, professional=%d, service=%d, date=%s",
		req.UserID, req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем мастера
	prof, err := uc.professionalRepo.GetByID(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAvailableSlots: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	if !prof.IsActive {
		uc.logger.Warn("GetAvailableSlots: professional id=%d is inactive", req.ProfessionalID)
		return nil, ErrProfessionalNotFound
	}

	// 4. Получаем услугу и её длительность
	svc, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// Неположительная длительность - ошибка конфигурации каталога, падаем громко
	if svc.DurationMinutes <= 0 {
		uc.logger.Error("GetAvailableSlots: service id=%d has invalid duration %d",
			req.ServiceID, svc.DurationMinutes)
		return nil, fmt.Errorf("%w: service id=%d, duration=%d",
			ErrInvalidServiceDuration, req.ServiceID, svc.DurationMinutes)
	}

	// 5. Разрешаем график мастера на день
	schedule, ok := resolveDaySchedule(prof)
	if !ok {
		uc.logger.Info("GetAvailableSlots: professional id=%d has no schedule defined", req.ProfessionalID)
		return &Response{
			Date:           req.Date,
			ProfessionalID: req.ProfessionalID,
			ServiceID:      req.ServiceID,
			Status:         AvailabilityNoSchedule,
			Slots:          []domain.Slot{},
		}, nil
	}

	// 6. Генерируем сетку кандидатов
	candidates := generateTimeSlots(schedule)

	// 7. Получаем активные записи мастера на эту дату
	filter := domain.ProfessionalAppointmentsFilter{
		ProfessionalID:  req.ProfessionalID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false, // Только активные записи
	}

	appointments, err := uc.appointmentRepo.GetByProfessionalWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 8. Фильтруем кандидатов
	slots := filterAvailableSlots(
		req.ProfessionalID,
		candidates,
		schedule,
		svc.DurationMinutes,
		appointments,
		req.Date,
		now,
	)

	status := AvailabilityOK
	if len(slots) == 0 {
		status = AvailabilityNoSlots
	}

	uc.logger.Info("GetAvailableSlots: %d slots (%s) for professional=%d, service=%d, date=%s",
		len(slots), status, req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:           req.Date,
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		Status:         status,
		Slots:          slots,
	}, nil
}
