package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/anvlasova/Salon-SchedulingService/internal/domain"
	clientRepo "github.com/anvlasova/Salon-SchedulingService/internal/infra/storage/client"
	professionalRepo "github.com/anvlasova/Salon-SchedulingService/internal/infra/storage/professional"
	serviceRepo "github.com/anvlasova/Salon-SchedulingService/internal/infra/storage/service"
	"github.com/anvlasova/Salon-SchedulingService/pkg/types"
)

// UseCase use case для создания записи к мастеру
type UseCase struct {
	appointmentRepo  AppointmentRepository
	professionalRepo ProfessionalRepository
	serviceRepo      ServiceRepository
	clientRepo       ClientRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	professionalRepo ProfessionalRepository,
	serviceRepo ServiceRepository,
	clientRepo ClientRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		professionalRepo: professionalRepo,
		serviceRepo:      serviceRepo,
		clientRepo:       clientRepo,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка конфликтов и вставка выполняются в сериализуемой транзакции:
// записи мастера на день блокируются (FOR UPDATE), что исключает двойное
// бронирование при конкурентных запросах.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%d, professional=%d, service=%d, date=%s, time=%s",
		req.UserID, req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем мастера
	prof, err := uc.professionalRepo.GetByID(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("CreateAppointment: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	if !prof.IsActive {
		uc.logger.Warn("CreateAppointment: professional id=%d is inactive", req.ProfessionalID)
		return nil, ErrProfessionalNotFound
	}

	// 4. Получаем услугу
	svc, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !svc.IsActive {
		uc.logger.Warn("CreateAppointment: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	if svc.DurationMinutes <= 0 {
		uc.logger.Error("CreateAppointment: service id=%d has invalid duration %d",
			req.ServiceID, svc.DurationMinutes)
		return nil, fmt.Errorf("%w: service id=%d, duration=%d",
			ErrInvalidServiceDuration, req.ServiceID, svc.DurationMinutes)
	}

	// 5. Получаем клиента по пользователю
	cl, err := uc.clientRepo.GetByUserID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Warn("CreateAppointment: client for user id=%d not found", req.UserID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get client for user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// 6. Валидация даты и времени
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	// Для сегодняшней даты время начала не должно быть в прошлом
	if isSameDay(req.Date, now) && req.StartTime.IsBefore(types.NewTimeString(now)) {
		uc.logger.Warn("CreateAppointment: start time %s is in the past", req.StartTime)
		return nil, ErrInvalidDate
	}

	// 7. Интервал должен лежать в рабочем окне мастера вне обеда
	if err := validateWithinSchedule(prof, req.StartTime, svc.DurationMinutes); err != nil {
		uc.logger.Warn("CreateAppointment: schedule validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 8. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Получаем активные записи мастера на эту дату с блокировкой (FOR UPDATE)
		filter := domain.ProfessionalAppointmentsFilter{
			ProfessionalID:  req.ProfessionalID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false, // Только активные записи
		}

		appointments, err := uc.appointmentRepo.GetByProfessionalWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 8.2. Проверяем конфликт с существующими записями
		if conflict := domain.FindConflict(
			req.ProfessionalID, req.Date, req.StartTime, svc.DurationMinutes, appointments, nil,
		); conflict != nil {
			uc.logger.Warn("CreateAppointment: time conflict with appointment id=%d (%s, %d min)",
				conflict.ID, conflict.StartTime, conflict.DurationMinutes)
			return fmt.Errorf("%w: overlaps appointment id=%d at %s",
				ErrTimeConflict, conflict.ID, conflict.StartTime)
		}

		// 8.3. Создаем запись с денормализацией данных
		appt := &domain.Appointment{
			ClientID:        cl.ID,
			ProfessionalID:  req.ProfessionalID,
			ServiceID:       req.ServiceID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: svc.DurationMinutes,
			Status:          domain.StatusScheduled,
			// Денормализация данных услуги и клиента
			ServiceName:  svc.Name,
			ServicePrice: svc.Price,
			ClientName:   &cl.FullName,
			Notes:        req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		ClientID:        result.ClientID,
		ProfessionalID:  result.ProfessionalID,
		ServiceID:       result.ServiceID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		ClientName:      result.ClientName,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
