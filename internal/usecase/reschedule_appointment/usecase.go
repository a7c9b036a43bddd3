package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/anvlasova/Salon-SchedulingService/internal/domain"
	appointmentRepo "github.com/anvlasova/Salon-SchedulingService/internal/infra/storage/appointment"
	clientRepo "github.com/anvlasova/Salon-SchedulingService/internal/infra/storage/client"
	professionalRepo "github.com/anvlasova/Salon-SchedulingService/internal/infra/storage/professional"
	"github.com/anvlasova/Salon-SchedulingService/pkg/types"
)

// UseCase use case для переноса записи на другое время
type UseCase struct {
	appointmentRepo  AppointmentRepository
	professionalRepo ProfessionalRepository
	clientRepo       ClientRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	professionalRepo ProfessionalRepository,
	clientRepo ClientRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		professionalRepo: professionalRepo,
		clientRepo:       clientRepo,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case переноса записи.
// Перенести запись может либо её клиент, либо её мастер. Проверка конфликтов
// и обновление выполняются в сериализуемой транзакции, при этом сама
// переносимая запись исключается из проверки пересечений.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: user=%d, appointment=%d, date=%s, time=%s",
		req.UserID, req.AppointmentID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Получаем запись
	appt, err := uc.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("RescheduleAppointment: appointment id=%d not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("RescheduleAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	// 3. Проверяем права доступа
	if err := uc.checkAccess(ctx, req.UserID, appt); err != nil {
		return nil, err
	}

	// 4. Проверяем, что статус допускает перенос
	if !appt.CanBeRescheduled() {
		uc.logger.Warn("RescheduleAppointment: appointment id=%d in status %s cannot be rescheduled",
			appt.ID, appt.Status)
		return nil, fmt.Errorf("%w: status is %s", ErrCannotReschedule, appt.Status)
	}

	// 5. Валидация новой даты и времени
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("RescheduleAppointment: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	if isSameDay(req.Date, now) && req.StartTime.IsBefore(types.NewTimeString(now)) {
		uc.logger.Warn("RescheduleAppointment: start time %s is in the past", req.StartTime)
		return nil, ErrInvalidDate
	}

	// 6. Получаем мастера и проверяем новый интервал против его графика
	prof, err := uc.professionalRepo.GetByID(ctx, appt.ProfessionalID)
	if err != nil {
		uc.logger.Error("RescheduleAppointment: failed to get professional id=%d: %v", appt.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	if err := validateWithinSchedule(prof, req.StartTime, appt.DurationMinutes); err != nil {
		uc.logger.Warn("RescheduleAppointment: schedule validation failed: %v", err)
		return nil, err
	}

	// 7. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Получаем активные записи мастера на новую дату с блокировкой (FOR UPDATE)
		filter := domain.ProfessionalAppointmentsFilter{
			ProfessionalID:  appt.ProfessionalID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false,
		}

		appointments, err := uc.appointmentRepo.GetByProfessionalWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("RescheduleAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 7.2. Проверяем конфликт, исключая саму переносимую запись
		if conflict := domain.FindConflict(
			appt.ProfessionalID, req.Date, req.StartTime, appt.DurationMinutes, appointments, &appt.ID,
		); conflict != nil {
			uc.logger.Warn("RescheduleAppointment: time conflict with appointment id=%d (%s, %d min)",
				conflict.ID, conflict.StartTime, conflict.DurationMinutes)
			return fmt.Errorf("%w: overlaps appointment id=%d at %s",
				ErrTimeConflict, conflict.ID, conflict.StartTime)
		}

		// 7.3. Обновляем дату и время записи
		if err := uc.appointmentRepo.UpdateSchedule(txCtx, appt.ID, req.Date, req.StartTime); err != nil {
			uc.logger.Error("RescheduleAppointment: failed to update schedule: %v", err)
			return fmt.Errorf("%w: failed to update schedule: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleAppointment: successfully rescheduled appointment id=%d to %s %s",
		appt.ID, req.Date.Format(domain.DateFormat), req.StartTime)

	return &Response{
		ID:              appt.ID,
		ClientID:        appt.ClientID,
		ProfessionalID:  appt.ProfessionalID,
		ServiceID:       appt.ServiceID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: appt.DurationMinutes,
		Status:          string(appt.Status),
		ServiceName:     appt.ServiceName,
		ServicePrice:    appt.ServicePrice,
		ClientName:      appt.ClientName,
		Notes:           appt.Notes,
	}, nil
}

// checkAccess проверяет, что пользователь является клиентом записи или её мастером
func (uc *UseCase) checkAccess(ctx context.Context, userID int64, appt *domain.Appointment) error {
	cl, err := uc.clientRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, clientRepo.ErrClientNotFound) {
		uc.logger.Error("RescheduleAppointment: failed to get client for user id=%d: %v", userID, err)
		return fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	if cl != nil && cl.ID == appt.ClientID {
		return nil
	}

	prof, err := uc.professionalRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
		uc.logger.Error("RescheduleAppointment: failed to get professional for user id=%d: %v", userID, err)
		return fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	if prof != nil && prof.ID == appt.ProfessionalID {
		return nil
	}

	uc.logger.Warn("RescheduleAppointment: user id=%d has no access to appointment id=%d", userID, appt.ID)
	return ErrAccessDenied
}
