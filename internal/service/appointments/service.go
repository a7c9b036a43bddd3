package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/anvlasova/Salon-SchedulingService/internal/domain"
	appointmentRepo "github.com/anvlasova/Salon-SchedulingService/internal/infra/storage/appointment"
	clientRepo "github.com/anvlasova/Salon-SchedulingService/internal/infra/storage/client"
	professionalRepo "github.com/anvlasova/Salon-SchedulingService/internal/infra/storage/professional"
	"github.com/anvlasova/Salon-SchedulingService/internal/service/appointments/models"
)

// Service сервис для работы с записями к мастерам
type Service struct {
	appointmentRepo  AppointmentRepository
	clientRepo       ClientRepository
	professionalRepo ProfessionalRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	clientRepo ClientRepository,
	professionalRepo ProfessionalRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo:  appointmentRepo,
		clientRepo:       clientRepo,
		professionalRepo: professionalRepo,
		logger:           logger,
	}
}

// GetByID получает запись по ID
// Проверяет права доступа - запись видят только её клиент и её мастер
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, userID)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(ctx, appt, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appt), nil
}

// GetClientAppointments получает историю записей клиента
// Клиент может видеть только собственную историю
// Опционально фильтрует по статусу
func (s *Service) GetClientAppointments(ctx context.Context, req *models.GetClientAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetClientAppointments: fetching appointments for client=%d, user=%d, status=%v",
		req.ClientID, req.UserID, req.Status)

	// Получаем клиента и проверяем, что запрашивает он сам
	cl, err := s.clientRepo.GetByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("GetClientAppointments: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetClientAppointments: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientAppointments - failed to get client: %v", ErrInternal, err)
	}

	if cl.UserID != req.UserID {
		s.logger.Warn("GetClientAppointments: user=%d has no access to client=%d history", req.UserID, req.ClientID)
		return nil, ErrAccessDenied
	}

	// Конвертируем статус из строки в domain.AppointmentStatus
	var domainStatus *domain.AppointmentStatus
	if req.Status != nil {
		status, err := models.ToDomainAppointmentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetClientAppointments: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	appointments, err := s.appointmentRepo.GetByClientID(ctx, cl.ID, domainStatus)
	if err != nil {
		s.logger.Error("GetClientAppointments: repository error for client=%d: %v", cl.ID, err)
		return nil, fmt.Errorf("%w: GetClientAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientAppointments: successfully fetched %d appointments for client=%d", len(appointments), cl.ID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetProfessionalAppointments получает расписание мастера с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению неактивных записей
// Доступно только самому мастеру
//
// Примеры использования:
// - Все активные записи: GetProfessionalAppointments(ctx, &GetProfessionalAppointmentsRequest{ProfessionalID: 123, UserID: 456})
// - Записи на дату: StartDate и EndDate указывают на одну дату
// - Записи за период: StartDate и EndDate указывают на разные даты
// - Только подтверждённые: указать Status = "confirmed"
// - Включая отменённые: IncludeInactive = true
func (s *Service) GetProfessionalAppointments(ctx context.Context, req *models.GetProfessionalAppointmentsRequest) (*models.AppointmentListResponse, error) {
	// Логируем запрос с деталями фильтрации
	logMsg := fmt.Sprintf("GetProfessionalAppointments: fetching appointments for professional=%d, user=%d", req.ProfessionalID, req.UserID)
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	// Проверяем права доступа мастера
	if err := s.checkProfessionalAccess(ctx, req.ProfessionalID, req.UserID); err != nil {
		return nil, err
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetProfessionalAppointments: invalid filter for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	// Получаем записи с фильтрацией
	appointments, err := s.appointmentRepo.GetByProfessionalWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetProfessionalAppointments: repository error for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: GetProfessionalAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetProfessionalAppointments: successfully fetched %d appointments for professional=%d", len(appointments), req.ProfessionalID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись
// Клиент может отменить только свою запись (cancelled_by_client)
// Мастер может отменить любую свою запись (cancelled_by_salon)
func (s *Service) Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d by user=%d", appointmentID, req.UserID)

	// Получаем запись
	appt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить запись
	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", appointmentID, appt.Status)
		return ErrCannotCancel
	}

	// Определяем статус отмены в зависимости от прав доступа
	var cancelStatus domain.AppointmentStatus

	// Проверяем, является ли пользователь клиентом записи
	isOwner, err := s.isAppointmentOwner(ctx, appt, req.UserID)
	if err != nil {
		return err
	}

	if isOwner {
		cancelStatus = domain.StatusCancelledByClient
	} else {
		// Проверяем, является ли пользователь мастером записи
		if err := s.checkProfessionalAccess(ctx, appt.ProfessionalID, req.UserID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to cancel appointment id=%d", req.UserID, appointmentID)
			return ErrAccessDenied
		}
		cancelStatus = domain.StatusCancelledBySalon
	}

	// Отменяем запись
	if err := s.appointmentRepo.Cancel(ctx, appointmentID, cancelStatus, req.CancellationReason); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found during cancellation", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d with status=%s", appointmentID, cancelStatus)
	return nil
}

// UpdateStatus обновляет статус записи
// Доступно только мастеру записи
func (s *Service) UpdateStatus(ctx context.Context, appointmentID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s by user=%d",
		appointmentID, req.Status, req.UserID)

	// Получаем запись
	appt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа (только мастер записи)
	if err := s.checkProfessionalAccess(ctx, appt.ProfessionalID, req.UserID); err != nil {
		return err
	}

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainAppointmentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, appointmentID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	// Обновляем статус
	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, newStatus); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found during update", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%d to status=%s", appointmentID, newStatus)
	return nil
}

// Вспомогательные методы

// checkUserAccess проверяет, что пользователь имеет доступ к записи
// Запись видят её клиент и её мастер
func (s *Service) checkUserAccess(ctx context.Context, appt *domain.Appointment, userID int64) error {
	isOwner, err := s.isAppointmentOwner(ctx, appt, userID)
	if err != nil {
		return err
	}

	if isOwner {
		return nil
	}

	// Проверяем, является ли пользователь мастером записи
	if err := s.checkProfessionalAccess(ctx, appt.ProfessionalID, userID); err != nil {
		// Ошибка уже залогирована в checkProfessionalAccess
		return ErrAccessDenied
	}

	return nil
}

// isAppointmentOwner проверяет, что пользователь является клиентом записи
func (s *Service) isAppointmentOwner(ctx context.Context, appt *domain.Appointment, userID int64) (bool, error) {
	cl, err := s.clientRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			return false, nil
		}
		s.logger.Error("isAppointmentOwner: failed to get client for user=%d: %v", userID, err)
		return false, fmt.Errorf("%w: isAppointmentOwner - failed to get client: %v", ErrInternal, err)
	}

	return cl.ID == appt.ClientID, nil
}

// checkProfessionalAccess проверяет, что пользователь является указанным мастером
func (s *Service) checkProfessionalAccess(ctx context.Context, professionalID int64, userID int64) error {
	prof, err := s.professionalRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			s.logger.Warn("checkProfessionalAccess: user=%d is not a professional", userID)
			return ErrAccessDenied
		}
		s.logger.Error("checkProfessionalAccess: failed to get professional for user=%d: %v", userID, err)
		return fmt.Errorf("%w: checkProfessionalAccess - failed to get professional: %v", ErrInternal, err)
	}

	if prof.ID != professionalID {
		s.logger.Warn("checkProfessionalAccess: user=%d is not professional=%d", userID, professionalID)
		return ErrAccessDenied
	}

	return nil
}
