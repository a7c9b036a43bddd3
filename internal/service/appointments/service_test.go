package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvlasova/Salon-SchedulingService/internal/domain"
	appointmentRepo "github.com/anvlasova/Salon-SchedulingService/internal/infra/storage/appointment"
	clientRepo "github.com/anvlasova/Salon-SchedulingService/internal/infra/storage/client"
	professionalRepo "github.com/anvlasova/Salon-SchedulingService/internal/infra/storage/professional"
	"github.com/anvlasova/Salon-SchedulingService/internal/service/appointments/models"
	"github.com/anvlasova/Salon-SchedulingService/pkg/types"
)

// --- Моки зависимостей ---

type mockAppointmentRepo struct {
	getByIDFn                     func(ctx context.Context, id int64) (*domain.Appointment, error)
	getByClientIDFn               func(ctx context.Context, clientID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error)
	getByProfessionalWithFilterFn func(ctx context.Context, filter domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error)
	updateStatusFn                func(ctx context.Context, id int64, status domain.AppointmentStatus) error
	cancelFn                      func(ctx context.Context, id int64, status domain.AppointmentStatus, reason string) error
}

func (m *mockAppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockAppointmentRepo) GetByClientID(ctx context.Context, clientID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	return m.getByClientIDFn(ctx, clientID, status)
}

func (m *mockAppointmentRepo) GetByProfessionalWithFilter(ctx context.Context, filter domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error) {
	return m.getByProfessionalWithFilterFn(ctx, filter)
}

func (m *mockAppointmentRepo) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	return m.updateStatusFn(ctx, id, status)
}

func (m *mockAppointmentRepo) Cancel(ctx context.Context, id int64, status domain.AppointmentStatus, reason string) error {
	return m.cancelFn(ctx, id, status, reason)
}

type mockClientRepo struct {
	getByIDFn     func(ctx context.Context, id int64) (*domain.Client, error)
	getByUserIDFn func(ctx context.Context, userID int64) (*domain.Client, error)
}

func (m *mockClientRepo) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockClientRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Client, error) {
	return m.getByUserIDFn(ctx, userID)
}

type mockProfessionalRepo struct {
	getByUserIDFn func(ctx context.Context, userID int64) (*domain.Professional, error)
}

func (m *mockProfessionalRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Professional, error) {
	return m.getByUserIDFn(ctx, userID)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// --- Фикстуры ---

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

// Запись клиента (user 1, client 5) к мастеру 7 (user 70)
func testAppointment(t *testing.T) *domain.Appointment {
	return &domain.Appointment{
		ID:              42,
		ClientID:        5,
		ProfessionalID:  7,
		ServiceID:       3,
		Date:            time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		StartTime:       mustTime(t, "10:00"),
		DurationMinutes: 30,
		Status:          domain.StatusScheduled,
		ServiceName:     "Стрижка",
		ServicePrice:    1500,
	}
}

type testDeps struct {
	appointments  *mockAppointmentRepo
	clients       *mockClientRepo
	professionals *mockProfessionalRepo
}

func defaultDeps(t *testing.T) *testDeps {
	return &testDeps{
		appointments: &mockAppointmentRepo{
			getByIDFn: func(ctx context.Context, id int64) (*domain.Appointment, error) {
				return testAppointment(t), nil
			},
		},
		clients: &mockClientRepo{
			getByIDFn: func(ctx context.Context, id int64) (*domain.Client, error) {
				return &domain.Client{ID: 5, UserID: 1, FullName: "Иван Петров"}, nil
			},
			getByUserIDFn: func(ctx context.Context, userID int64) (*domain.Client, error) {
				if userID == 1 {
					return &domain.Client{ID: 5, UserID: 1, FullName: "Иван Петров"}, nil
				}
				return nil, clientRepo.ErrClientNotFound
			},
		},
		professionals: &mockProfessionalRepo{
			getByUserIDFn: func(ctx context.Context, userID int64) (*domain.Professional, error) {
				if userID == 70 {
					return &domain.Professional{ID: 7, UserID: 70, IsActive: true}, nil
				}
				return nil, professionalRepo.ErrProfessionalNotFound
			},
		},
	}
}

func newTestService(deps *testDeps) *Service {
	return NewService(deps.appointments, deps.clients, deps.professionals, nopLogger{})
}

// --- GetByID ---

func TestService_GetByID(t *testing.T) {
	t.Run("client sees own appointment", func(t *testing.T) {
		svc := newTestService(defaultDeps(t))

		resp, err := svc.GetByID(context.Background(), 42, 1)
		require.NoError(t, err)

		assert.Equal(t, int64(42), resp.ID)
		assert.Equal(t, "2026-09-10", resp.Date)
		assert.Equal(t, "10:00", resp.StartTime)
		assert.Equal(t, "10:30", resp.EndTime)
		assert.Equal(t, "scheduled", resp.Status)
	})

	t.Run("professional sees own appointment", func(t *testing.T) {
		svc := newTestService(defaultDeps(t))

		_, err := svc.GetByID(context.Background(), 42, 70)
		assert.NoError(t, err)
	})

	t.Run("stranger gets access denied", func(t *testing.T) {
		svc := newTestService(defaultDeps(t))

		_, err := svc.GetByID(context.Background(), 42, 999)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("not found", func(t *testing.T) {
		deps := defaultDeps(t)
		deps.appointments.getByIDFn = func(ctx context.Context, id int64) (*domain.Appointment, error) {
			return nil, appointmentRepo.ErrAppointmentNotFound
		}
		svc := newTestService(deps)

		_, err := svc.GetByID(context.Background(), 42, 1)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

// --- GetClientAppointments ---

func TestService_GetClientAppointments(t *testing.T) {
	t.Run("own history", func(t *testing.T) {
		deps := defaultDeps(t)
		deps.appointments.getByClientIDFn = func(ctx context.Context, clientID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
			assert.Equal(t, int64(5), clientID)
			assert.Nil(t, status)
			return []*domain.Appointment{testAppointment(t)}, nil
		}
		svc := newTestService(deps)

		resp, err := svc.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{
			UserID:   1,
			ClientID: 5,
		})
		require.NoError(t, err)
		require.Len(t, resp.Appointments, 1)
		assert.Equal(t, int64(42), resp.Appointments[0].ID)
	})

	t.Run("status filter is passed through", func(t *testing.T) {
		deps := defaultDeps(t)
		deps.appointments.getByClientIDFn = func(ctx context.Context, clientID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
			require.NotNil(t, status)
			assert.Equal(t, domain.StatusCompleted, *status)
			return nil, nil
		}
		svc := newTestService(deps)

		statusStr := "completed"
		resp, err := svc.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{
			UserID:   1,
			ClientID: 5,
			Status:   &statusStr,
		})
		require.NoError(t, err)
		assert.Empty(t, resp.Appointments)
	})

	t.Run("invalid status", func(t *testing.T) {
		svc := newTestService(defaultDeps(t))

		statusStr := "done"
		_, err := svc.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{
			UserID:   1,
			ClientID: 5,
			Status:   &statusStr,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("foreign history is denied", func(t *testing.T) {
		svc := newTestService(defaultDeps(t))

		_, err := svc.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{
			UserID:   2,
			ClientID: 5,
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("client not found", func(t *testing.T) {
		deps := defaultDeps(t)
		deps.clients.getByIDFn = func(ctx context.Context, id int64) (*domain.Client, error) {
			return nil, clientRepo.ErrClientNotFound
		}
		svc := newTestService(deps)

		_, err := svc.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{
			UserID:   1,
			ClientID: 5,
		})
		assert.ErrorIs(t, err, ErrClientNotFound)
	})
}

// --- GetProfessionalAppointments ---

func TestService_GetProfessionalAppointments(t *testing.T) {
	t.Run("own schedule with filter", func(t *testing.T) {
		deps := defaultDeps(t)

		start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

		deps.appointments.getByProfessionalWithFilterFn = func(ctx context.Context, filter domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error) {
			assert.Equal(t, int64(7), filter.ProfessionalID)
			assert.Equal(t, &start, filter.StartDate)
			assert.Equal(t, &end, filter.EndDate)
			assert.True(t, filter.IncludeInactive)
			require.NotNil(t, filter.Status)
			assert.Equal(t, domain.StatusConfirmed, *filter.Status)
			return []*domain.Appointment{testAppointment(t)}, nil
		}
		svc := newTestService(deps)

		statusStr := "confirmed"
		resp, err := svc.GetProfessionalAppointments(context.Background(), &models.GetProfessionalAppointmentsRequest{
			UserID:          70,
			ProfessionalID:  7,
			StartDate:       &start,
			EndDate:         &end,
			Status:          &statusStr,
			IncludeInactive: true,
		})
		require.NoError(t, err)
		assert.Len(t, resp.Appointments, 1)
	})

	t.Run("foreign schedule is denied", func(t *testing.T) {
		svc := newTestService(defaultDeps(t))

		_, err := svc.GetProfessionalAppointments(context.Background(), &models.GetProfessionalAppointmentsRequest{
			UserID:         1,
			ProfessionalID: 7,
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("another professional is denied", func(t *testing.T) {
		deps := defaultDeps(t)
		deps.professionals.getByUserIDFn = func(ctx context.Context, userID int64) (*domain.Professional, error) {
			return &domain.Professional{ID: 8, UserID: 80, IsActive: true}, nil
		}
		svc := newTestService(deps)

		_, err := svc.GetProfessionalAppointments(context.Background(), &models.GetProfessionalAppointmentsRequest{
			UserID:         80,
			ProfessionalID: 7,
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

// --- Cancel ---

func TestService_Cancel(t *testing.T) {
	t.Run("by client sets cancelled_by_client", func(t *testing.T) {
		deps := defaultDeps(t)

		var gotStatus domain.AppointmentStatus
		var gotReason string
		deps.appointments.cancelFn = func(ctx context.Context, id int64, status domain.AppointmentStatus, reason string) error {
			gotStatus = status
			gotReason = reason
			return nil
		}
		svc := newTestService(deps)

		err := svc.Cancel(context.Background(), 42, &models.CancelAppointmentRequest{
			UserID:             1,
			CancellationReason: "не смогу прийти",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelledByClient, gotStatus)
		assert.Equal(t, "не смогу прийти", gotReason)
	})

	t.Run("by professional sets cancelled_by_salon", func(t *testing.T) {
		deps := defaultDeps(t)

		var gotStatus domain.AppointmentStatus
		deps.appointments.cancelFn = func(ctx context.Context, id int64, status domain.AppointmentStatus, reason string) error {
			gotStatus = status
			return nil
		}
		svc := newTestService(deps)

		err := svc.Cancel(context.Background(), 42, &models.CancelAppointmentRequest{UserID: 70})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelledBySalon, gotStatus)
	})

	t.Run("stranger gets access denied", func(t *testing.T) {
		svc := newTestService(defaultDeps(t))

		err := svc.Cancel(context.Background(), 42, &models.CancelAppointmentRequest{UserID: 999})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("already cancelled", func(t *testing.T) {
		deps := defaultDeps(t)
		deps.appointments.getByIDFn = func(ctx context.Context, id int64) (*domain.Appointment, error) {
			appt := testAppointment(t)
			appt.Status = domain.StatusCancelledByClient
			return appt, nil
		}
		svc := newTestService(deps)

		err := svc.Cancel(context.Background(), 42, &models.CancelAppointmentRequest{UserID: 1})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("completed cannot be cancelled", func(t *testing.T) {
		deps := defaultDeps(t)
		deps.appointments.getByIDFn = func(ctx context.Context, id int64) (*domain.Appointment, error) {
			appt := testAppointment(t)
			appt.Status = domain.StatusCompleted
			return appt, nil
		}
		svc := newTestService(deps)

		err := svc.Cancel(context.Background(), 42, &models.CancelAppointmentRequest{UserID: 1})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("not found", func(t *testing.T) {
		deps := defaultDeps(t)
		deps.appointments.getByIDFn = func(ctx context.Context, id int64) (*domain.Appointment, error) {
			return nil, appointmentRepo.ErrAppointmentNotFound
		}
		svc := newTestService(deps)

		err := svc.Cancel(context.Background(), 42, &models.CancelAppointmentRequest{UserID: 1})
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

// --- UpdateStatus ---

func TestService_UpdateStatus(t *testing.T) {
	t.Run("by professional", func(t *testing.T) {
		deps := defaultDeps(t)

		var gotStatus domain.AppointmentStatus
		deps.appointments.updateStatusFn = func(ctx context.Context, id int64, status domain.AppointmentStatus) error {
			gotStatus = status
			return nil
		}
		svc := newTestService(deps)

		err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{
			UserID: 70,
			Status: "confirmed",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, gotStatus)
	})

	t.Run("client cannot update status", func(t *testing.T) {
		svc := newTestService(defaultDeps(t))

		err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{
			UserID: 1,
			Status: "confirmed",
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("invalid status", func(t *testing.T) {
		svc := newTestService(defaultDeps(t))

		err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{
			UserID: 70,
			Status: "finished",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
