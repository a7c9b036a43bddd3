package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvlasova/Salon-SchedulingService/internal/domain"
	professionalRepo "github.com/anvlasova/Salon-SchedulingService/internal/infra/storage/professional"
	serviceRepo "github.com/anvlasova/Salon-SchedulingService/internal/infra/storage/service"
)

// --- Моки зависимостей ---

type mockAppointmentRepo struct {
	getByProfessionalWithFilterFn func(ctx context.Context, filter domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error)
}

func (m *mockAppointmentRepo) GetByProfessionalWithFilter(ctx context.Context, filter domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error) {
	return m.getByProfessionalWithFilterFn(ctx, filter)
}

type mockProfessionalRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Professional, error)
}

func (m *mockProfessionalRepo) GetByID(ctx context.Context, id int64) (*domain.Professional, error) {
	return m.getByIDFn(ctx, id)
}

type mockServiceRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.SalonService, error)
}

func (m *mockServiceRepo) GetByID(ctx context.Context, id int64) (*domain.SalonService, error) {
	return m.getByIDFn(ctx, id)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// --- Фикстуры ---

func activeProfessional() *domain.Professional {
	return &domain.Professional{
		ID:            7,
		UserID:        70,
		FullName:      "Анна Мастерова",
		WorkStartTime: strPtr("09:00"),
		WorkEndTime:   strPtr("18:00"),
		IsActive:      true,
	}
}

func activeService() *domain.SalonService {
	return &domain.SalonService{
		ID:              3,
		Name:            "Стрижка",
		Price:           1500,
		DurationMinutes: 30,
		IsActive:        true,
	}
}

func newTestUseCase(
	appointments *mockAppointmentRepo,
	professionals *mockProfessionalRepo,
	services *mockServiceRepo,
	now time.Time,
) *UseCase {
	uc := NewUseCase(appointments, professionals, services, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		UserID:         1,
		ProfessionalID: 7,
		ServiceID:      3,
		Date:           time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestUseCase_Execute_Available(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	appointments := &mockAppointmentRepo{
		getByProfessionalWithFilterFn: func(ctx context.Context, filter domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error) {
			assert.Equal(t, int64(7), filter.ProfessionalID)
			assert.False(t, filter.IncludeInactive)
			require.NotNil(t, filter.StartDate)
			require.NotNil(t, filter.EndDate)
			return nil, nil
		},
	}
	professionals := &mockProfessionalRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Professional, error) {
			return activeProfessional(), nil
		},
	}
	services := &mockServiceRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.SalonService, error) {
			return activeService(), nil
		},
	}

	uc := newTestUseCase(appointments, professionals, services, now)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, AvailabilityOK, resp.Status)
	// Окно 09:00-18:00, услуга 30 минут: все 18 кандидатов доступны
	assert.Len(t, resp.Slots, 18)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "17:30", resp.Slots[17].StartTime.String())
}

func TestUseCase_Execute_BookedSlotExcluded(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	appointments := &mockAppointmentRepo{
		getByProfessionalWithFilterFn: func(ctx context.Context, filter domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error) {
			return []*domain.Appointment{
				{
					ID:              1,
					ProfessionalID:  7,
					Date:            date,
					StartTime:       mustTime(t, "10:00"),
					DurationMinutes: 30,
					Status:          domain.StatusScheduled,
				},
			}, nil
		},
	}
	professionals := &mockProfessionalRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Professional, error) {
			return activeProfessional(), nil
		},
	}
	services := &mockServiceRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.SalonService, error) {
			return activeService(), nil
		},
	}

	uc := newTestUseCase(appointments, professionals, services, now)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, AvailabilityOK, resp.Status)
	assert.Len(t, resp.Slots, 17)
	for _, s := range resp.Slots {
		assert.NotEqual(t, "10:00", s.StartTime.String())
	}
}

func TestUseCase_Execute_NoSchedule(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	professionals := &mockProfessionalRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Professional, error) {
			return &domain.Professional{ID: 7, IsActive: true}, nil
		},
	}
	services := &mockServiceRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.SalonService, error) {
			return activeService(), nil
		},
	}
	// До репозитория записей дело дойти не должно
	appointments := &mockAppointmentRepo{
		getByProfessionalWithFilterFn: func(ctx context.Context, filter domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error) {
			t.Fatal("appointment repository must not be called when schedule is missing")
			return nil, nil
		},
	}

	uc := newTestUseCase(appointments, professionals, services, now)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, AvailabilityNoSchedule, resp.Status)
	assert.Empty(t, resp.Slots)
	assert.NotNil(t, resp.Slots)
}

func TestUseCase_Execute_NoSlots(t *testing.T) {
	// График задан, но всё окно занято одной длинной записью
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	prof := activeProfessional()
	prof.WorkStartTime = strPtr("09:00")
	prof.WorkEndTime = strPtr("10:00")

	appointments := &mockAppointmentRepo{
		getByProfessionalWithFilterFn: func(ctx context.Context, filter domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error) {
			return []*domain.Appointment{
				{
					ID:              1,
					ProfessionalID:  7,
					Date:            date,
					StartTime:       mustTime(t, "09:00"),
					DurationMinutes: 60,
					Status:          domain.StatusConfirmed,
				},
			}, nil
		},
	}
	professionals := &mockProfessionalRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Professional, error) {
			return prof, nil
		},
	}
	services := &mockServiceRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.SalonService, error) {
			return activeService(), nil
		},
	}

	uc := newTestUseCase(appointments, professionals, services, now)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, AvailabilityNoSlots, resp.Status)
	assert.Empty(t, resp.Slots)
}

func TestUseCase_Execute_ProfessionalNotFound(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	professionals := &mockProfessionalRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Professional, error) {
			return nil, professionalRepo.ErrProfessionalNotFound
		},
	}

	uc := newTestUseCase(&mockAppointmentRepo{}, professionals, &mockServiceRepo{}, now)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestUseCase_Execute_InactiveProfessional(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	prof := activeProfessional()
	prof.IsActive = false

	professionals := &mockProfessionalRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Professional, error) {
			return prof, nil
		},
	}

	uc := newTestUseCase(&mockAppointmentRepo{}, professionals, &mockServiceRepo{}, now)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestUseCase_Execute_ServiceNotFound(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	professionals := &mockProfessionalRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Professional, error) {
			return activeProfessional(), nil
		},
	}
	services := &mockServiceRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.SalonService, error) {
			return nil, serviceRepo.ErrServiceNotFound
		},
	}

	uc := newTestUseCase(&mockAppointmentRepo{}, professionals, services, now)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUseCase_Execute_InvalidServiceDuration(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	svc := activeService()
	svc.DurationMinutes = 0

	professionals := &mockProfessionalRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Professional, error) {
			return activeProfessional(), nil
		},
	}
	services := &mockServiceRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.SalonService, error) {
			return svc, nil
		},
	}

	uc := newTestUseCase(&mockAppointmentRepo{}, professionals, services, now)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInvalidServiceDuration)
}

func TestUseCase_Execute_RepositoryFailure(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	appointments := &mockAppointmentRepo{
		getByProfessionalWithFilterFn: func(ctx context.Context, filter domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error) {
			return nil, errors.New("connection refused")
		},
	}
	professionals := &mockProfessionalRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Professional, error) {
			return activeProfessional(), nil
		},
	}
	services := &mockServiceRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.SalonService, error) {
			return activeService(), nil
		},
	}

	uc := newTestUseCase(appointments, professionals, services, now)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&mockAppointmentRepo{}, &mockProfessionalRepo{}, &mockServiceRepo{}, now)

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{name: "zero professional id", mutate: func(req *Request) { req.ProfessionalID = 0 }},
		{name: "negative service id", mutate: func(req *Request) { req.ServiceID = -1 }},
		{name: "zero date", mutate: func(req *Request) { req.Date = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
