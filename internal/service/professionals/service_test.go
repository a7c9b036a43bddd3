package professionals

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvlasova/Salon-SchedulingService/internal/domain"
	professionalRepo "github.com/anvlasova/Salon-SchedulingService/internal/infra/storage/professional"
	"github.com/anvlasova/Salon-SchedulingService/internal/service/professionals/models"
)

type mockProfessionalRepo struct {
	getByIDFn            func(ctx context.Context, id int64) (*domain.Professional, error)
	getByUserIDFn        func(ctx context.Context, userID int64) (*domain.Professional, error)
	updateWorkingHoursFn func(ctx context.Context, id int64, workStart, workEnd, lunchStart, lunchEnd *string) error
}

func (m *mockProfessionalRepo) GetByID(ctx context.Context, id int64) (*domain.Professional, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockProfessionalRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Professional, error) {
	return m.getByUserIDFn(ctx, userID)
}

func (m *mockProfessionalRepo) UpdateWorkingHours(ctx context.Context, id int64, workStart, workEnd, lunchStart, lunchEnd *string) error {
	return m.updateWorkingHoursFn(ctx, id, workStart, workEnd, lunchStart, lunchEnd)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func strPtr(s string) *string {
	return &s
}

func testProfessional() *domain.Professional {
	return &domain.Professional{
		ID:            7,
		UserID:        70,
		FullName:      "Анна Мастерова",
		Specialty:     strPtr("парикмахер"),
		WorkStartTime: strPtr("09:00"),
		WorkEndTime:   strPtr("18:00"),
		IsActive:      true,
	}
}

func defaultRepo() *mockProfessionalRepo {
	return &mockProfessionalRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Professional, error) {
			return testProfessional(), nil
		},
		updateWorkingHoursFn: func(ctx context.Context, id int64, workStart, workEnd, lunchStart, lunchEnd *string) error {
			return nil
		},
	}
}

func TestService_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := NewService(defaultRepo(), nopLogger{})

		resp, err := svc.GetByID(context.Background(), 7)
		require.NoError(t, err)

		assert.Equal(t, int64(7), resp.ID)
		assert.Equal(t, "Анна Мастерова", resp.FullName)
		require.NotNil(t, resp.WorkStartTime)
		assert.Equal(t, "09:00", *resp.WorkStartTime)
		assert.Nil(t, resp.LunchStartTime)
	})

	t.Run("not found", func(t *testing.T) {
		repo := defaultRepo()
		repo.getByIDFn = func(ctx context.Context, id int64) (*domain.Professional, error) {
			return nil, professionalRepo.ErrProfessionalNotFound
		}
		svc := NewService(repo, nopLogger{})

		_, err := svc.GetByID(context.Background(), 7)
		assert.ErrorIs(t, err, ErrProfessionalNotFound)
	})
}

func TestService_UpdateWorkingHours(t *testing.T) {
	t.Run("full schedule with lunch", func(t *testing.T) {
		repo := defaultRepo()

		var gotLunchStart, gotLunchEnd *string
		repo.updateWorkingHoursFn = func(ctx context.Context, id int64, workStart, workEnd, lunchStart, lunchEnd *string) error {
			assert.Equal(t, int64(7), id)
			assert.Equal(t, "10:00", *workStart)
			assert.Equal(t, "19:00", *workEnd)
			gotLunchStart = lunchStart
			gotLunchEnd = lunchEnd
			return nil
		}
		svc := NewService(repo, nopLogger{})

		resp, err := svc.UpdateWorkingHours(context.Background(), 7, &models.UpdateWorkingHoursRequest{
			UserID:         70,
			WorkStartTime:  strPtr("10:00"),
			WorkEndTime:    strPtr("19:00"),
			LunchStartTime: strPtr("13:00"),
			LunchEndTime:   strPtr("14:00"),
		})
		require.NoError(t, err)

		require.NotNil(t, gotLunchStart)
		assert.Equal(t, "13:00", *gotLunchStart)
		require.NotNil(t, gotLunchEnd)
		assert.Equal(t, "14:00", *gotLunchEnd)

		// Ответ содержит обновлённый график
		require.NotNil(t, resp.WorkStartTime)
		assert.Equal(t, "10:00", *resp.WorkStartTime)
		require.NotNil(t, resp.LunchStartTime)
		assert.Equal(t, "13:00", *resp.LunchStartTime)
	})

	t.Run("removing lunch", func(t *testing.T) {
		repo := defaultRepo()
		svc := NewService(repo, nopLogger{})

		resp, err := svc.UpdateWorkingHours(context.Background(), 7, &models.UpdateWorkingHoursRequest{
			UserID:        70,
			WorkStartTime: strPtr("09:00"),
			WorkEndTime:   strPtr("18:00"),
		})
		require.NoError(t, err)
		assert.Nil(t, resp.LunchStartTime)
		assert.Nil(t, resp.LunchEndTime)
	})

	t.Run("foreign user is denied", func(t *testing.T) {
		svc := NewService(defaultRepo(), nopLogger{})

		_, err := svc.UpdateWorkingHours(context.Background(), 7, &models.UpdateWorkingHoursRequest{
			UserID:        999,
			WorkStartTime: strPtr("09:00"),
			WorkEndTime:   strPtr("18:00"),
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("not found", func(t *testing.T) {
		repo := defaultRepo()
		repo.getByIDFn = func(ctx context.Context, id int64) (*domain.Professional, error) {
			return nil, professionalRepo.ErrProfessionalNotFound
		}
		svc := NewService(repo, nopLogger{})

		_, err := svc.UpdateWorkingHours(context.Background(), 7, &models.UpdateWorkingHoursRequest{
			UserID:        70,
			WorkStartTime: strPtr("09:00"),
			WorkEndTime:   strPtr("18:00"),
		})
		assert.ErrorIs(t, err, ErrProfessionalNotFound)
	})

	t.Run("validation", func(t *testing.T) {
		svc := NewService(defaultRepo(), nopLogger{})

		tests := []struct {
			name string
			req  *models.UpdateWorkingHoursRequest
		}{
			{
				name: "missing work end",
				req: &models.UpdateWorkingHoursRequest{
					UserID:        70,
					WorkStartTime: strPtr("09:00"),
				},
			},
			{
				name: "malformed work start",
				req: &models.UpdateWorkingHoursRequest{
					UserID:        70,
					WorkStartTime: strPtr("9am"),
					WorkEndTime:   strPtr("18:00"),
				},
			},
			{
				name: "inverted work window",
				req: &models.UpdateWorkingHoursRequest{
					UserID:        70,
					WorkStartTime: strPtr("18:00"),
					WorkEndTime:   strPtr("09:00"),
				},
			},
			{
				name: "one-sided lunch",
				req: &models.UpdateWorkingHoursRequest{
					UserID:         70,
					WorkStartTime:  strPtr("09:00"),
					WorkEndTime:    strPtr("18:00"),
					LunchStartTime: strPtr("12:00"),
				},
			},
			{
				name: "inverted lunch",
				req: &models.UpdateWorkingHoursRequest{
					UserID:         70,
					WorkStartTime:  strPtr("09:00"),
					WorkEndTime:    strPtr("18:00"),
					LunchStartTime: strPtr("14:00"),
					LunchEndTime:   strPtr("13:00"),
				},
			},
			{
				name: "lunch outside working hours",
				req: &models.UpdateWorkingHoursRequest{
					UserID:         70,
					WorkStartTime:  strPtr("09:00"),
					WorkEndTime:    strPtr("18:00"),
					LunchStartTime: strPtr("08:00"),
					LunchEndTime:   strPtr("09:30"),
				},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.UpdateWorkingHours(context.Background(), 7, tt.req)
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})
}
