package professional

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/anvlasova/Salon-SchedulingService/internal/domain"
	"github.com/anvlasova/Salon-SchedulingService/pkg/dbmetrics"
	"github.com/anvlasova/Salon-SchedulingService/pkg/psqlbuilder"
)

var professionalColumns = []string{
	"id",
	"user_id",
	"full_name",
	"specialty",
	"work_start_time",
	"work_end_time",
	"lunch_start_time",
	"lunch_end_time",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с мастерами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория мастеров
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает мастера по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Professional, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByUserID получает мастера по ID пользователя
func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*domain.Professional, error) {
	return r.getOne(ctx, squirrel.Eq{"user_id": userID}, "GetByUserID")
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, op string) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(professionalColumns...).
		From("professionals").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var prof domain.Professional
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&prof.ID,
		&prof.UserID,
		&prof.FullName,
		&prof.Specialty,
		&prof.WorkStartTime,
		&prof.WorkEndTime,
		&prof.LunchStartTime,
		&prof.LunchEndTime,
		&prof.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrProfessionalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan professional: %v", ErrScanRow, op, err)
	}

	prof.CreatedAt = createdAt.Time
	prof.UpdatedAt = updatedAt.Time

	return &prof, nil
}

// UpdateWorkingHours обновляет график работы мастера.
// NULL в work_start_time/work_end_time означает, что график не задан.
func (r *Repository) UpdateWorkingHours(ctx context.Context, id int64, workStart, workEnd, lunchStart, lunchEnd *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("professionals").
		Set("work_start_time", workStart).
		Set("work_end_time", workEnd).
		Set("lunch_start_time", lunchStart).
		Set("lunch_end_time", lunchEnd).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateWorkingHours - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateWorkingHours - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateWorkingHours - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrProfessionalNotFound
	}

	return nil
}
