package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/anvlasova/Salon-SchedulingService/internal/domain"
	"github.com/anvlasova/Salon-SchedulingService/pkg/dbmetrics"
	"github.com/anvlasova/Salon-SchedulingService/pkg/psqlbuilder"
)

var clientColumns = []string{
	"id",
	"user_id",
	"full_name",
	"phone",
	"email",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с клиентами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByUserID получает клиента по ID пользователя
func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*domain.Client, error) {
	return r.getOne(ctx, squirrel.Eq{"user_id": userID}, "GetByUserID")
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, op string) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(clientColumns...).
		From("clients").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var c domain.Client
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.UserID,
		&c.FullName,
		&c.Phone,
		&c.Email,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan client: %v", ErrScanRow, op, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}
