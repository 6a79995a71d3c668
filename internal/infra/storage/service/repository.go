package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/geekpf/agenda2/internal/domain"
	"github.com/geekpf/agenda2/pkg/psqlbuilder"
	"github.com/geekpf/agenda2/pkg/txmanager"
)

const tableName = "services"

var selectColumns = []string{
	"id",
	"name",
	"price",
	"duration_minutes",
	"pix_key",
	"pix_qr_code",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с каталогом услуг
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую услугу. ID назначается вызывающей стороной
func (r *Repository) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("id", "name", "price", "duration_minutes", "pix_key", "pix_qr_code").
		Values(svc.ID, svc.Name, svc.Price, svc.DurationMinutes, svc.PixKey, svc.PixQRCode).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	svc.CreatedAt = createdAt.Time
	svc.UpdatedAt = updatedAt.Time

	return svc, nil
}

// GetByID получает услугу по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var svc domain.Service
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID,
		&svc.Name,
		&svc.Price,
		&svc.DurationMinutes,
		&svc.PixKey,
		&svc.PixQRCode,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	svc.CreatedAt = createdAt.Time
	svc.UpdatedAt = updatedAt.Time

	return &svc, nil
}

// List получает все услуги, отсортированные по названию
func (r *Repository) List(ctx context.Context) ([]*domain.Service, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From(tableName).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)

	for rows.Next() {
		var svc domain.Service
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&svc.ID,
			&svc.Name,
			&svc.Price,
			&svc.DurationMinutes,
			&svc.PixKey,
			&svc.PixQRCode,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		svc.CreatedAt = createdAt.Time
		svc.UpdatedAt = updatedAt.Time

		services = append(services, &svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// Update обновляет услугу целиком
func (r *Repository) Update(ctx context.Context, svc *domain.Service) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("name", svc.Name).
		Set("price", svc.Price).
		Set("duration_minutes", svc.DurationMinutes).
		Set("pix_key", svc.PixKey).
		Set("pix_qr_code", svc.PixQRCode).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": svc.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

// Delete удаляет услугу. Политика блокировки (услуга с активными записями
// не удаляется) применяется на уровне сервиса каталога
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}
