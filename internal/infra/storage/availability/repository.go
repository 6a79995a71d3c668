package availability

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/geekpf/agenda2/internal/domain"
	"github.com/geekpf/agenda2/pkg/psqlbuilder"
	"github.com/geekpf/agenda2/pkg/txmanager"
	"github.com/geekpf/agenda2/pkg/types"
)

const tableName = "weekly_availability"

// Repository репозиторий для работы с недельным расписанием.
// Таблица всегда содержит ровно семь строк, по одной на день недели
// (0=воскресенье .. 6=суббота); строки никогда не вставляются и не удаляются
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll получает все семь шаблонов дней недели по порядку
func (r *Repository) GetAll(ctx context.Context) ([]domain.DayAvailability, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("day_of_week", "enabled", "slots", "updated_at").
		From(tableName).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	days := make([]domain.DayAvailability, 0, domain.DaysPerWeek)

	for rows.Next() {
		day, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}
		days = append(days, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return days, nil
}

// GetByDay получает шаблон для одного дня недели (0-6)
func (r *Repository) GetByDay(ctx context.Context, dayOfWeek int) (*domain.DayAvailability, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("day_of_week", "enabled", "slots", "updated_at").
		From(tableName).
		Where(squirrel.Eq{"day_of_week": dayOfWeek}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("%w: GetByDay - rows error: %v", ErrScanRow, err)
		}
		return nil, ErrDayNotFound
	}

	day, err := scanDay(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDay - scan row: %v", ErrScanRow, err)
	}

	return &day, nil
}

// UpdateDay обновляет флаг и список слотов одного дня недели.
// Список должен быть отвалидирован и отсортирован на уровне сервиса
func (r *Repository) UpdateDay(ctx context.Context, day domain.DayAvailability) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	slots := make([]string, len(day.Slots))
	for i, s := range day.Slots {
		slots[i] = s.String()
	}

	query, args, err := psqlbuilder.Update(tableName).
		Set("enabled", day.Enabled).
		Set("slots", pq.Array(slots)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"day_of_week": day.DayOfWeek}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateDay - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateDay - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateDay - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDayNotFound
	}

	return nil
}

func scanDay(rows *sql.Rows) (domain.DayAvailability, error) {
	var day domain.DayAvailability
	var slots []string
	var updatedAt sql.NullTime

	if err := rows.Scan(&day.DayOfWeek, &day.Enabled, pq.Array(&slots), &updatedAt); err != nil {
		return domain.DayAvailability{}, err
	}

	day.Slots = make([]types.TimeString, len(slots))
	for i, s := range slots {
		day.Slots[i] = types.TimeString(s)
	}
	day.UpdatedAt = updatedAt.Time

	return day, nil
}
