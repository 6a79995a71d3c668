package professional

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

const (
	tableName         = "professionals"
	servicesTableName = "professional_services"
)

// Repository репозиторий для работы с мастерами.
// Набор услуг мастера хранится в таблице связей professional_services;
// порядок членства не несет смысла
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория мастеров
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового мастера вместе с набором его услуг.
// Вызывать внутри транзакции (две таблицы должны меняться атомарно)
func (r *Repository) Create(ctx context.Context, prof *domain.Professional) (*domain.Professional, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("id", "name", "photo_url").
		Values(prof.ID, prof.Name, prof.PhotoURL).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	prof.CreatedAt = createdAt.Time
	prof.UpdatedAt = updatedAt.Time

	if err := r.replaceServiceIDs(ctx, prof.ID, prof.ServiceIDs); err != nil {
		return nil, err
	}

	return prof, nil
}

// GetByID получает мастера по ID вместе с набором его услуг
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Professional, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "photo_url", "created_at", "updated_at").
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var prof domain.Professional
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&prof.ID,
		&prof.Name,
		&prof.PhotoURL,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfessionalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan professional: %v", ErrScanRow, err)
	}

	prof.CreatedAt = createdAt.Time
	prof.UpdatedAt = updatedAt.Time

	memberships, err := r.serviceIDsByProfessional(ctx)
	if err != nil {
		return nil, err
	}
	prof.ServiceIDs = memberships[prof.ID]
	if prof.ServiceIDs == nil {
		prof.ServiceIDs = []string{}
	}

	return &prof, nil
}

// List получает всех мастеров с наборами их услуг, отсортированных по имени
func (r *Repository) List(ctx context.Context) ([]*domain.Professional, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "photo_url", "created_at", "updated_at").
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

	professionals := make([]*domain.Professional, 0)

	for rows.Next() {
		var prof domain.Professional
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&prof.ID, &prof.Name, &prof.PhotoURL, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		prof.CreatedAt = createdAt.Time
		prof.UpdatedAt = updatedAt.Time

		professionals = append(professionals, &prof)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	memberships, err := r.serviceIDsByProfessional(ctx)
	if err != nil {
		return nil, err
	}

	for _, prof := range professionals {
		prof.ServiceIDs = memberships[prof.ID]
		if prof.ServiceIDs == nil {
			prof.ServiceIDs = []string{}
		}
	}

	return professionals, nil
}

// Update обновляет мастера и заменяет набор его услуг.
// Вызывать внутри транзакции
func (r *Repository) Update(ctx context.Context, prof *domain.Professional) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("name", prof.Name).
		Set("photo_url", prof.PhotoURL).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": prof.ID}).
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
		return ErrProfessionalNotFound
	}

	return r.replaceServiceIDs(ctx, prof.ID, prof.ServiceIDs)
}

// Delete удаляет мастера вместе со связями услуг (ON DELETE CASCADE)
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
		return ErrProfessionalNotFound
	}

	return nil
}

// replaceServiceIDs заменяет набор услуг мастера (delete + insert)
func (r *Repository) replaceServiceIDs(ctx context.Context, professionalID string, serviceIDs []string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete(servicesTableName).
		Where(squirrel.Eq{"professional_id": professionalID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: replaceServiceIDs - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: replaceServiceIDs - execute delete: %v", ErrExecQuery, err)
	}

	if len(serviceIDs) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert(servicesTableName).
		Columns("professional_id", "service_id")

	for _, serviceID := range serviceIDs {
		insertBuilder = insertBuilder.Values(professionalID, serviceID)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceServiceIDs - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: replaceServiceIDs - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// serviceIDsByProfessional загружает все связи мастер-услуга одним запросом
func (r *Repository) serviceIDsByProfessional(ctx context.Context) (map[string][]string, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("professional_id", "service_id").
		From(servicesTableName).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: serviceIDsByProfessional - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: serviceIDsByProfessional - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	memberships := make(map[string][]string)

	for rows.Next() {
		var professionalID, serviceID string
		if err := rows.Scan(&professionalID, &serviceID); err != nil {
			return nil, fmt.Errorf("%w: serviceIDsByProfessional - scan row: %v", ErrScanRow, err)
		}
		memberships[professionalID] = append(memberships[professionalID], serviceID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: serviceIDsByProfessional - rows error: %v", ErrScanRow, err)
	}

	return memberships, nil
}
