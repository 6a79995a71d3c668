package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/geekpf/agenda2/internal/domain"
	"github.com/geekpf/agenda2/pkg/psqlbuilder"
	"github.com/geekpf/agenda2/pkg/txmanager"
)

const tableName = "appointments"

var selectColumns = []string{
	"id",
	"client_name",
	"client_contact",
	"service_id",
	"professional_id",
	"appointment_date",
	"start_time",
	"status",
	"price",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями на услуги
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись. ID назначается вызывающей стороной.
// Если в контексте передана активная транзакция, использует её.
// Частичный уникальный индекс по (professional_id, appointment_date, start_time)
// WHERE status <> 'rejected' превращает конкурентную вставку в ErrSlotTaken
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"id",
			"client_name",
			"client_contact",
			"service_id",
			"professional_id",
			"appointment_date",
			"start_time",
			"status",
			"price",
		).
		Values(
			appt.ID,
			appt.ClientName,
			appt.ClientContact,
			appt.ServiceID,
			appt.ProfessionalID,
			appt.Date,
			appt.StartTime,
			appt.Status,
			appt.Price,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := r.scanOne(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// List получает все записи в хронологическом порядке (дата, затем время)
func (r *Repository) List(ctx context.Context) ([]*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From(tableName).
		OrderBy("appointment_date ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// ListByProfessionalAndDate получает записи мастера на конкретную дату.
// При onlySlotHolding=true возвращаются только записи, удерживающие слот
// (pending и confirmed - отклоненные освобождают слот).
// Внутри транзакции добавляется FOR UPDATE для защиты от гонки при создании
func (r *Repository) ListByProfessionalAndDate(
	ctx context.Context,
	professionalID string,
	date time.Time,
	onlySlotHolding bool,
) ([]*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From(tableName).
		Where(squirrel.Eq{"professional_id": professionalID}).
		Where(squirrel.Eq{"appointment_date": date.Format(domain.DateFormat)}).
		OrderBy("start_time ASC")

	if onlySlotHolding {
		holding := make([]string, len(domain.SlotHoldingStatuses))
		for i, s := range domain.SlotHoldingStatuses {
			holding[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": holding})
	}

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProfessionalAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProfessionalAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// ExistsHoldingForService проверяет, есть ли неотклоненные записи на услугу.
// Используется политикой блокировки удаления услуг
func (r *Repository) ExistsHoldingForService(ctx context.Context, serviceID string) (bool, error) {
	return r.existsHolding(ctx, squirrel.Eq{"service_id": serviceID})
}

// ExistsHoldingForProfessional проверяет, есть ли неотклоненные записи к мастеру
func (r *Repository) ExistsHoldingForProfessional(ctx context.Context, professionalID string) (bool, error) {
	return r.existsHolding(ctx, squirrel.Eq{"professional_id": professionalID})
}

func (r *Repository) existsHolding(ctx context.Context, pred squirrel.Eq) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From(tableName).
		Where(pred).
		Where(squirrel.NotEq{"status": string(domain.StatusRejected)}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: existsHolding - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: existsHolding - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

func (r *Repository) scanOne(row *sql.Row) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.ClientName,
		&appt.ClientContact,
		&appt.ServiceID,
		&appt.ProfessionalID,
		&appt.Date,
		&appt.StartTime,
		&appt.Status,
		&appt.Price,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appt domain.Appointment
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&appt.ID,
			&appt.ClientName,
			&appt.ClientContact,
			&appt.ServiceID,
			&appt.ProfessionalID,
			&appt.Date,
			&appt.StartTime,
			&appt.Status,
			&appt.Price,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		appt.CreatedAt = createdAt.Time
		appt.UpdatedAt = updatedAt.Time

		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
