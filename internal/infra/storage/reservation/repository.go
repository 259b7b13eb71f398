package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CampsiteService/internal/domain"
	"github.com/m04kA/SMC-CampsiteService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CampsiteService/pkg/psqlbuilder"
)

const table = "reservations"

var columns = []string{
	"id",
	"created_at",
	"updated_at",
	"deleted_at",
	"name",
	"email",
	"arrival",
	"departure",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
	qb psqlbuilder.Builder
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor, dialect psqlbuilder.Dialect) *Repository {
	return &Repository{db: db, qb: psqlbuilder.New(dialect)}
}

// GetByID получает бронирование по ID, включая отмененные.
// Внутри транзакции на PostgreSQL строка блокируется (FOR UPDATE) до конца транзакции.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.qb.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) && r.qb.Dialect().SupportsRowLocks() {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return reservation, nil
}

// Save создает бронирование, если ID не задан, иначе обновляет существующее
func (r *Repository) Save(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	if reservation.IsNew() {
		return r.Create(ctx, reservation)
	}
	if err := r.Update(ctx, reservation); err != nil {
		return nil, err
	}
	return reservation, nil
}

// Create создает новое бронирование и проставляет ему ID
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.qb.Insert(table).
		Columns(
			"created_at",
			"updated_at",
			"deleted_at",
			"name",
			"email",
			"arrival",
			"departure",
		).
		Values(
			reservation.CreatedAt.UTC(),
			nullTime(reservation.UpdatedAt),
			nullTime(reservation.DeletedAt),
			reservation.GuestName,
			reservation.GuestEmail,
			formatDate(reservation.Arrival),
			formatDate(reservation.Departure),
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&reservation.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return reservation, nil
}

// Update перезаписывает все изменяемые поля бронирования
func (r *Repository) Update(ctx context.Context, reservation *domain.Reservation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.qb.Update(table).
		Set("updated_at", nullTime(reservation.UpdatedAt)).
		Set("deleted_at", nullTime(reservation.DeletedAt)).
		Set("name", reservation.GuestName).
		Set("email", reservation.GuestEmail).
		Set("arrival", formatDate(reservation.Arrival)).
		Set("departure", formatDate(reservation.Departure)).
		Where(squirrel.Eq{"id": reservation.ID}).
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
		return ErrReservationNotFound
	}

	return nil
}

func scanReservation(row *sql.Row) (*domain.Reservation, error) {
	var (
		reservation          domain.Reservation
		updatedAt, deletedAt sql.NullTime
	)

	err := row.Scan(
		&reservation.ID,
		&reservation.CreatedAt,
		&updatedAt,
		&deletedAt,
		&reservation.GuestName,
		&reservation.GuestEmail,
		&reservation.Arrival,
		&reservation.Departure,
	)
	if err != nil {
		return nil, err
	}

	reservation.Arrival = domain.DateOf(reservation.Arrival)
	reservation.Departure = domain.DateOf(reservation.Departure)
	if updatedAt.Valid {
		reservation.UpdatedAt = &updatedAt.Time
	}
	if deletedAt.Valid {
		reservation.DeletedAt = &deletedAt.Time
	}

	return &reservation, nil
}

// Даты передаются строкой YYYY-MM-DD, чтобы часовой пояс соединения не сдвигал день
func formatDate(t time.Time) string {
	return t.Format(domain.DateFormat)
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
