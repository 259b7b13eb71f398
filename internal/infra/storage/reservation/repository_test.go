package reservation

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CampsiteService/internal/domain"
	"github.com/m04kA/SMC-CampsiteService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CampsiteService/pkg/psqlbuilder"
)

func newTestRepository(t *testing.T) (*Repository, *dbmetrics.DB) {
	t.Helper()

	raw, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	raw.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = raw.Close() })

	db := dbmetrics.Wrap(raw, nil)
	repo := NewRepository(db, psqlbuilder.SQLite)
	require.NoError(t, repo.Migrate(context.Background()))
	return repo, db
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func newReservation(t *testing.T) *domain.Reservation {
	return &domain.Reservation{
		CreatedAt:  time.Date(2022, 8, 1, 10, 30, 0, 0, time.UTC),
		GuestName:  "John Smith",
		GuestEmail: "john@example.com",
		Arrival:    date(t, "2022-08-10"),
		Departure:  date(t, "2022-08-12"),
	}
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Save(ctx, newReservation(t))
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "John Smith", got.GuestName)
	assert.Equal(t, "john@example.com", got.GuestEmail)
	assert.Equal(t, "2022-08-10", got.Arrival.Format(domain.DateFormat))
	assert.Equal(t, "2022-08-12", got.Departure.Format(domain.DateFormat))
	assert.True(t, got.CreatedAt.Equal(created.CreatedAt))
	assert.Nil(t, got.UpdatedAt)
	assert.Nil(t, got.DeletedAt)
	assert.False(t, got.IsCancelled())
}

func TestRepository_CreateAssignsSequentialIDs(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	first, err := repo.Save(ctx, newReservation(t))
	require.NoError(t, err)
	second, err := repo.Save(ctx, newReservation(t))
	require.NoError(t, err)

	assert.Greater(t, second.ID, first.ID)
}

func TestRepository_SaveUpdatesExisting(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	r, err := repo.Save(ctx, newReservation(t))
	require.NoError(t, err)

	updatedAt := time.Date(2022, 8, 2, 9, 0, 0, 0, time.UTC)
	r.UpdatedAt = &updatedAt
	r.Arrival = date(t, "2022-08-20")
	r.Departure = date(t, "2022-08-23")
	_, err = repo.Save(ctx, r)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, r.ID)
	require.NoError(t, err)
	require.NotNil(t, got.UpdatedAt)
	assert.True(t, got.UpdatedAt.Equal(updatedAt))
	assert.Equal(t, "2022-08-20", got.Arrival.Format(domain.DateFormat))
	assert.Equal(t, "2022-08-23", got.Departure.Format(domain.DateFormat))
}

func TestRepository_CancelledStaysReadable(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	r, err := repo.Save(ctx, newReservation(t))
	require.NoError(t, err)

	deletedAt := time.Date(2022, 8, 3, 12, 0, 0, 0, time.UTC)
	r.DeletedAt = &deletedAt
	_, err = repo.Save(ctx, r)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, r.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DeletedAt)
	assert.True(t, got.DeletedAt.Equal(deletedAt))
	assert.True(t, got.IsCancelled())
}

func TestRepository_NotFound(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 404)
	assert.ErrorIs(t, err, ErrReservationNotFound)

	missing := newReservation(t)
	missing.ID = 404
	_, err = repo.Save(ctx, missing)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestRepository_GetByIDInTransaction(t *testing.T) {
	repo, db := newTestRepository(t)
	ctx := context.Background()

	r, err := repo.Save(ctx, newReservation(t))
	require.NoError(t, err)

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	got, err := repo.GetByID(dbmetrics.WithTx(ctx, tx), r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)
}

func TestRepository_MigrateIsIdempotent(t *testing.T) {
	repo, _ := newTestRepository(t)

	assert.NoError(t, repo.Migrate(context.Background()))
}

func TestSchema(t *testing.T) {
	pg, err := Schema(psqlbuilder.Postgres)
	require.NoError(t, err)
	assert.True(t, strings.Contains(pg, "BIGSERIAL"))
	// длина текста ограничивается настройками, а не схемой
	assert.False(t, strings.Contains(pg, "VARCHAR"))

	lite, err := Schema(psqlbuilder.SQLite)
	require.NoError(t, err)
	assert.True(t, strings.Contains(lite, "AUTOINCREMENT"))

	_, err = Schema(psqlbuilder.Dialect("mysql"))
	assert.ErrorIs(t, err, ErrMigrate)
}
