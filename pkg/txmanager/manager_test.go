package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CampsiteService/pkg/dbmetrics"
)

func setup(t *testing.T) *dbmetrics.DB {
	t.Helper()
	raw, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	raw.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = raw.Close() })

	_, err = raw.Exec(`CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT NOT NULL)`)
	require.NoError(t, err)
	return dbmetrics.Wrap(raw, nil)
}

func insert(ctx context.Context, db *dbmetrics.DB, name string) error {
	_, err := dbmetrics.GetExecutor(ctx, db).ExecContext(ctx, "INSERT INTO items (name) VALUES (?)", name)
	return err
}

func count(t *testing.T, db *dbmetrics.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM items").Scan(&n))
	return n
}

func TestTransactionManager_Commit(t *testing.T) {
	db := setup(t)
	m := NewTransactionManager(db)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return insert(ctx, db, "tent")
	})

	require.NoError(t, err)
	assert.Equal(t, 1, count(t, db))
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	db := setup(t)
	m := NewTransactionManager(db)
	errBoom := errors.New("boom")

	err := m.Do(context.Background(), func(ctx context.Context) error {
		require.NoError(t, insert(ctx, db, "tent"))
		return errBoom
	})

	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 0, count(t, db))
}

func TestTransactionManager_RollbackOnPanic(t *testing.T) {
	db := setup(t)
	m := NewTransactionManager(db)

	assert.Panics(t, func() {
		_ = m.Do(context.Background(), func(ctx context.Context) error {
			require.NoError(t, insert(ctx, db, "tent"))
			panic("unexpected")
		})
	})

	assert.Equal(t, 0, count(t, db))
}

func TestTransactionManager_NestedReusesOuter(t *testing.T) {
	db := setup(t)
	m := NewTransactionManager(db)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		outer, _ := dbmetrics.TxFromContext(ctx)
		return m.DoSerializable(ctx, func(inner context.Context) error {
			tx, _ := dbmetrics.TxFromContext(inner)
			assert.Equal(t, outer, tx)
			return insert(inner, db, "tent")
		})
	})

	require.NoError(t, err)
	assert.Equal(t, 1, count(t, db))
}
