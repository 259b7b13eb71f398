package reservation

import (
	"context"
	"embed"
	"fmt"

	"github.com/m04kA/SMC-CampsiteService/pkg/psqlbuilder"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Schema возвращает DDL таблицы бронирований для диалекта
func Schema(dialect psqlbuilder.Dialect) (string, error) {
	ddl, err := migrations.ReadFile(fmt.Sprintf("migrations/%s.sql", dialect))
	if err != nil {
		return "", fmt.Errorf("%w: no schema for dialect %s: %v", ErrMigrate, dialect, err)
	}
	return string(ddl), nil
}

// Migrate создает таблицу и индексы, если их еще нет
func (r *Repository) Migrate(ctx context.Context) error {
	ddl, err := Schema(r.qb.Dialect())
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("%w: Migrate - execute ddl: %v", ErrMigrate, err)
	}
	return nil
}
