// Package psqlbuilder предоставляет squirrel-билдеры с плейсхолдерами нужного диалекта.
// Функции пакета (Select, Insert, Update) строят запросы для PostgreSQL.
package psqlbuilder

import (
	"fmt"

	"github.com/Masterminds/squirrel"
)

// Dialect SQL диалект хранилища
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite3"
)

// ParseDialect разбирает имя драйвера из конфигурации
func ParseDialect(driver string) (Dialect, error) {
	switch Dialect(driver) {
	case Postgres:
		return Postgres, nil
	case SQLite:
		return SQLite, nil
	default:
		return "", fmt.Errorf("psqlbuilder: unsupported dialect %q", driver)
	}
}

// SupportsRowLocks сообщает, поддерживает ли диалект SELECT ... FOR UPDATE
func (d Dialect) SupportsRowLocks() bool {
	return d == Postgres
}

// Builder строитель запросов для конкретного диалекта
type Builder struct {
	dialect Dialect
	sb      squirrel.StatementBuilderType
}

// New создает строитель запросов для диалекта
func New(dialect Dialect) Builder {
	format := squirrel.PlaceholderFormat(squirrel.Dollar)
	if dialect == SQLite {
		format = squirrel.Question
	}
	return Builder{
		dialect: dialect,
		sb:      squirrel.StatementBuilder.PlaceholderFormat(format),
	}
}

// Dialect возвращает диалект строителя
func (b Builder) Dialect() Dialect {
	return b.dialect
}

func (b Builder) Select(columns ...string) squirrel.SelectBuilder {
	return b.sb.Select(columns...)
}

func (b Builder) Insert(table string) squirrel.InsertBuilder {
	return b.sb.Insert(table)
}

func (b Builder) Update(table string) squirrel.UpdateBuilder {
	return b.sb.Update(table)
}

var postgres = New(Postgres)

func Select(columns ...string) squirrel.SelectBuilder {
	return postgres.Select(columns...)
}

func Insert(table string) squirrel.InsertBuilder {
	return postgres.Insert(table)
}

func Update(table string) squirrel.UpdateBuilder {
	return postgres.Update(table)
}
