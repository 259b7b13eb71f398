package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CampsiteService/internal/domain"
)

// AvailabilityService интерфейс расчета доступности
type AvailabilityService interface {
	Availability(from, to *time.Time) ([]domain.DayAvailability, error)
}

// Calendar интерфейс получения текущей даты
type Calendar interface {
	Today() time.Time
}

// Cache интерфейс кэша доступности
type Cache interface {
	Key(from, to *time.Time, today time.Time) string
	Get(ctx context.Context, key string) ([]domain.DayAvailability, bool, error)
	Set(ctx context.Context, key string, days []domain.DayAvailability) error
}

// Metrics интерфейс учета метрик
type Metrics interface {
	RecordCacheResult(result string)
	RecordReservationOperation(operation, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
