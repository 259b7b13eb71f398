package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CampsiteService/internal/domain"
	"github.com/m04kA/SMC-CampsiteService/internal/integrations/events"
	"github.com/m04kA/SMC-CampsiteService/internal/service/reservations"
)

// ReservationService интерфейс движка бронирований
type ReservationService interface {
	Create(ctx context.Context, input *reservations.CreateInput) (*domain.Reservation, error)
}

// EventPublisher интерфейс публикации событий
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// Metrics интерфейс учета метрик
type Metrics interface {
	RecordReservationOperation(operation, result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
