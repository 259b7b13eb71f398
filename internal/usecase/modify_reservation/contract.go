package modify_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CampsiteService/internal/domain"
	"github.com/m04kA/SMC-CampsiteService/internal/integrations/events"
	"github.com/m04kA/SMC-CampsiteService/internal/service/reservations"
)

// ReservationService интерфейс движка бронирований
type ReservationService interface {
	Get(ctx context.Context, id int64) (*domain.Reservation, error)
	Modify(ctx context.Context, existing *domain.Reservation, changes *reservations.StayChanges) (*domain.Reservation, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
