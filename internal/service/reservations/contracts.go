package reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CampsiteService/internal/domain"
)

// ReservationRepository интерфейс хранилища бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	// Save создает запись, если ID не задан, иначе обновляет существующую
	Save(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
}

// DatePolicy интерфейс вычисления окон дат
type DatePolicy interface {
	Params() domain.ReservationParams
	DefaultSearchRange() domain.DateRange
	ValidReservationWindow() domain.DateRange
	CheckStayRange(stay, window domain.DateRange) error
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
