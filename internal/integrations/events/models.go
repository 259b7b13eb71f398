package events

import (
	"time"

	"github.com/m04kA/SMC-CampsiteService/internal/domain"
)

// Type тип события бронирования
type Type string

const (
	TypeCreated   Type = "reservation.created"
	TypeModified  Type = "reservation.modified"
	TypeCancelled Type = "reservation.cancelled"
)

// Event событие жизненного цикла бронирования
type Event struct {
	Type          Type      `json:"type"`
	ReservationID int64     `json:"reservationId"`
	Arrival       string    `json:"arrival"`
	Departure     string    `json:"departure"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// NewEvent создает событие по состоянию бронирования
func NewEvent(t Type, r *domain.Reservation, occurredAt time.Time) Event {
	return Event{
		Type:          t,
		ReservationID: r.ID,
		Arrival:       r.Arrival.Format(domain.DateFormat),
		Departure:     r.Departure.Format(domain.DateFormat),
		OccurredAt:    occurredAt.UTC(),
	}
}
