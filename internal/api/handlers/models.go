package handlers

import (
	"time"

	"github.com/m04kA/SMC-CampsiteService/internal/domain"
)

// ReservationResponse HTTP модель бронирования
type ReservationResponse struct {
	ID        int64   `json:"id"`
	Created   string  `json:"created"`
	Updated   *string `json:"updated"`
	Deleted   *string `json:"deleted"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Arrival   string  `json:"arrival"`
	Departure string  `json:"departure"`
}

// FromDomainReservation конвертирует бронирование в HTTP модель
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:        r.ID,
		Created:   r.CreatedAt.UTC().Format(time.RFC3339),
		Updated:   formatTimestamp(r.UpdatedAt),
		Deleted:   formatTimestamp(r.DeletedAt),
		Name:      r.GuestName,
		Email:     r.GuestEmail,
		Arrival:   r.Arrival.Format(domain.DateFormat),
		Departure: r.Departure.Format(domain.DateFormat),
	}
}

func formatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
