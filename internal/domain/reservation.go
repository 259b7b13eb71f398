package domain

import "time"

// Reservation represents a campsite reservation.
// DeletedAt is the only cancellation flag: once set, the reservation is terminal.
type Reservation struct {
	ID        int64 // 0 until the store assigns one
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time

	GuestName  string
	GuestEmail string

	Arrival   time.Time
	Departure time.Time
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.DeletedAt != nil
}

// IsNew returns true if the reservation has not been persisted yet
func (r *Reservation) IsNew() bool {
	return r.ID == 0
}

// StayRange returns the arrival/departure pair of the reservation
func (r *Reservation) StayRange() DateRange {
	return NewDateRange(r.Arrival, r.Departure)
}

// Nights returns the stay length in days
func (r *Reservation) Nights() int {
	return DaysBetween(r.Arrival, r.Departure)
}
