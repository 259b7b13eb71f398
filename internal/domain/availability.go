package domain

import "time"

// DayAvailability tells whether a date can be used as arrival or departure.
// It reflects the policy window only; other reservations are not consulted.
type DayAvailability struct {
	Date              time.Time
	ValidForArrival   bool
	ValidForDeparture bool
}

// IsBookable returns true if the day can be used at all
func (d DayAvailability) IsBookable() bool {
	return d.ValidForArrival || d.ValidForDeparture
}
