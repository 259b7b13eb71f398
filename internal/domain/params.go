package domain

// ReservationParams holds the business policy of the campsite.
// It is built once at startup and never changes; min <= max pairs are
// guaranteed by configuration validation, not re-checked here.
type ReservationParams struct {
	MinStayDays            int
	MaxStayDays            int
	MaxDefaultDaysToSearch int
	MinLeadDays            int // earliest arrival, in days after today
	MaxLeadDays            int // latest arrival, in days after today
	MaxNameLength          int
	MaxEmailLength         int
}

// DefaultReservationParams returns the campsite default policy
func DefaultReservationParams() ReservationParams {
	return ReservationParams{
		MinStayDays:            DefaultMinStayDays,
		MaxStayDays:            DefaultMaxStayDays,
		MaxDefaultDaysToSearch: DefaultMaxDefaultDaysToSearch,
		MinLeadDays:            DefaultMinLeadDays,
		MaxLeadDays:            DefaultMaxLeadDays,
		MaxNameLength:          DefaultMaxNameLength,
		MaxEmailLength:         DefaultMaxEmailLength,
	}
}

// HorizonDays returns the length in days of the reservable horizon
func (p ReservationParams) HorizonDays() int {
	return p.MaxLeadDays - p.MinLeadDays + p.MaxStayDays - 1
}
