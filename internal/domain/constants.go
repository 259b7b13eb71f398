package domain

// Default policy values
const (
	DefaultMinStayDays            = 1
	DefaultMaxStayDays            = 3
	DefaultMaxDefaultDaysToSearch = 31
	DefaultMinLeadDays            = 1
	DefaultMaxLeadDays            = 31
	DefaultMaxNameLength          = 255
	DefaultMaxEmailLength         = 255
)

// Parameter names reported in validation errors
const (
	ParamBody      = "body"
	ParamName      = "name"
	ParamEmail     = "email"
	ParamArrival   = "arrival"
	ParamDeparture = "departure"
	ParamFrom      = "from"
	ParamTo        = "to"
	ParamID        = "reservationId"
)

// EntityReservation is the entity name reported by not-found errors
const EntityReservation = "Reservation"

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
