package modify_reservation

import "time"

// Request новые даты проживания
type Request struct {
	Arrival   *time.Time // Дата заезда
	Departure *time.Time // Дата выезда
}
