package reservations

import "time"

// CreateInput данные для создания бронирования.
// Даты - указатели: отсутствие значения отличается от нулевой даты.
type CreateInput struct {
	Name      string
	Email     string
	Arrival   *time.Time
	Departure *time.Time
}

// StayChanges новые даты проживания. Имя и email этой операцией не меняются.
type StayChanges struct {
	Arrival   *time.Time
	Departure *time.Time
}
