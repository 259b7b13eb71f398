package create_reservation

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	Name      string     // Имя гостя
	Email     string     // Email гостя
	Arrival   *time.Time // Дата заезда
	Departure *time.Time // Дата выезда
}
