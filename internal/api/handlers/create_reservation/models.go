package create_reservation

import (
	"github.com/m04kA/SMC-CampsiteService/internal/api/handlers"
	createReservation "github.com/m04kA/SMC-CampsiteService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP модель запроса на создание бронирования
type CreateReservationRequest struct {
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Arrival   *handlers.Date `json:"arrival"`
	Departure *handlers.Date `json:"departure"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() *createReservation.Request {
	return &createReservation.Request{
		Name:      r.Name,
		Email:     r.Email,
		Arrival:   r.Arrival.TimeOf(),
		Departure: r.Departure.TimeOf(),
	}
}
