package modify_reservation

import (
	"github.com/m04kA/SMC-CampsiteService/internal/api/handlers"
	modifyReservation "github.com/m04kA/SMC-CampsiteService/internal/usecase/modify_reservation"
)

// ModifyReservationRequest HTTP модель запроса на перенос дат.
// Имя и email не изменяются, даже если переданы.
type ModifyReservationRequest struct {
	Arrival   *handlers.Date `json:"arrival"`
	Departure *handlers.Date `json:"departure"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ModifyReservationRequest) ToUseCaseRequest() *modifyReservation.Request {
	return &modifyReservation.Request{
		Arrival:   r.Arrival.TimeOf(),
		Departure: r.Departure.TimeOf(),
	}
}
