package modify_reservation

import (
	"context"

	"github.com/m04kA/SMC-CampsiteService/internal/domain"
	modifyReservation "github.com/m04kA/SMC-CampsiteService/internal/usecase/modify_reservation"
)

type ModifyReservationUseCase interface {
	Execute(ctx context.Context, id int64, req *modifyReservation.Request) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
