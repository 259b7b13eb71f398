package modify_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CampsiteService/internal/api/handlers"
	"github.com/m04kA/SMC-CampsiteService/internal/domain"
	modifyReservation "github.com/m04kA/SMC-CampsiteService/internal/usecase/modify_reservation"
)

type Handler struct {
	useCase ModifyReservationUseCase
	logger  Logger
}

func NewHandler(useCase ModifyReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, domain.ParamID)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondError(w, r, err)
		return
	}

	var useCaseReq *modifyReservation.Request

	var req ModifyReservationRequest
	err = handlers.DecodeJSON(r, &req)
	switch {
	case err == nil:
		useCaseReq = req.ToUseCaseRequest()
	case errors.Is(err, handlers.ErrEmptyBody):
	default:
		h.logger.Warn("PUT /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondError(w, r, domain.NewMalformedBody(err))
		return
	}

	result, err := h.useCase.Execute(r.Context(), id, useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.logger.Warn("PUT /reservations/{id} - Reservation not found: reservation_id=%d", id)
		case errors.Is(err, domain.ErrAlreadyCancelled):
			h.logger.Warn("PUT /reservations/{id} - Reservation already cancelled: reservation_id=%d", id)
		case domain.Classify(err).Kind() == domain.KindInternal:
			h.logger.Error("PUT /reservations/{id} - Failed to modify reservation: reservation_id=%d, error=%v", id, err)
		default:
			h.logger.Warn("PUT /reservations/{id} - Rejected: reservation_id=%d, %v", id, err)
		}
		handlers.RespondError(w, r, err)
		return
	}

	h.logger.Info("PUT /reservations/{id} - Reservation modified successfully: reservation_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainReservation(result))
}
