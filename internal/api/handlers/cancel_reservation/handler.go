package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CampsiteService/internal/api/handlers"
	"github.com/m04kA/SMC-CampsiteService/internal/domain"
)

const msgCancelled = "Reservation cancelled successfully"

type Handler struct {
	useCase CancelReservationUseCase
	logger  Logger
}

func NewHandler(useCase CancelReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, domain.ParamID)
	if err != nil {
		h.logger.Warn("DELETE /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondError(w, r, err)
		return
	}

	if err := h.useCase.Execute(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.logger.Warn("DELETE /reservations/{id} - Reservation not found: reservation_id=%d", id)
		case errors.Is(err, domain.ErrAlreadyCancelled):
			h.logger.Warn("DELETE /reservations/{id} - Reservation already cancelled: reservation_id=%d", id)
		case domain.Classify(err).Kind() == domain.KindInternal:
			h.logger.Error("DELETE /reservations/{id} - Failed to cancel reservation: reservation_id=%d, error=%v", id, err)
		default:
			h.logger.Warn("DELETE /reservations/{id} - Rejected: reservation_id=%d, %v", id, err)
		}
		handlers.RespondError(w, r, err)
		return
	}

	h.logger.Info("DELETE /reservations/{id} - Reservation cancelled successfully: reservation_id=%d", id)
	handlers.RespondStatus(w, msgCancelled)
}
