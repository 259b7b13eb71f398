package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CampsiteService/internal/api/handlers"
	"github.com/m04kA/SMC-CampsiteService/internal/domain"
	createReservation "github.com/m04kA/SMC-CampsiteService/internal/usecase/create_reservation"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var useCaseReq *createReservation.Request

	var req CreateReservationRequest
	err := handlers.DecodeJSON(r, &req)
	switch {
	case err == nil:
		useCaseReq = req.ToUseCaseRequest()
	case errors.Is(err, handlers.ErrEmptyBody):
		// пустое тело отклоняется use case как отсутствующий параметр
	default:
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondError(w, r, domain.NewMalformedBody(err))
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if domain.Classify(err).Kind() == domain.KindInternal {
			h.logger.Error("POST /reservations - Failed to create reservation: error=%v", err)
		} else {
			h.logger.Warn("POST /reservations - Rejected: %v", err)
		}
		handlers.RespondError(w, r, err)
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromDomainReservation(result))
}
