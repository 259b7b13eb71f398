package get_availability

import (
	"net/http"

	"github.com/m04kA/SMC-CampsiteService/internal/api/handlers"
	"github.com/m04kA/SMC-CampsiteService/internal/domain"
	getAvailability "github.com/m04kA/SMC-CampsiteService/internal/usecase/get_availability"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /reservations/availability?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from, err := handlers.QueryDate(r, domain.ParamFrom)
	if err != nil {
		h.logger.Warn("GET /reservations/availability - Invalid from: %v", err)
		handlers.RespondError(w, r, err)
		return
	}

	to, err := handlers.QueryDate(r, domain.ParamTo)
	if err != nil {
		h.logger.Warn("GET /reservations/availability - Invalid to: %v", err)
		handlers.RespondError(w, r, err)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{From: from, To: to})
	if err != nil {
		if domain.Classify(err).Kind() == domain.KindInternal {
			h.logger.Error("GET /reservations/availability - Failed to get availability: %v", err)
		} else {
			h.logger.Warn("GET /reservations/availability - Rejected: %v", err)
		}
		handlers.RespondError(w, r, err)
		return
	}

	h.logger.Info("GET /reservations/availability - Availability retrieved: days=%d", len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
