package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CampsiteService/internal/domain"
)

var now = time.Now

// ErrorResponse тело ответа для любой ошибки
type ErrorResponse struct {
	Timestamp time.Time        `json:"timestamp"`
	Status    int              `json:"status"`
	Error     string           `json:"error"`
	Message   string           `json:"message"`
	Path      string           `json:"path"`
	Meta      map[string]any   `json:"meta,omitempty"`
	Code      domain.ErrorCode `json:"code"`
}

// StatusResponse тело ответа операций без результата
type StatusResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondStatus отправляет ответ об успешной операции без результата
func RespondStatus(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusOK, StatusResponse{
		Timestamp: now().UTC(),
		Status:    "Ok",
		Message:   message,
	})
}

// RespondError отправляет классифицированную ошибку.
// Неклассифицированные ошибки отдаются как ISE с общим сообщением, без деталей.
func RespondError(w http.ResponseWriter, r *http.Request, err error) {
	e := domain.Classify(err)
	status := e.Kind().HTTPStatus()

	resp := ErrorResponse{
		Timestamp: now().UTC(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   e.Message,
		Path:      r.URL.Path,
		Code:      e.Code,
	}
	if e.Kind() != domain.KindInternal {
		resp.Meta = e.Meta
	}

	RespondJSON(w, status, resp)
}

// RespondInternalError отправляет ISE
func RespondInternalError(w http.ResponseWriter, r *http.Request) {
	RespondError(w, r, domain.Internal(nil))
}

// Health GET /health
func Health(w http.ResponseWriter, _ *http.Request) {
	RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
