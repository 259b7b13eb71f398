package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CampsiteService/internal/api/handlers"
)

// Logging пишет access лог и перехватывает панику обработчика, отвечая ISE
func Logging(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)
			requestID, _ := GetRequestID(r.Context())

			defer func() {
				if recovered := recover(); recovered != nil {
					log.Error("panic: method=%s path=%s request_id=%s error=%v stack=%s",
						r.Method, r.URL.Path, requestID, recovered, debug.Stack())
					handlers.RespondInternalError(rec, r)
				}

				latency := time.Since(start)
				switch {
				case rec.status >= http.StatusInternalServerError:
					log.Error("%s %s - status=%d latency=%s request_id=%s",
						r.Method, r.URL.RequestURI(), rec.status, latency, requestID)
				case rec.status >= http.StatusBadRequest:
					log.Warn("%s %s - status=%d latency=%s request_id=%s",
						r.Method, r.URL.RequestURI(), rec.status, latency, requestID)
				default:
					log.Info("%s %s - status=%d latency=%s request_id=%s",
						r.Method, r.URL.RequestURI(), rec.status, latency, requestID)
				}
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
