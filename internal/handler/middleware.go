package handler

import (
	"net/http"
	"time"

	"github.com/EpicMandM/booking-admin-panel/internal/logger"
	"github.com/go-chi/chi/v5/middleware"
)

// requestLogger logs one line per request in the service log format.
func requestLogger(l *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := []logger.Field{
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				logger.Code(status),
				logger.Duration(time.Since(start)),
			}
			if status >= http.StatusInternalServerError {
				l.Error("Request failed", fields...)
				return
			}
			l.Info("Request handled", fields...)
		})
	}
}
