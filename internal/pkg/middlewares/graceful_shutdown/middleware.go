package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"

	"service/internal/pkg/envelope"
)

// Middleware отклоняет новые запросы после начала остановки, текущие дорабатывают.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-ongoingCtx.Done():
				if isShuttingDown.Load() {
					_ = envelope.Write(w, http.StatusServiceUnavailable, envelope.Error("service is shutting down"))
					return
				}
			default:
			}
			next.ServeHTTP(w, r)
		})
	}
}
