package rate_limiter

import (
	"net/http"
	"strconv"

	"service/internal/pkg/envelope"
	"service/internal/pkg/middlewares/metrics"
	"service/pkg/logger"
)

func Middleware(log handlerLogger, limit int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := metrics.RouteTemplate(r)
			RateLimitExceededTotal.WithLabelValues(r.Method, route).Inc()

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("Retry-After", "1")

			err := envelope.Write(w, http.StatusTooManyRequests, envelope.Error("rate limit exceeded, try again later"))
			if err != nil {
				log.With(
					logger.NewField("error", err),
				).Error("failed to write rate limit response")
			}
		})
	}
}
