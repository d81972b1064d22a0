package main

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "service/internal/app"
	"service/internal/entities"
	"service/internal/handlers/rest/healthcheck_head"
	"service/internal/handlers/rest/ping_get"
	"service/internal/pkg/config"
	"service/internal/pkg/middlewares/graceful_shutdown"
	"service/internal/pkg/middlewares/metrics"
	"service/internal/pkg/middlewares/rate_limiter"
	"service/internal/pkg/middlewares/request_id"
	"service/internal/pkg/middlewares/timeout"
	"service/internal/resources"
	"service/pkg/logger"
	"service/pkg/token_bucket"
)

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	cfg config.HTTPServer,
	db healthcheck_head.Pinger,
) http.Handler {
	router := mux.NewRouter()

	router.Use(request_id.Middleware())
	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))
	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.New(float64(cfg.RateLimiterQPS), cfg.RateLimiterBurst)))

	router.Handle("/metrics", promhttp.Handler())
	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, db)).Methods(http.MethodHead)
	router.Handle("/ping", ping_get.New(log)).Methods(http.MethodGet)

	resources.Register[entities.User, string](router, log, app.Users, resources.User)
	resources.Register[entities.DeliveryBoy, int64](router, log, app.DeliveryBoys, resources.DeliveryBoy)
	resources.Register[entities.Delivery, string](router, log, app.Deliveries, resources.Delivery)
	resources.Register[entities.Order, string](router, log, app.Orders, resources.Order)
	resources.Register[entities.Bill, int64](router, log, app.Bills, resources.Bill)

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, nil)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
