package routing

import (
	"time"

	"storefront/cmd/storefront/config"
	"storefront/cmd/storefront/handlers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func InitMiddleware(r *chi.Mux, conf *config.Config, ctrl *handlers.Controller) {
	r.Use(ctrl.PanicRecoveryMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(time.Duration(conf.Timeout) * time.Second))
	r.Use(ctrl.AuthenticateMiddleware)
	r.Use(ctrl.LoggingMiddleware)
	r.Use(ctrl.GzipEncodeMiddleware)
	r.Use(ctrl.GzipDecodeMiddleware)
}

func Routing(r *chi.Mux, ctrl *handlers.Controller) {
	r.Post("/api/user/register", ctrl.Register())
	r.Post("/api/user/login", ctrl.Login())
	r.Post("/api/orders", ctrl.OrderCreate())
	r.Get("/api/clients/{clientID}/orders", ctrl.OrdersGet())
	r.Handle("/metrics", promhttp.Handler())
}
