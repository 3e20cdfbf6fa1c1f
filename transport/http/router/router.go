package router

import (
	"deportur/config"
	_ "deportur/docs" // swagger spec
	"deportur/infras/metrics"
	"deportur/internal/handlers/activity"
	"deportur/internal/handlers/auth"
	"deportur/internal/handlers/customer"
	"deportur/internal/handlers/dashboard"
	"deportur/internal/handlers/destination"
	"deportur/internal/handlers/equipment"
	"deportur/internal/handlers/equipmenttype"
	"deportur/internal/handlers/pricepolicy"
	"deportur/internal/handlers/reservation"
	"deportur/transport/http/middleware"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Auth          auth.Handler
	Dashboard     dashboard.Handler
	Activity      activity.Handler
	Customer      customer.Handler
	Destination   destination.Handler
	EquipmentType equipmenttype.Handler
	Equipment     equipment.Handler
	Reservation   reservation.Handler
	PricePolicy   pricepolicy.Handler
}

type Middlewares struct {
	App      middleware.AppMiddleware
	AuthRole middleware.AuthRole
}

type Router struct {
	DomainHandlers DomainHandlers
	Middlewares    Middlewares
	Config         *config.Config
	Metrics        *metrics.Metrics
}

// SetupRoutes mounts the operational endpoints at the root and the console API under /v1.
// health reports whether the server still accepts traffic.
func (r *Router) SetupRoutes(router chi.Router, health http.HandlerFunc) {
	router.Use(chiMiddleware.Recoverer)
	router.Use(r.Middlewares.App.RequestID)
	router.Use(r.Middlewares.App.Tracing)
	router.Use(r.Middlewares.App.Metrics)

	if r.Config.App.CORS.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   r.Config.App.CORS.AllowedOrigins,
			AllowedMethods:   r.Config.App.CORS.AllowedMethods,
			AllowedHeaders:   r.Config.App.CORS.AllowedHeaders,
			AllowCredentials: r.Config.App.CORS.AllowCredentials,
			MaxAge:           r.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	router.Get("/healthz", health)
	router.Handle("/metrics", r.Metrics.Handler())
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.Middlewares.App.RateLimit())
		routerGroup.Use(chiMiddleware.Timeout(time.Duration(r.Config.Backend.TimeoutSeconds+5) * time.Second))
		routerGroup.Use(r.Middlewares.AuthRole.APIKey)
		routerGroup.Use(r.Middlewares.AuthRole.Auth)
		routerGroup.Use(r.Middlewares.AuthRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
		r.DomainHandlers.Activity.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.Destination.Router(routerGroup)
		r.DomainHandlers.EquipmentType.Router(routerGroup)
		r.DomainHandlers.Equipment.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.PricePolicy.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, middlewares Middlewares, cfg *config.Config, metrics *metrics.Metrics) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middlewares:    middlewares,
		Config:         cfg,
		Metrics:        metrics,
	}
}
