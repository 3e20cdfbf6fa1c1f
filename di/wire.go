//go:build wireinject
// +build wireinject

package di

import (
	"deportur/config"
	"deportur/infras/backend"
	"deportur/infras/jwt"
	"deportur/infras/kafka"
	"deportur/infras/metrics"
	"deportur/infras/otel"
	"deportur/infras/postgres"
	"deportur/infras/redis"
	"deportur/infras/s3"
	"deportur/permissions"
	"deportur/shared/cache"
	"deportur/shared/session"
	"deportur/transport/http"
	"deportur/transport/http/middleware"
	"deportur/transport/http/router"

	"github.com/google/wire"

	activityRepository "deportur/internal/domains/activity/repository"
	activityService "deportur/internal/domains/activity/service"
	authService "deportur/internal/domains/auth/service"
	customerRepository "deportur/internal/domains/customer/repository"
	customerService "deportur/internal/domains/customer/service"
	dashboardRepository "deportur/internal/domains/dashboard/repository"
	dashboardService "deportur/internal/domains/dashboard/service"
	destinationRepository "deportur/internal/domains/destination/repository"
	destinationService "deportur/internal/domains/destination/service"
	equipmentRepository "deportur/internal/domains/equipment/repository"
	equipmentService "deportur/internal/domains/equipment/service"
	equipmentTypeRepository "deportur/internal/domains/equipmenttype/repository"
	equipmentTypeService "deportur/internal/domains/equipmenttype/service"
	pricePolicyRepository "deportur/internal/domains/pricepolicy/repository"
	pricePolicyService "deportur/internal/domains/pricepolicy/service"
	pricePolicyWizard "deportur/internal/domains/pricepolicy/wizard"
	reservationRepository "deportur/internal/domains/reservation/repository"
	reservationService "deportur/internal/domains/reservation/service"
	reservationWizard "deportur/internal/domains/reservation/wizard"

	activityHandler "deportur/internal/handlers/activity"
	authHandler "deportur/internal/handlers/auth"
	customerHandler "deportur/internal/handlers/customer"
	dashboardHandler "deportur/internal/handlers/dashboard"
	destinationHandler "deportur/internal/handlers/destination"
	equipmentHandler "deportur/internal/handlers/equipment"
	equipmentTypeHandler "deportur/internal/handlers/equipmenttype"
	pricePolicyHandler "deportur/internal/handlers/pricepolicy"
	reservationHandler "deportur/internal/handlers/reservation"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	metrics.New,
	kafka.New,
	s3.New,
	backend.ContextTokenProvider,
	backend.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
	wire.Struct(new(router.Middlewares), "*"),
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	session.New,
	session.NewSweeper,
)

var activityDomain = wire.NewSet(
	activityRepository.New,
	activityService.New,
)

var catalogDomains = wire.NewSet(
	customerRepository.New,
	customerService.New,
	destinationRepository.New,
	destinationService.New,
	equipmentTypeRepository.New,
	equipmentTypeService.New,
	equipmentRepository.New,
	equipmentService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
	reservationWizard.New,
	wire.Bind(new(reservationWizard.Customers), new(customerService.Customer)),
	wire.Bind(new(reservationWizard.Destinations), new(destinationService.Destination)),
	wire.Bind(new(reservationWizard.Equipment), new(equipmentService.Equipment)),
	wire.Bind(new(reservationWizard.Reservations), new(reservationService.Reservation)),
)

var pricePolicyDomain = wire.NewSet(
	pricePolicyRepository.New,
	pricePolicyService.New,
	pricePolicyWizard.New,
	wire.Bind(new(pricePolicyWizard.Policies), new(pricePolicyService.PricePolicy)),
)

var operatorDomains = wire.NewSet(
	authService.New,
	dashboardRepository.New,
	dashboardService.New,
)

var domains = wire.NewSet(
	activityDomain,
	catalogDomains,
	reservationDomain,
	pricePolicyDomain,
	operatorDomains,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	dashboardHandler.New,
	activityHandler.New,
	customerHandler.New,
	destinationHandler.New,
	equipmentTypeHandler.New,
	equipmentHandler.New,
	reservationHandler.New,
	pricePolicyHandler.New,
	router.New,
)

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
