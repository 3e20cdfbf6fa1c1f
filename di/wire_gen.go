// Injector for the providers in wire.go, written in the shape Wire emits. Keep it in step
// with wire.go by hand or replace it by running go generate in this directory.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

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
	repository5 "deportur/internal/domains/activity/repository"
	service8 "deportur/internal/domains/activity/service"
	service9 "deportur/internal/domains/auth/service"
	"deportur/internal/domains/customer/repository"
	"deportur/internal/domains/customer/service"
	repository6 "deportur/internal/domains/dashboard/repository"
	service6 "deportur/internal/domains/dashboard/service"
	repository2 "deportur/internal/domains/destination/repository"
	service2 "deportur/internal/domains/destination/service"
	repository4 "deportur/internal/domains/equipment/repository"
	service4 "deportur/internal/domains/equipment/service"
	repository3 "deportur/internal/domains/equipmenttype/repository"
	service3 "deportur/internal/domains/equipmenttype/service"
	repository8 "deportur/internal/domains/pricepolicy/repository"
	service7 "deportur/internal/domains/pricepolicy/service"
	wizard2 "deportur/internal/domains/pricepolicy/wizard"
	repository7 "deportur/internal/domains/reservation/repository"
	service5 "deportur/internal/domains/reservation/service"
	"deportur/internal/domains/reservation/wizard"
	"deportur/internal/handlers/activity"
	"deportur/internal/handlers/auth"
	"deportur/internal/handlers/customer"
	"deportur/internal/handlers/dashboard"
	"deportur/internal/handlers/destination"
	"deportur/internal/handlers/equipment"
	"deportur/internal/handlers/equipmenttype"
	"deportur/internal/handlers/pricepolicy"
	"deportur/internal/handlers/reservation"
	"deportur/permissions"
	"deportur/shared/cache"
	"deportur/shared/session"
	"deportur/transport/http"
	"deportur/transport/http/middleware"
	"deportur/transport/http/router"
)

// Injectors from wire.go:

func InitializeApp() *App {
	configConfig := config.Get()
	otelOtel := otel.New(configConfig)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	store := session.New(configConfig, redisCache)
	authService := service9.New(store, configConfig, otelOtel)
	handler := auth.New(authService, otelOtel)
	tokenProvider := backend.ContextTokenProvider()
	metricsMetrics := metrics.New(configConfig)
	backendClient := backend.New(configConfig, tokenProvider, otelOtel, metricsMetrics)
	repositoryDashboard := repository6.New(backendClient)
	serviceDashboard := service6.New(repositoryDashboard, redisCache, configConfig, otelOtel)
	dashboardHandler := dashboard.New(serviceDashboard, otelOtel)
	connection := postgres.New(configConfig)
	repositoryActivity := repository5.New(connection, otelOtel)
	kafkaClient := kafka.New(configConfig)
	serviceActivity := service8.New(repositoryActivity, kafkaClient, metricsMetrics, configConfig, otelOtel)
	activityHandler := activity.New(serviceActivity, otelOtel)
	repositoryCustomer := repository.New(backendClient)
	serviceCustomer := service.New(repositoryCustomer, store, serviceActivity, otelOtel)
	customerHandler := customer.New(serviceCustomer, otelOtel)
	repositoryDestination := repository2.New(backendClient)
	serviceDestination := service2.New(repositoryDestination, store, serviceActivity, otelOtel)
	destinationHandler := destination.New(serviceDestination, otelOtel)
	repositoryEquipmentType := repository3.New(backendClient)
	serviceEquipmentType := service3.New(repositoryEquipmentType, store, serviceActivity, otelOtel)
	equipmenttypeHandler := equipmenttype.New(serviceEquipmentType, otelOtel)
	repositoryEquipment := repository4.New(backendClient)
	s3S3 := s3.New(configConfig, otelOtel)
	serviceEquipment := service4.New(repositoryEquipment, store, s3S3, serviceActivity, otelOtel)
	equipmentHandler := equipment.New(serviceEquipment, otelOtel)
	repositoryReservation := repository7.New(backendClient)
	serviceReservation := service5.New(repositoryReservation, store, serviceActivity, otelOtel)
	wizardWizard := wizard.New(store, serviceCustomer, serviceDestination, serviceEquipment, serviceReservation, otelOtel)
	reservationHandler := reservation.New(serviceReservation, wizardWizard, otelOtel)
	repositoryPricePolicy := repository8.New(backendClient)
	servicePricePolicy := service7.New(repositoryPricePolicy, store, serviceActivity, otelOtel)
	wizard2Wizard := wizard2.New(store, servicePricePolicy, otelOtel)
	pricepolicyHandler := pricepolicy.New(servicePricePolicy, wizard2Wizard, otelOtel)
	domainHandlers := router.DomainHandlers{
		Auth:          handler,
		Dashboard:     dashboardHandler,
		Activity:      activityHandler,
		Customer:      customerHandler,
		Destination:   destinationHandler,
		EquipmentType: equipmenttypeHandler,
		Equipment:     equipmentHandler,
		Reservation:   reservationHandler,
		PricePolicy:   pricepolicyHandler,
	}
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache, metricsMetrics)
	jwtJWT := jwt.New(configConfig)
	permissionData := permissions.Get()
	authRole := middleware.NewAuthRoleMiddleware(jwtJWT, otelOtel, permissionData, configConfig)
	middlewares := router.Middlewares{
		App:      appMiddleware,
		AuthRole: authRole,
	}
	routerRouter := router.New(domainHandlers, middlewares, configConfig, metricsMetrics)
	httpHTTP := http.New(configConfig, routerRouter)
	sweeper := session.NewSweeper(configConfig, store)
	app := &App{
		HTTP:     httpHTTP,
		Sweeper:  sweeper,
		Activity: serviceActivity,
		Kafka:    kafkaClient,
	}
	return app
}

