//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"barberia/config"
	"barberia/infras/jwt"
	"barberia/infras/kafka"
	"barberia/infras/otel"
	"barberia/infras/postgres"
	"barberia/infras/redis"
	"barberia/infras/s3"
	"barberia/internal/events"
	"barberia/internal/notifier"
	"barberia/permissions"
	"barberia/shared/cache"
	"barberia/transport/http"
	"barberia/transport/http/middleware"
	"barberia/transport/http/router"

	authService "barberia/internal/domains/auth/service"
	barberRepository "barberia/internal/domains/barber/repository"
	barberService "barberia/internal/domains/barber/service"
	bookingRepository "barberia/internal/domains/booking/repository"
	bookingService "barberia/internal/domains/booking/service"
	catalogueRepository "barberia/internal/domains/catalogue/repository"
	catalogueService "barberia/internal/domains/catalogue/service"
	scheduleRepository "barberia/internal/domains/schedule/repository"
	scheduleService "barberia/internal/domains/schedule/service"
	serviceRepository "barberia/internal/domains/service/repository"
	serviceService "barberia/internal/domains/service/service"
	userRepository "barberia/internal/domains/user/repository"

	authHandler "barberia/internal/handlers/auth"
	barberHandler "barberia/internal/handlers/barber"
	bookingHandler "barberia/internal/handlers/booking"
	catalogueHandler "barberia/internal/handlers/catalogue"
	scheduleHandler "barberia/internal/handlers/schedule"
	serviceHandler "barberia/internal/handlers/service"
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
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var eventing = wire.NewSet(
	events.NewPublisher,
)

var barberDomain = wire.NewSet(
	barberRepository.New,
	barberService.New,
)

var serviceDomain = wire.NewSet(
	serviceRepository.New,
	serviceService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var scheduleDomain = wire.NewSet(
	scheduleRepository.New,
	scheduleService.New,
)

var catalogueDomain = wire.NewSet(
	catalogueRepository.New,
	catalogueService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	barberDomain,
	serviceDomain,
	bookingDomain,
	scheduleDomain,
	catalogueDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	barberHandler.New,
	serviceHandler.New,
	scheduleHandler.New,
	bookingHandler.New,
	catalogueHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		eventing,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeConsumer() *notifier.Consumer {
	wire.Build(
		config.Get,
		otel.New,
		kafka.New,
		notifier.NewWhatsApp,
		notifier.NewConsumer,
	)

	return &notifier.Consumer{}
}
