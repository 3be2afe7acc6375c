//go:build wireinject
// +build wireinject

package di

import (
	"rentdesk/config"
	"rentdesk/infras/jwt"
	"rentdesk/infras/otel"
	"rentdesk/infras/postgres"
	"rentdesk/infras/redis"
	"rentdesk/permissions"
	"rentdesk/shared/cache"
	"rentdesk/shared/repository"
	"rentdesk/transport/http"
	"rentdesk/transport/http/middleware"
	"rentdesk/transport/http/router"

	"github.com/google/wire"

	agentRepository "rentdesk/internal/domains/agent/repository"
	agentService "rentdesk/internal/domains/agent/service"
	authService "rentdesk/internal/domains/auth/service"
	customerRepository "rentdesk/internal/domains/customer/repository"
	customerService "rentdesk/internal/domains/customer/service"
	equipmentRepository "rentdesk/internal/domains/equipment/repository"
	equipmentService "rentdesk/internal/domains/equipment/service"
	listingRepository "rentdesk/internal/domains/listing/repository"
	listingService "rentdesk/internal/domains/listing/service"
	lookupRepository "rentdesk/internal/domains/lookup/repository"
	lookupService "rentdesk/internal/domains/lookup/service"
	rentalRepository "rentdesk/internal/domains/rental/repository"
	rentalService "rentdesk/internal/domains/rental/service"
	vehicleRepository "rentdesk/internal/domains/vehicle/repository"
	vehicleService "rentdesk/internal/domains/vehicle/service"

	authHandler "rentdesk/internal/handlers/auth"
	customerHandler "rentdesk/internal/handlers/customer"
	equipmentHandler "rentdesk/internal/handlers/equipment"
	lookupHandler "rentdesk/internal/handlers/lookup"
	pageHandler "rentdesk/internal/handlers/page"
	rentalHandler "rentdesk/internal/handlers/rental"
	vehicleHandler "rentdesk/internal/handlers/vehicle"
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
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	repository.NewTransactor,
)

var authDomain = wire.NewSet(
	agentRepository.New,
	authService.New,
)

var rentalDomains = wire.NewSet(
	customerRepository.New,
	customerService.New,
	equipmentRepository.New,
	equipmentService.New,
	rentalRepository.New,
	rentalService.New,
	vehicleRepository.New,
	vehicleService.New,
)

var readDomains = wire.NewSet(
	listingRepository.New,
	listingService.New,
	lookupRepository.New,
	lookupService.New,
)

var domains = wire.NewSet(
	authDomain,
	rentalDomains,
	readDomains,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	pageHandler.New,
	customerHandler.New,
	equipmentHandler.New,
	rentalHandler.New,
	vehicleHandler.New,
	lookupHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeAgentService() agentService.Agent {
	wire.Build(
		config.Get,
		postgres.New,
		otel.New,
		agentRepository.New,
		agentService.New,
	)

	return nil
}
