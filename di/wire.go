//go:build wireinject
// +build wireinject

package di

import (
	"lagovibes/config"
	"lagovibes/infras/jwt"
	"lagovibes/infras/kafka"
	"lagovibes/infras/otel"
	"lagovibes/infras/postgres"
	"lagovibes/infras/redis"
	"lagovibes/infras/s3"
	"lagovibes/permissions"
	"lagovibes/shared/cache"
	"lagovibes/transport/http"
	"lagovibes/transport/http/middleware"
	"lagovibes/transport/http/router"

	"github.com/google/wire"

	authService "lagovibes/internal/domains/auth/service"
	availabilityService "lagovibes/internal/domains/availability/service"
	blockedDateRepository "lagovibes/internal/domains/blockeddate/repository"
	blockedDateService "lagovibes/internal/domains/blockeddate/service"
	extraServiceRepository "lagovibes/internal/domains/extraservice/repository"
	extraServiceService "lagovibes/internal/domains/extraservice/service"
	ownerRepository "lagovibes/internal/domains/owner/repository"
	ownerService "lagovibes/internal/domains/owner/service"
	propertyRepository "lagovibes/internal/domains/property/repository"
	propertyService "lagovibes/internal/domains/property/service"
	reservationRepository "lagovibes/internal/domains/reservation/repository"
	reservationService "lagovibes/internal/domains/reservation/service"
	userRepository "lagovibes/internal/domains/user/repository"
	userService "lagovibes/internal/domains/user/service"

	authHandler "lagovibes/internal/handlers/auth"
	availabilityHandler "lagovibes/internal/handlers/availability"
	blockedDateHandler "lagovibes/internal/handlers/blockeddate"
	extraServiceHandler "lagovibes/internal/handlers/extraservice"
	ownerHandler "lagovibes/internal/handlers/owner"
	propertyHandler "lagovibes/internal/handlers/property"
	reservationHandler "lagovibes/internal/handlers/reservation"
	userHandler "lagovibes/internal/handlers/user"
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
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var propertyDomain = wire.NewSet(
	propertyRepository.New,
	propertyService.New,
)

var ownerDomain = wire.NewSet(
	ownerRepository.New,
	ownerService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var blockedDateDomain = wire.NewSet(
	blockedDateRepository.New,
	blockedDateService.New,
)

var extraServiceDomain = wire.NewSet(
	extraServiceRepository.New,
	extraServiceService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityService.New,
)

var domains = wire.NewSet(
	authDomain,
	propertyDomain,
	ownerDomain,
	reservationDomain,
	blockedDateDomain,
	extraServiceDomain,
	availabilityDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	propertyHandler.New,
	ownerHandler.New,
	reservationHandler.New,
	blockedDateHandler.New,
	extraServiceHandler.New,
	availabilityHandler.New,
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
