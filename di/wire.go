//go:build wireinject
// +build wireinject

package di

import (
	"tzconv/config"
	"tzconv/infras/mongo"
	"tzconv/infras/otel"
	"tzconv/infras/redis"
	"tzconv/shared/cache"
	"tzconv/shared/metrics"
	"tzconv/shared/timezone"
	"tzconv/transport/http"
	"tzconv/transport/http/middleware"
	"tzconv/transport/http/router"

	conversionService "tzconv/internal/domains/conversion/service"
	savedTimezoneRepository "tzconv/internal/domains/savedtimezone/repository"
	savedTimezoneService "tzconv/internal/domains/savedtimezone/service"

	"github.com/google/wire"

	savedTimezoneHandler "tzconv/internal/handlers/savedtimezone"
	timezoneHandler "tzconv/internal/handlers/timezone"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	mongo.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	metrics.New,
	timezone.NewSystemClock,
)

var conversionDomain = wire.NewSet(
	conversionService.New,
)

var savedTimezoneDomain = wire.NewSet(
	savedTimezoneRepository.New,
	savedTimezoneService.New,
)

var domains = wire.NewSet(
	conversionDomain,
	savedTimezoneDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	timezoneHandler.New,
	savedTimezoneHandler.New,
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
