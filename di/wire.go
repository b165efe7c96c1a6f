//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"tzatlas/config"
	"tzatlas/infras/otel"
	"tzatlas/infras/redis"
	"tzatlas/shared/cache"
	"tzatlas/transport/http"
	"tzatlas/transport/http/middleware"
	"tzatlas/transport/http/router"

	scheduleService "tzatlas/internal/domains/schedule/service"
	zoneService "tzatlas/internal/domains/zone/service"
	scheduleHandler "tzatlas/internal/handlers/schedule"
	zoneHandler "tzatlas/internal/handlers/zone"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var zoneDomain = wire.NewSet(
	zoneService.New,
)

var scheduleDomain = wire.NewSet(
	scheduleService.New,
)

var domains = wire.NewSet(
	zoneDomain,
	scheduleDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	zoneHandler.New,
	scheduleHandler.New,
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
