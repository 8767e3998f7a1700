//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"luxe/config"
	"luxe/infras/calendar"
	"luxe/infras/otel"
	"luxe/infras/postgres"
	"luxe/infras/predictor"
	"luxe/infras/redis"
	"luxe/infras/s3"
	"luxe/shared/cache"
	"luxe/transport/http"
	"luxe/transport/http/middleware"
	"luxe/transport/http/router"

	bookingRepository "luxe/internal/domains/booking/repository"
	bookingService "luxe/internal/domains/booking/service"
	pricingService "luxe/internal/domains/pricing/service"
	roomRepository "luxe/internal/domains/room/repository"
	roomService "luxe/internal/domains/room/service"

	bookingHandler "luxe/internal/handlers/booking"
	pricingHandler "luxe/internal/handlers/pricing"
	roomHandler "luxe/internal/handlers/room"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	s3.New,
	calendar.New,
	predictor.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var pricingDomain = wire.NewSet(
	pricingService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
	pricingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	bookingHandler.New,
	pricingHandler.New,
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
