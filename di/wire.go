//go:build wireinject
// +build wireinject

package di

import (
	"furever/config"
	"furever/infras/jwt"
	"furever/infras/kafka"
	"furever/infras/mysql"
	"furever/infras/otel"
	"furever/infras/paymongo"
	"furever/infras/redis"
	"furever/permissions"
	"furever/shared/cache"
	"furever/transport/http"
	"furever/transport/http/middleware"
	"furever/transport/http/router"

	authService "furever/internal/domains/auth/service"
	availabilityRepository "furever/internal/domains/availability/repository"
	availabilityService "furever/internal/domains/availability/service"
	bookingRepository "furever/internal/domains/booking/repository"
	bookingService "furever/internal/domains/booking/service"
	outboxRepository "furever/internal/domains/outbox/repository"
	outboxService "furever/internal/domains/outbox/service"
	paymentRepository "furever/internal/domains/payment/repository"
	paymentService "furever/internal/domains/payment/service"
	petRepository "furever/internal/domains/pet/repository"
	providerRepository "furever/internal/domains/provider/repository"
	refundRepository "furever/internal/domains/refund/repository"
	refundService "furever/internal/domains/refund/service"
	"furever/internal/domains/schema"
	packageRepository "furever/internal/domains/servicepackage/repository"
	packageService "furever/internal/domains/servicepackage/service"
	userRepository "furever/internal/domains/user/repository"
	userService "furever/internal/domains/user/service"

	authHandler "furever/internal/handlers/auth"
	availabilityHandler "furever/internal/handlers/availability"
	bookingHandler "furever/internal/handlers/booking"
	paymentHandler "furever/internal/handlers/payment"
	packageHandler "furever/internal/handlers/servicepackage"
	userHandler "furever/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	mysql.New,
	wire.Bind(new(mysql.Txer), new(*mysql.Connection)),
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	paymongo.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var repositories = wire.NewSet(
	userRepository.New,
	providerRepository.New,
	petRepository.New,
	packageRepository.New,
	availabilityRepository.New,
	bookingRepository.New,
	paymentRepository.New,
	refundRepository.New,
	outboxRepository.New,
)

var services = wire.NewSet(
	authService.New,
	userService.New,
	packageService.New,
	availabilityService.New,
	bookingService.New,
	paymentService.New,
	refundService.New,
	outboxService.NewRelay,
	schema.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	packageHandler.New,
	availabilityHandler.New,
	router.New,
)

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		services,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		services,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeRefundRetrier() refundService.Refund {
	wire.Build(
		config.Get,
		mysql.New,
		wire.Bind(new(mysql.Txer), new(*mysql.Connection)),
		otel.New,
		redis.New,
		paymongo.New,
		cache.NewRedisCache,
		bookingRepository.New,
		paymentRepository.New,
		refundRepository.New,
		outboxRepository.New,
		refundService.New,
	)

	return nil
}
