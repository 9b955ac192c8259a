//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"hostal/config"
	"hostal/infras/jwt"
	"hostal/infras/kafka"
	"hostal/infras/mailer"
	"hostal/infras/otel"
	"hostal/infras/postgres"
	"hostal/infras/redis"
	"hostal/infras/s3"
	"hostal/infras/webpay"
	"hostal/permissions"
	"hostal/shared/cache"
	"hostal/transport/http"
	"hostal/transport/http/middleware"
	"hostal/transport/http/router"

	authService "hostal/internal/domains/auth/service"
	businessRepository "hostal/internal/domains/business/repository"
	businessService "hostal/internal/domains/business/service"
	housekeepingRepository "hostal/internal/domains/housekeeping/repository"
	housekeepingService "hostal/internal/domains/housekeeping/service"
	paymentRepository "hostal/internal/domains/payment/repository"
	paymentService "hostal/internal/domains/payment/service"
	qraccessRepository "hostal/internal/domains/qraccess/repository"
	qraccessService "hostal/internal/domains/qraccess/service"
	reservationRepository "hostal/internal/domains/reservation/repository"
	reservationService "hostal/internal/domains/reservation/service"
	roomRepository "hostal/internal/domains/room/repository"
	roomService "hostal/internal/domains/room/service"
	staffRepository "hostal/internal/domains/staff/repository"
	staffService "hostal/internal/domains/staff/service"
	subscriptionRepository "hostal/internal/domains/subscription/repository"
	subscriptionService "hostal/internal/domains/subscription/service"
	taxdocRepository "hostal/internal/domains/taxdoc/repository"
	taxdocService "hostal/internal/domains/taxdoc/service"
	userRepository "hostal/internal/domains/user/repository"
	userService "hostal/internal/domains/user/service"

	authHandler "hostal/internal/handlers/auth"
	businessHandler "hostal/internal/handlers/business"
	housekeepingHandler "hostal/internal/handlers/housekeeping"
	paymentHandler "hostal/internal/handlers/payment"
	qraccessHandler "hostal/internal/handlers/qraccess"
	reservationHandler "hostal/internal/handlers/reservation"
	roomHandler "hostal/internal/handlers/room"
	staffHandler "hostal/internal/handlers/staff"
	subscriptionHandler "hostal/internal/handlers/subscription"
	taxdocHandler "hostal/internal/handlers/taxdoc"
	userHandler "hostal/internal/handlers/user"
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
	mailer.New,
	s3.New,
	webpay.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
	provideAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var accountDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var businessDomain = wire.NewSet(
	businessRepository.New,
	businessService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var staffDomain = wire.NewSet(
	staffRepository.New,
	staffService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var housekeepingDomain = wire.NewSet(
	housekeepingRepository.New,
	housekeepingService.New,
)

var subscriptionDomain = wire.NewSet(
	subscriptionRepository.New,
	subscriptionRepository.NewPlan,
	subscriptionService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var taxdocDomain = wire.NewSet(
	taxdocRepository.New,
	taxdocService.New,
)

var qraccessDomain = wire.NewSet(
	qraccessRepository.New,
	qraccessService.New,
)

var domains = wire.NewSet(
	accountDomain,
	businessDomain,
	roomDomain,
	staffDomain,
	reservationDomain,
	housekeepingDomain,
	subscriptionDomain,
	paymentDomain,
	taxdocDomain,
	qraccessDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	businessHandler.New,
	roomHandler.New,
	staffHandler.New,
	reservationHandler.New,
	housekeepingHandler.New,
	subscriptionHandler.New,
	paymentHandler.New,
	taxdocHandler.New,
	qraccessHandler.New,
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
