package main

import (
	"context"
	"log/slog"
	"os"

	"localdeal/config"
	"localdeal/internal/delivery"
	"localdeal/internal/delivery/api"
	apimiddleware "localdeal/internal/delivery/api/middleware"
	"localdeal/internal/delivery/api/router/handler"
	"localdeal/internal/domain/service"
	"localdeal/internal/infra/auth"
	"localdeal/internal/infra/cache"
	"localdeal/internal/infra/firebase"
	logs "localdeal/internal/infra/log"
	"localdeal/internal/infra/notification"
	"localdeal/internal/infra/persistence/postgres"
	"localdeal/internal/infra/pubsub"
	"localdeal/internal/infra/qrcode"
	"localdeal/internal/infra/storage"
	"localdeal/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.NewRedis,
		firebase.NewApp,
		firebase.NewAuthClient,
		firebase.NewMessagingClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewTransactionManager,
			postgres.NewCityRepository,
			postgres.NewBusinessRepository,
			postgres.NewOfferRepository,
			postgres.NewFavoriteRepository,
			postgres.NewReviewRepository,
			postgres.NewDeviceRepository,
			postgres.NewNotificationRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			auth.NewFirebaseVerifier,
			cache.NewProfileCache,
			notification.NewFirebaseService,
			storage.New,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService builds the QR encoder from config, defaults are filled in by config.New
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewProfileService,
			impl.NewCityService,
			impl.NewOfferService,
			impl.NewOwnerOfferService,
			impl.NewBusinessService,
			impl.NewFavoriteService,
			impl.NewReviewService,
			impl.NewDeviceService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewProfileHandler,
			handler.NewCityHandler,
			handler.NewOfferHandler,
			handler.NewOwnerOfferHandler,
			handler.NewBusinessHandler,
			handler.NewFavoriteHandler,
			handler.NewReviewHandler,
			handler.NewDeviceHandler,
			handler.NewNotificationHandler,
			handler.NewImageHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
