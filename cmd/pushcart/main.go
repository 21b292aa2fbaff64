package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"pushcart/config"
	"pushcart/internal/delivery"
	"pushcart/internal/delivery/http"
	"pushcart/internal/delivery/http/middleware"
	"pushcart/internal/delivery/http/router/handler"
	"pushcart/internal/domain/service"
	"pushcart/internal/infra/auth"
	logs "pushcart/internal/infra/log"
	"pushcart/internal/infra/notification"
	"pushcart/internal/infra/persistence/postgres"
	"pushcart/internal/infra/qrcode"
	"pushcart/internal/infra/realtime"
	"pushcart/internal/infra/storage"
	"pushcart/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		realtime.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewVendorRepository,
			postgres.NewVendorLocationRepository,
			postgres.NewCustomerRepository,
			postgres.NewProductRepository,
			postgres.NewFeedbackRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newAlertService,
			newQRCodeService,
			newPhotoStore,
		),
	)
}

// newAlertService creates the Firebase alert service when configured.
func newAlertService(ctx context.Context, cfg *config.Config) (service.AlertService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Arrival alerts are optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newPhotoStore opens the photo bucket and ties its lifetime to the app.
func newPhotoStore(lc fx.Lifecycle, ctx context.Context, cfg *config.Config) (service.PhotoStore, error) {
	bucketURL := "mem://photos"
	publicBaseURL := "/photos"
	if cfg.PhotoStore != nil && cfg.PhotoStore.BucketURL != "" {
		bucketURL = cfg.PhotoStore.BucketURL
		publicBaseURL = cfg.PhotoStore.PublicBaseURL
	}

	store, closeBucket, err := storage.NewBlobPhotoStore(ctx, bucketURL, publicBaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open photo store: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return closeBucket()
		},
	})

	return store, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewVendorService,
			impl.NewLocationService,
			impl.NewAdminService,
			impl.NewProductService,
			impl.NewFeedbackService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewVendorHandler,
			handler.NewLocationHandler,
			handler.NewProductHandler,
			handler.NewAdminHandler,
			handler.NewFeedbackHandler,
			handler.NewStreamHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
				os.Exit(1)
			}
		}()
	}
}
