package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"neighbiz/internal/handler/api"
	"neighbiz/internal/infra/qrcode"
	"neighbiz/internal/infra/scheduler"
	"neighbiz/internal/infra/sms"
	"neighbiz/internal/infra/storage"
	"neighbiz/internal/infra/throttle"
	"neighbiz/internal/pkg/clock"
	"neighbiz/internal/pkg/config"
	"neighbiz/internal/usecase/commands"
	"neighbiz/internal/usecase/shared"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		clock.NewRealClock,
		NewLocation,
		NewStorage,
		NewFilesHandler,
		sms.NewSender,
		fx.Annotate(
			NewSendLimiter,
			fx.As(new(commands.SendLimiter)),
		),
		fx.Annotate(
			qrcode.NewRenderer,
			fx.As(new(shared.QRRenderer)),
		),
		NewScheduler,
	),
	fx.Invoke(func(*scheduler.Scheduler) {}),
)

func NewLocation(cfg config.Config) *time.Location {
	return cfg.App.Location()
}

func NewStorage(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.ObjectStorage, storage.Provider, error) {
	provider, err := storage.NewProvider(cfg.Storage)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("object storage ready", "provider", cfg.Storage.Provider)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return provider.Close()
		},
	})
	return provider, provider, nil
}

// NewFilesHandler serves signed URLs for local storage; nil for remote providers.
func NewFilesHandler(provider storage.Provider) *api.FilesHandler {
	local, ok := provider.(*storage.LocalStorage)
	if !ok {
		return nil
	}
	return api.NewFilesHandler(local)
}

func NewSendLimiter(cfg config.Config) *throttle.KeyedLimiter {
	return throttle.NewKeyedLimiter(cfg.OTP.SendInterval, cfg.OTP.SendBurst)
}

func NewScheduler(lc fx.Lifecycle, cfg config.Config, maintenance commands.MaintenanceCommands, loc *time.Location, logger *slog.Logger) *scheduler.Scheduler {
	s := scheduler.New(maintenance, loc, logger)
	if !cfg.Coupon.SweepEnabled {
		return s
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return s.Start(cfg.Coupon.SweepSpec)
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
	return s
}
