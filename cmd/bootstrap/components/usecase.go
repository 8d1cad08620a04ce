package components

import (
	"neighbiz/internal/pkg/clock"
	"neighbiz/internal/pkg/config"
	"neighbiz/internal/usecase"
	"neighbiz/internal/usecase/commands"
	"neighbiz/internal/usecase/queries"
	"neighbiz/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseSettingsOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseSettingsOption = fx.Provide(
	NewAuthSettings,
	NewCouponSettings,
	NewPartnershipSettings,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthUseCase,
		commands.NewStoreUseCase,
		commands.NewPolicyUseCase,
		commands.NewProposalUseCase,
		commands.NewPartnershipUseCase,
		commands.NewCouponUseCase,
		NewUploadCommands,
		commands.NewMaintenanceUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAccountQueries,
		queries.NewStoreQueries,
		queries.NewPolicyQueries,
		queries.NewProposalQueries,
		queries.NewPartnershipQueries,
		queries.NewCouponQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewAuthSettings(cfg config.Config) commands.AuthSettings {
	return commands.AuthSettings{
		OTPTTL:        cfg.OTP.TTL,
		OTPCodeLength: cfg.OTP.CodeLength,
	}
}

func NewCouponSettings(cfg config.Config) commands.CouponSettings {
	return commands.CouponSettings{
		Location:      cfg.App.Location(),
		Validity:      cfg.Coupon.Validity,
		AllowExtended: cfg.Coupon.AllowExtended,
	}
}

func NewPartnershipSettings(cfg config.Config) queries.PartnershipSettings {
	return queries.PartnershipSettings{
		BaseURL:       cfg.App.BaseURL,
		Location:      cfg.App.Location(),
		AllowExtended: cfg.Coupon.AllowExtended,
		QRURLTTL:      cfg.Storage.PresignTTL,
	}
}

func NewUploadCommands(storage shared.ObjectStorage, clk clock.Clock, cfg config.Config) commands.UploadCommands {
	return commands.NewUploadUseCase(storage, clk, cfg.Storage.PresignTTL)
}
