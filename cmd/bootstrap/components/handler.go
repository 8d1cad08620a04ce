package components

import (
	"neighbiz/internal/handler"
	"neighbiz/internal/handler/api"
	"neighbiz/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewStoreHandler,
		api.NewPolicyHandler,
		api.NewProposalHandler,
		api.NewPartnershipHandler,
		api.NewCouponHandler,
		api.NewUploadHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
