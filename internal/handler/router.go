package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"neighbiz/internal/domain/user"
	"neighbiz/internal/handler/api"
	"neighbiz/internal/handler/middleware"
	"neighbiz/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	AuthMiddleware *middleware.AuthMiddleware

	Auth        *api.AuthHandler
	Store       *api.StoreHandler
	Policy      *api.PolicyHandler
	Proposal    *api.ProposalHandler
	Partnership *api.PartnershipHandler
	Coupon      *api.CouponHandler
	Upload      *api.UploadHandler
	// Files is nil unless local storage is configured.
	Files *api.FilesHandler `optional:"true"`
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := p.AuthMiddleware.RequireAuth()
	ownerOnly := p.AuthMiddleware.RequireKind(user.KindOwner)
	consumerOnly := p.AuthMiddleware.RequireKind(user.KindConsumer)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/otp/request", Handler: p.Auth.RequestOTP},
				{Method: http.MethodPost, Path: "/otp/verify", Handler: p.Auth.VerifyOTP},
				{Method: http.MethodPost, Path: "/owner/signup", Handler: p.Auth.OwnerSignup},
				{Method: http.MethodPost, Path: "/owner/login", Handler: p.Auth.OwnerLogin},
				{Method: http.MethodPost, Path: "/owner/find-username", Handler: p.Auth.FindUsername},
				{Method: http.MethodPost, Path: "/owner/reset-password", Handler: p.Auth.ResetPassword},
				{Method: http.MethodPost, Path: "/refresh", Handler: p.Auth.Refresh},
				{Method: http.MethodPost, Path: "/logout", Handler: p.Auth.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: p.Auth.Me},
				{Method: http.MethodPost, Path: "/owner/change-password", Handler: p.Auth.ChangePassword, Mw: []gin.HandlerFunc{ownerOnly}},
			})
		}

		// Public landing behind the partnership QR code
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/issue/:slug", Handler: p.Partnership.IssueLanding},
		})

		owner := apiGroup.Group("")
		owner.Use(requireAuth, ownerOnly)
		{
			addRoutes(owner.Group("/stores"), []route{
				{Method: http.MethodGet, Path: "", Handler: p.Store.Search},
				{Method: http.MethodGet, Path: "/me", Handler: p.Store.GetMine},
				{Method: http.MethodPatch, Path: "/me", Handler: p.Store.UpdateMine},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Store.Get},
			})

			addRoutes(owner.Group("/policies"), []route{
				{Method: http.MethodPost, Path: "", Handler: p.Policy.Create},
				{Method: http.MethodGet, Path: "/me", Handler: p.Policy.GetMine},
				{Method: http.MethodPatch, Path: "/me", Handler: p.Policy.Update},
				{Method: http.MethodDelete, Path: "/me", Handler: p.Policy.Deactivate},
			})

			addRoutes(owner.Group("/proposals"), []route{
				{Method: http.MethodPost, Path: "", Handler: p.Proposal.Create},
				{Method: http.MethodPost, Path: "/cancel", Handler: p.Proposal.Cancel},
				{Method: http.MethodGet, Path: "/received", Handler: p.Proposal.ListReceived},
				{Method: http.MethodGet, Path: "/sent", Handler: p.Proposal.ListSent},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Proposal.Get},
				{Method: http.MethodPost, Path: "/:id/respond", Handler: p.Proposal.Respond},
			})

			addRoutes(owner.Group("/partnerships"), []route{
				{Method: http.MethodGet, Path: "/me", Handler: p.Partnership.GetMine},
				{Method: http.MethodGet, Path: "/mypage", Handler: p.Partnership.MyPage},
				{Method: http.MethodPost, Path: "/change-requests", Handler: p.Partnership.RequestChange},
				{Method: http.MethodPost, Path: "/change-requests/:id/respond", Handler: p.Partnership.RespondChange},
			})

			addRoutes(owner.Group("/uploads"), []route{
				{Method: http.MethodPost, Path: "/presign", Handler: p.Upload.Presign},
			})
		}

		coupons := apiGroup.Group("/coupons")
		coupons.Use(requireAuth, consumerOnly)
		{
			addRoutes(coupons, []route{
				{Method: http.MethodPost, Path: "/issue", Handler: p.Coupon.Issue},
				{Method: http.MethodPost, Path: "/use", Handler: p.Coupon.Use},
				{Method: http.MethodGet, Path: "/me", Handler: p.Coupon.ListMine},
			})
		}

		if p.Files != nil {
			// Authorized by the URL signature, not a token
			addRoutes(apiGroup.Group("/files"), []route{
				{Method: http.MethodGet, Path: "/*key", Handler: p.Files.Download},
				{Method: http.MethodPut, Path: "/*key", Handler: p.Files.Upload},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
