package server

import (
	"log/slog"
	"strings"

	"walletlink/internal/config"
	"walletlink/internal/handlers"
	"walletlink/internal/middleware"
	"walletlink/internal/repositories"
	"walletlink/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

const jsonBodyLimit = "16K"

// Dependencies holds everything the router hands to handlers and middleware.
type Dependencies struct {
	Config            *config.Config
	DB                *gorm.DB
	Logger            *slog.Logger
	RateLimiter       *middleware.RateLimiter
	BlacklistedTokens repositories.BlacklistedTokenRepositoryInterface
	Users             repositories.UserRepositoryInterface

	TokenService       services.TokenServiceInterface
	AuthService        services.AuthServiceInterface
	AccountService     services.AccountServiceInterface
	CategoryService    services.CategoryServiceInterface
	TransactionService services.TransactionServiceInterface
	MemberService      services.MemberServiceInterface
	DashboardService   services.DashboardServiceInterface
	CatalogService     services.CatalogServiceInterface
}

// New builds the echo instance with the middleware chain and every API route.
func New(deps Dependencies) *echo.Echo {
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	prefix := strings.TrimRight(cfg.Server.APIPrefix, "/")
	avatarRoute := prefix + "/users/avatar"

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders(cfg.App.UploadURL))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.Server.CORSAllowOrigins,
		AllowCredentials: true,
		AllowHeaders: []string{
			echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept,
			echo.HeaderAuthorization, middleware.TraceIDHeader,
		},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimitWithConfig(echomw.BodyLimitConfig{
		Limit: jsonBodyLimit,
		Skipper: func(c echo.Context) bool {
			return c.Path() == avatarRoute
		},
	}))
	if deps.RateLimiter != nil {
		e.Use(deps.RateLimiter.Middleware())
	}
	e.Use(requestLogger(logger))

	healthHandler := handlers.NewHealthCheckHandler(deps.DB)
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	if cfg.App.UploadURL != "" && cfg.App.UploadDir != "" {
		e.Static(cfg.App.UploadURL, cfg.App.UploadDir)
	}

	authHandler := handlers.NewAuthHandler(deps.AuthService, deps.TokenService, cfg.Cookie, cfg.JWT.SessionDuration)
	accountHandler := handlers.NewAccountHandler(deps.AccountService)
	categoryHandler := handlers.NewCategoryHandler(deps.CategoryService)
	transactionHandler := handlers.NewTransactionHandler(deps.TransactionService)
	memberHandler := handlers.NewMemberHandler(deps.MemberService)
	dashboardHandler := handlers.NewDashboardHandler(deps.DashboardService)
	catalogHandler := handlers.NewCatalogHandler(deps.CatalogService)

	api := e.Group(prefix)
	requireAuth := middleware.RequireAuth(deps.TokenService, deps.BlacklistedTokens, deps.Users, cfg.Cookie.Name)

	users := api.Group("/users")
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)
	users.POST("/logout", authHandler.Logout)
	users.POST("/forgot-password", authHandler.ForgotPassword)
	users.POST("/reset-password/:token", authHandler.ResetPassword)
	users.GET("/me", authHandler.Me, requireAuth)
	users.POST("/update", authHandler.UpdateProfile, requireAuth)
	users.POST("/avatar", authHandler.UpdateAvatar, requireAuth)
	users.POST("/change-password", authHandler.ChangePassword, requireAuth)

	// Accepting an invitation happens before the invitee has a session.
	api.POST("/members/invite", memberHandler.AcceptInvite)

	protected := api.Group("", requireAuth)

	protected.GET("/accounts", accountHandler.ListAccounts)
	protected.POST("/accounts", accountHandler.CreateAccount)
	protected.GET("/accounts/:id", accountHandler.GetAccount)
	protected.POST("/accounts/:id", accountHandler.UpdateAccount)
	protected.DELETE("/accounts/:id", accountHandler.DeleteAccount)

	protected.GET("/categories", categoryHandler.ListCategories)
	protected.POST("/categories", categoryHandler.CreateCategory)
	protected.POST("/categories/:id", categoryHandler.UpdateCategory)
	protected.DELETE("/categories/:id", categoryHandler.DeleteCategory)

	protected.GET("/transactions", transactionHandler.ListTransactions)
	protected.POST("/transactions", transactionHandler.CreateTransaction)
	protected.GET("/transactions/:id", transactionHandler.GetTransaction)
	protected.POST("/transactions/:id", transactionHandler.UpdateTransaction)
	protected.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)

	protected.GET("/colors", catalogHandler.ListColors)
	protected.GET("/icons", catalogHandler.ListIcons)

	protected.GET("/members", memberHandler.ListMembers)
	protected.POST("/members", memberHandler.Invite)
	protected.GET("/members/activity", memberHandler.Activity, middleware.RequireAdmin())
	protected.GET("/members/:id", memberHandler.GetMember)
	protected.POST("/members/:id", memberHandler.UpdateMember)
	protected.DELETE("/members/:id", memberHandler.DeleteMember)

	protected.GET("/dashboard", dashboardHandler.Summary)
	protected.GET("/dashboard/account", dashboardHandler.Accounts)
	protected.GET("/dashboard/members", dashboardHandler.Members)
	protected.GET("/dashboard/monthly-income-expense", dashboardHandler.MonthlyIncomeExpense)
	protected.GET("/dashboard/transactions", dashboardHandler.LatestTransactions)
	protected.GET("/dashboard/category-breakdown", dashboardHandler.CategoryBreakdown)

	return e
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogUserAgent: true,
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			return path == "/health" || path == "/metrics"
		},
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request",
				slog.String("trace_id", middleware.GetTraceID(c)),
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
				slog.String("user_agent", v.UserAgent),
			)
			return nil
		},
	})
}
