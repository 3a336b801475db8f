package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"walletlink/internal/cache"
	"walletlink/internal/config"
	"walletlink/internal/database"
	"walletlink/internal/messaging"
	"walletlink/internal/middleware"
	"walletlink/internal/models"
	"walletlink/internal/repositories"
	"walletlink/internal/server"
	"walletlink/internal/services"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}

func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	userRepo := repositories.NewUserRepository(db.DB)
	familyRepo := repositories.NewFamilyRepository(db.DB)
	accountRepo := repositories.NewAccountRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	catalogRepo := repositories.NewCatalogRepository(db.DB)
	invitationRepo := repositories.NewInvitationRepository(db.DB)
	auditLogRepo := repositories.NewAuditLogRepository(db.DB)
	blacklistedTokenRepo := repositories.NewBlacklistedTokenRepository(db.DB)

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	auditLogger := services.NewAuditLogger(logger)
	auditService := services.NewAuditService(auditLogRepo, logger)

	colorCache := cache.NewLRU[[]models.Color](cfg.Cache.CatalogSize, cfg.Cache.CatalogTTL)
	iconCache := cache.NewLRU[[]models.Icon](cfg.Cache.CatalogSize, cfg.Cache.CatalogTTL)
	janitor := cache.NewJanitor(cfg.Cache.CatalogTTL, colorCache, iconCache)

	mailer, closeMailer, err := newMailer(cfg, auditLogger, metrics, logger)
	if err != nil {
		return err
	}
	defer closeMailer()

	avatars, err := services.NewDiskAvatarStorage(cfg.App.UploadDir, cfg.App.UploadURL, cfg.App.MaxAvatarSize)
	if err != nil {
		return err
	}

	passwordService := services.NewPasswordService(cfg.Security.BCryptCost, cfg.Security.PasswordMinLength)
	tokenService := services.NewTokenService(&cfg.JWT)
	catalogService := services.NewCatalogService(catalogRepo, colorCache, iconCache, metrics, logger)

	rateLimiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)

	router := server.New(server.Dependencies{
		Config:            cfg,
		DB:                db.DB,
		Logger:            logger,
		RateLimiter:       rateLimiter,
		BlacklistedTokens: blacklistedTokenRepo,
		Users:             userRepo,
		TokenService:      tokenService,
		AuthService: services.NewAuthService(
			userRepo, familyRepo, blacklistedTokenRepo, passwordService, tokenService,
			auditService, auditLogger, mailer, avatars, metrics,
			cfg.App.ClientURL, cfg.Security.ResetTokenDuration, logger,
		),
		AccountService:  services.NewAccountService(accountRepo, transactionRepo, userRepo, catalogService, metrics, logger),
		CategoryService: services.NewCategoryService(categoryRepo, transactionRepo, catalogService, metrics, logger),
		TransactionService: services.NewTransactionService(
			transactionRepo, accountRepo, categoryRepo, userRepo, metrics, logger,
		),
		MemberService: services.NewMemberService(
			userRepo, invitationRepo, tokenService, passwordService, mailer,
			auditService, auditLogger, metrics,
			cfg.App.ClientURL, cfg.JWT.InviteDuration, logger,
		),
		DashboardService: services.NewDashboardService(accountRepo, transactionRepo, auditLogger, metrics, logger),
		CatalogService:   catalogService,
	})

	httpServer := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting WalletLink API",
			"address", httpServer.Addr,
			"environment", cfg.Server.Environment,
			"api_prefix", cfg.Server.APIPrefix,
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		return runCleanup(gctx, db, auditLogRepo, cfg.App, logger)
	})
	g.Go(func() error { return janitor.Run(gctx) })
	g.Go(func() error { return rateLimiter.Run(gctx) })

	return g.Wait()
}

// newMailer publishes to the AMQP mail queue when configured, otherwise logs outgoing mail.
func newMailer(cfg *config.Config, auditLogger services.AuditLoggerInterface, metrics services.MetricsRecorderInterface, logger *slog.Logger) (services.MailerInterface, func(), error) {
	if cfg.AMQP.URL == "" {
		logger.Warn("AMQP_URL not set, outgoing mail will only be logged")
		return services.NewLogMailer(logger), func() {}, nil
	}

	client, err := messaging.Dial(cfg.AMQP.URL, cfg.AMQP.ExchangeName, cfg.AMQP.MailQueue)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Connected to mail queue", "exchange", cfg.AMQP.ExchangeName, "queue", cfg.AMQP.MailQueue)

	closeFn := func() {
		if err := client.Close(); err != nil {
			logger.Warn("Failed to close AMQP client", "error", err)
		}
	}
	return services.NewQueueMailer(client, auditLogger, metrics), closeFn, nil
}

// runCleanup periodically drops expired sessions and invitations, and audit entries older than the retention window.
func runCleanup(ctx context.Context, db *database.DB, auditLogs repositories.AuditLogRepositoryInterface, cfg config.AppConfig, logger *slog.Logger) error {
	interval := cfg.TokenCleanup
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			removed, err := db.CleanupExpiredTokens()
			if err != nil {
				logger.Error("Failed to cleanup expired tokens", "error", err)
			} else if removed > 0 {
				logger.Info("Cleaned up expired tokens", "count", removed)
			}

			if cfg.AuditRetention <= 0 {
				continue
			}
			pruned, err := auditLogs.DeleteOlderThan(cfg.AuditRetention)
			if err != nil {
				logger.Error("Failed to prune audit logs", "error", err)
			} else if pruned > 0 {
				logger.Info("Pruned audit logs", "count", pruned, "retention", cfg.AuditRetention)
			}
		}
	}
}
