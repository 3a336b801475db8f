package database

import (
	"fmt"
	"log/slog"
	"time"

	"walletlink/internal/config"
	"walletlink/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig, logLevel logger.LogLevel) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

// Models lists every persisted model in dependency order.
func Models() []interface{} {
	return []interface{}{
		&models.Family{},
		&models.User{},
		&models.Icon{},
		&models.Color{},
		&models.Account{},
		&models.Category{},
		&models.Transaction{},
		&models.Invitation{},
		&models.BlacklistedToken{},
		&models.AuditLog{},
	}
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(Models()...)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_users_email_lower ON users(LOWER(email))",
		"CREATE INDEX IF NOT EXISTS idx_transactions_family_datetime ON transactions(family_id, datetime DESC)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_user_datetime ON transactions(user_id, datetime DESC)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_account_type ON transactions(account_id, type)",
		"CREATE INDEX IF NOT EXISTS idx_categories_family_shared ON categories(family_id) WHERE shared",
		"CREATE INDEX IF NOT EXISTS idx_invitations_family_id ON invitations(family_id)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			slog.Warn("Failed to create index", "query", query, "error", err)
		}
	}

	return nil
}

// CleanupExpiredTokens removes revoked sessions and invitations past their expiry.
func (db *DB) CleanupExpiredTokens() (int64, error) {
	now := time.Now()

	tokens := db.DB.Where("expires_at < ?", now).Delete(&models.BlacklistedToken{})
	if tokens.Error != nil {
		return 0, fmt.Errorf("failed to cleanup expired blacklisted tokens: %w", tokens.Error)
	}

	invites := db.DB.Where("expires_at < ? AND accepted_at IS NULL", now).Delete(&models.Invitation{})
	if invites.Error != nil {
		return tokens.RowsAffected, fmt.Errorf("failed to cleanup expired invitations: %w", invites.Error)
	}

	return tokens.RowsAffected + invites.RowsAffected, nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*DB, error) {
	logLevel := logger.Warn
	if cfg.IsDevelopment() {
		logLevel = logger.Info
	}

	db, err := New(&cfg.Database, logLevel)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	migrated, err := RunMigrationsIfEnabled(sqlDB)
	if err != nil {
		slog.Warn("Migration runner failed, falling back to GORM AutoMigrate", "error", err)
	}
	if err != nil || !migrated {
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		slog.Warn("Failed to create some indexes", "error", err)
	}

	if err := SeedCatalog(db.DB); err != nil {
		return nil, err
	}

	slog.Info("Database initialized successfully")

	return db, nil
}
