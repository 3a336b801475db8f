package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	Security SecurityConfig
	App      AppConfig
	AMQP     AMQPConfig
	SMTP     SMTPConfig
	Cache    CacheConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	APIPrefix        string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	SessionDuration time.Duration
	InviteDuration  time.Duration
	PrivateKey      *rsa.PrivateKey
	PublicKey       *rsa.PublicKey
	Issuer          string
}

// CookieConfig describes the session cookie handed to browsers.
type CookieConfig struct {
	Name     string
	Domain   string
	Secure   bool
	SameSite http.SameSite
}

type SecurityConfig struct {
	BCryptCost         int
	RateLimitPerSecond int
	RateLimitBurst     int
	PasswordMinLength  int
	ResetTokenDuration time.Duration
}

type AppConfig struct {
	ClientURL     string
	UploadDir     string
	UploadURL     string
	MaxAvatarSize  int64
	TokenCleanup   time.Duration
	AuditRetention time.Duration
}

// AMQPConfig selects the outbound mail transport. An empty URL keeps mail in the process log.
type AMQPConfig struct {
	URL          string
	ExchangeName string
	MailQueue    string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type CacheConfig struct {
	CatalogSize int
	CatalogTTL  time.Duration
}

func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Environment:     getEnv("APP_ENV", "development"),
			APIPrefix:       getEnv("API_PREFIX", "/api/v1"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: LoadDatabaseConfig(),
		JWT: JWTConfig{
			SessionDuration: getDurationEnv("JWT_SESSION_DURATION", 7*24*time.Hour),
			InviteDuration:  getDurationEnv("INVITE_TOKEN_DURATION", 7*24*time.Hour),
			Issuer:          getEnv("JWT_ISSUER", "walletlink-api"),
		},
		Cookie: CookieConfig{
			Name:   getEnv("COOKIE_NAME", "token"),
			Domain: getEnv("COOKIE_DOMAIN", ""),
			Secure: getBoolEnv("COOKIE_SECURE", false),
		},
		Security: SecurityConfig{
			BCryptCost:         getIntEnv("BCRYPT_COST", 12),
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 10),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 20),
			PasswordMinLength:  getIntEnv("PASSWORD_MIN_LENGTH", 8),
			ResetTokenDuration: getDurationEnv("RESET_TOKEN_DURATION", time.Hour),
		},
		App: AppConfig{
			ClientURL:      strings.TrimRight(getEnv("CLIENT_URL", "http://localhost:5173"), "/"),
			UploadDir:      getEnv("UPLOAD_DIR", "./uploads"),
			UploadURL:      strings.TrimRight(getEnv("UPLOAD_URL", "/uploads"), "/"),
			MaxAvatarSize:  int64(getIntEnv("MAX_AVATAR_SIZE", 2<<20)),
			TokenCleanup:   getDurationEnv("TOKEN_CLEANUP_INTERVAL", time.Hour),
			AuditRetention: getDurationEnv("AUDIT_RETENTION", 90*24*time.Hour),
		},
		AMQP: LoadAMQPConfig(),
		SMTP: LoadSMTPConfig(),
		Cache: CacheConfig{
			CatalogSize: getIntEnv("CATALOG_CACHE_SIZE", 16),
			CatalogTTL:  getDurationEnv("CATALOG_CACHE_TTL", 10*time.Minute),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()
	config.Cookie.SameSite = parseSameSite(getEnv("COOKIE_SAMESITE", "lax"))
	if config.IsProduction() {
		config.Cookie.Secure = true
	}

	var err error
	config.JWT.PrivateKey, config.JWT.PublicKey, err = config.loadJWTKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to load RSA keys: %w", err)
	}

	return config, nil
}

// LoadDatabaseConfig reads only the DB_* variables, for tools that need no keys or secrets.
func LoadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:            getEnv("DB_HOST", "localhost"),
		Port:            getEnv("DB_PORT", "5432"),
		User:            getEnv("DB_USER", "walletlink"),
		Password:        getEnv("DB_PASSWORD", "walletlink"),
		Name:            getEnv("DB_NAME", "walletlink"),
		SSLMode:         getEnv("DB_SSL_MODE", "disable"),
		MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
		MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
	}
}

func LoadAMQPConfig() AMQPConfig {
	return AMQPConfig{
		URL:          getEnv("AMQP_URL", ""),
		ExchangeName: getEnv("AMQP_EXCHANGE", "walletlink"),
		MailQueue:    getEnv("AMQP_MAIL_QUEUE", "walletlink.mail"),
	}
}

func LoadSMTPConfig() SMTPConfig {
	return SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     getIntEnv("SMTP_PORT", 587),
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", "no-reply@walletlink.local"),
	}
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// URL returns the connection string in URL form, as expected by lib/pq and golang-migrate.
func (c *DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.Name,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

// Address is the listen address of the HTTP server.
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func parseSameSite(value string) http.SameSite {
	switch strings.ToLower(value) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// loadJWTKeys loads the RSA pair used for session and invitation tokens.
// Keys come from JWT_PRIVATE_KEY / JWT_PUBLIC_KEY (base64 PEM). Outside production a fresh
// pair is generated when they are missing, which invalidates sessions on restart.
func (c *Config) loadJWTKeys() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKeyB64 := os.Getenv("JWT_PRIVATE_KEY")
	publicKeyB64 := os.Getenv("JWT_PUBLIC_KEY")

	if privateKeyB64 != "" && publicKeyB64 != "" {
		slog.Info("Loading RSA keypair from environment variables")
		return loadKeysFromEnvVars(privateKeyB64, publicKeyB64)
	}

	if c.IsProduction() {
		return nil, nil, errors.New("JWT_PRIVATE_KEY and JWT_PUBLIC_KEY environment variables must be set in production environments")
	}

	slog.Warn("Generating ephemeral RSA keypair for JWT signing", "environment", c.Server.Environment)
	return GenerateRSAKeyPair()
}

func loadKeysFromEnvVars(privateKeyB64, publicKeyB64 string) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKeyBytes, err := base64.StdEncoding.DecodeString(privateKeyB64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode JWT_PRIVATE_KEY: %w", err)
	}

	publicKeyBytes, err := base64.StdEncoding.DecodeString(publicKeyB64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode JWT_PUBLIC_KEY: %w", err)
	}

	privateKey, err := loadRSAPrivateKey(privateKeyBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	publicKey, err := loadRSAPublicKey(publicKeyBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	return privateKey, publicKey, nil
}

func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")
	if corsOrigins == "" {
		// Cookies require an explicit origin, so default to the client URL instead of "*".
		return []string{c.App.ClientURL}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	return origins
}

// GenerateRSAKeyPair generates a new RSA key pair
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}

	return privateKey, &privateKey.PublicKey, nil
}

func loadRSAPrivateKey(pemData []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err == nil {
		return privateKey, nil
	}

	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("not an RSA private key")
	}
	return rsaKey, nil
}

func loadRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	publicKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPublicKey, ok := publicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}

	return rsaPublicKey, nil
}
