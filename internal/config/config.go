package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Auth      AuthConfig
	Numbering NumberingConfig
	S3        S3Config
	Email     EmailConfig
	Log       LogConfig
	CORS      CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// StoreConfig selects the record store backend.
type StoreConfig struct {
	Driver string `mapstructure:"driver"`
	// AllowEphemeral lets the server run on the memory store, whose records
	// and invoice counter vanish on restart.
	AllowEphemeral bool `mapstructure:"allow_ephemeral"`
}

// ErrEphemeralStore is returned when a durable record store is required.
var ErrEphemeralStore = errors.New("the memory store does not persist the invoice counter; use postgres or redis")

// Persistent reports whether records survive a process restart.
func (s *StoreConfig) Persistent() bool {
	return s.Driver != StoreMemory
}

// RequirePersistent fails on the memory store unless AllowEphemeral is set.
func (s *StoreConfig) RequirePersistent() error {
	if !s.Persistent() && !s.AllowEphemeral {
		return ErrEphemeralStore
	}
	return nil
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// RedisConfig holds Redis connection and locking settings.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Prefix   string        `mapstructure:"prefix"`
	LockTTL  time.Duration `mapstructure:"lock_ttl"`
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret            string        `mapstructure:"secret"`
	AccessTokenExpiry time.Duration `mapstructure:"access_expiry"`
	Issuer            string        `mapstructure:"issuer"`
}

// AuthConfig holds the credentials of the single user.
type AuthConfig struct {
	Username     string `mapstructure:"username"`
	PasswordHash string `mapstructure:"password_hash"`
}

// NumberingConfig controls invoice number generation.
type NumberingConfig struct {
	// AprilCutover starts the fiscal year label in April instead of January.
	AprilCutover bool `mapstructure:"april_cutover"`
}

// S3Config holds AWS S3 settings for the invoice archive.
type S3Config struct {
	Enabled       bool   `mapstructure:"enabled"`
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the GSTINV_ prefix.
// A .env file in the working directory is loaded first when present; variables
// already set in the environment win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("GSTINV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	v.SetDefault("store.driver", StorePostgres)
	v.SetDefault("store.allow_ephemeral", false)

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "gstinvoice")
	v.SetDefault("db.password", "gstinvoice_secret")
	v.SetDefault("db.name", "gstinvoice_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 10)
	v.SetDefault("db.max_idle", 5)

	// Redis defaults
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "gstinv:")
	v.SetDefault("redis.lock_ttl", "5s")

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "12h")
	v.SetDefault("jwt.issuer", "gstinvoice")

	v.SetDefault("auth.username", "admin")
	v.SetDefault("auth.password_hash", "")

	v.SetDefault("numbering.april_cutover", false)

	// S3 defaults
	v.SetDefault("s3.enabled", false)
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "gstinvoice-archive")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_expiry", 604800)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "invoices@example.com")
	v.SetDefault("email.from_name", "GST Invoices")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:5173,http://127.0.0.1:5173,http://localhost:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "GSTINV_SERVER_PORT",
		"server.read_timeout":     "GSTINV_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "GSTINV_SERVER_WRITE_TIMEOUT",
		"server.environment":      "GSTINV_SERVER_ENVIRONMENT",
		"store.driver":            "GSTINV_STORE_DRIVER",
		"store.allow_ephemeral":   "GSTINV_STORE_ALLOW_EPHEMERAL",
		"db.host":                 "GSTINV_DB_HOST",
		"db.port":                 "GSTINV_DB_PORT",
		"db.user":                 "GSTINV_DB_USER",
		"db.password":             "GSTINV_DB_PASSWORD",
		"db.name":                 "GSTINV_DB_NAME",
		"db.sslmode":              "GSTINV_DB_SSLMODE",
		"db.max_open":             "GSTINV_DB_MAX_OPEN",
		"db.max_idle":             "GSTINV_DB_MAX_IDLE",
		"redis.addr":              "GSTINV_REDIS_ADDR",
		"redis.password":          "GSTINV_REDIS_PASSWORD",
		"redis.db":                "GSTINV_REDIS_DB",
		"redis.prefix":            "GSTINV_REDIS_PREFIX",
		"redis.lock_ttl":          "GSTINV_REDIS_LOCK_TTL",
		"jwt.secret":              "GSTINV_JWT_SECRET",
		"jwt.access_expiry":       "GSTINV_JWT_ACCESS_EXPIRY",
		"jwt.issuer":              "GSTINV_JWT_ISSUER",
		"auth.username":           "GSTINV_AUTH_USERNAME",
		"auth.password_hash":      "GSTINV_AUTH_PASSWORD_HASH",
		"numbering.april_cutover": "GSTINV_NUMBERING_APRIL_CUTOVER",
		"s3.enabled":              "GSTINV_S3_ENABLED",
		"s3.region":               "GSTINV_S3_REGION",
		"s3.bucket":               "GSTINV_S3_BUCKET",
		"s3.endpoint":             "GSTINV_S3_ENDPOINT",
		"s3.access_key":           "GSTINV_S3_ACCESS_KEY",
		"s3.secret_key":           "GSTINV_S3_SECRET_KEY",
		"s3.presign_expiry":       "GSTINV_S3_PRESIGN_EXPIRY",
		"email.provider":          "GSTINV_EMAIL_PROVIDER",
		"email.region":            "GSTINV_EMAIL_REGION",
		"email.from_address":      "GSTINV_EMAIL_FROM_ADDRESS",
		"email.from_name":         "GSTINV_EMAIL_FROM_NAME",
		"log.level":               "GSTINV_LOG_LEVEL",
		"log.format":              "GSTINV_LOG_FORMAT",
		"cors.allowed_origins":    "GSTINV_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Platforms like Railway or Render set PORT. Use it unless GSTINV_SERVER_PORT is set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("GSTINV_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Store = StoreConfig{
		Driver:         strings.ToLower(v.GetString("store.driver")),
		AllowEphemeral: v.GetBool("store.allow_ephemeral"),
	}
	switch cfg.Store.Driver {
	case StoreMemory, StorePostgres, StoreRedis:
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Redis = RedisConfig{
		Addr:     v.GetString("redis.addr"),
		Password: v.GetString("redis.password"),
		DB:       v.GetInt("redis.db"),
		Prefix:   v.GetString("redis.prefix"),
		LockTTL:  v.GetDuration("redis.lock_ttl"),
	}
	cfg.JWT = JWTConfig{
		Secret:            v.GetString("jwt.secret"),
		AccessTokenExpiry: v.GetDuration("jwt.access_expiry"),
		Issuer:            v.GetString("jwt.issuer"),
	}
	cfg.Auth = AuthConfig{
		Username:     v.GetString("auth.username"),
		PasswordHash: v.GetString("auth.password_hash"),
	}
	cfg.Numbering = NumberingConfig{
		AprilCutover: v.GetBool("numbering.april_cutover"),
	}
	cfg.S3 = S3Config{
		Enabled:       v.GetBool("s3.enabled"),
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
