package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	App struct {
		Env         string `env:"APP_ENV"      envDefault:"development"`
		Port        string `env:"PORT"         envDefault:"8088"`
		FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	}
	DB struct {
		Driver     string `env:"DB_DRIVER"      envDefault:"postgres"` // postgres or sqlite
		Host       string `env:"DB_HOST"        envDefault:"localhost"`
		Port       string `env:"DB_PORT"        envDefault:"5432"`
		User       string `env:"DB_USER"        envDefault:"postgres"`
		Password   string `env:"DB_PASSWORD"    envDefault:"password"`
		Name       string `env:"DB_NAME"        envDefault:"schoolsports"`
		SSLMode    string `env:"DB_SSLMODE"     envDefault:"disable"`
		SQLitePath string `env:"DB_SQLITE_PATH" envDefault:"schoolsports.db"`
	}
	JWT struct {
		AccessTokenSecret        string `env:"JWT_ACCESS_TOKEN_SECRET"         envDefault:"supersecret"`
		AccessTokenExpiryMinutes int    `env:"JWT_ACCESS_TOKEN_EXPIRY_MINUTES" envDefault:"60"`
	}
	NATS struct {
		URL           string `env:"NATS_URL"            envDefault:""` // empty keeps the audit trail in the database
		SubjectPrefix string `env:"NATS_SUBJECT_PREFIX" envDefault:"audit"`
	}
	Log struct {
		Level string `env:"LOG_LEVEL" envDefault:"info"`
	}

	warnings []string
}

// Warnings lists the startup problems LoadConfig noticed but did not reject.
func (c *Config) Warnings() []string {
	return c.warnings
}

// LoadConfig loads configuration from the environment, reading a .env file first when present.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := godotenv.Load(); err != nil {
		cfg.warnings = append(cfg.warnings, "no .env file loaded, relying on system environment variables")
	}

	cfg.App.Env = getEnv("APP_ENV", "development")
	cfg.App.Port = getEnv("PORT", "8088")
	cfg.App.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:3000")

	cfg.DB.Driver = getEnv("DB_DRIVER", "postgres")
	cfg.DB.Host = getEnv("DB_HOST", "localhost")
	cfg.DB.Port = getEnv("DB_PORT", "5432")
	cfg.DB.User = getEnv("DB_USER", "postgres")
	cfg.DB.Password = getEnv("DB_PASSWORD", "password")
	cfg.DB.Name = getEnv("DB_NAME", "schoolsports")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.DB.SQLitePath = getEnv("DB_SQLITE_PATH", "schoolsports.db")
	if cfg.DB.Driver != "postgres" && cfg.DB.Driver != "sqlite" {
		return nil, fmt.Errorf("invalid DB_DRIVER %q: expected postgres or sqlite", cfg.DB.Driver)
	}

	cfg.JWT.AccessTokenSecret = getEnv("JWT_ACCESS_TOKEN_SECRET", "your-very-strong-access-secret")
	var err error
	cfg.JWT.AccessTokenExpiryMinutes, err = getEnvAsInt("JWT_ACCESS_TOKEN_EXPIRY_MINUTES", 60)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TOKEN_EXPIRY_MINUTES: %w", err)
	}

	cfg.NATS.URL = getEnv("NATS_URL", "")
	cfg.NATS.SubjectPrefix = getEnv("NATS_SUBJECT_PREFIX", "audit")

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")

	if cfg.JWT.AccessTokenSecret == "your-very-strong-access-secret" {
		cfg.warnings = append(cfg.warnings, "using the default JWT secret, set JWT_ACCESS_TOKEN_SECRET for production")
	}
	if cfg.DB.Password == "password" && cfg.App.Env == "production" {
		cfg.warnings = append(cfg.warnings, "using the default DB password in production, set DB_PASSWORD")
	}
	return cfg, nil
}

// ConnectDB opens the configured database. Constraint violations are translated
// to gorm errors such as gorm.ErrDuplicatedKey.
func ConnectDB(cfg Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	}
	if cfg.App.Env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info) // Log SQL queries in development
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	var dialector gorm.Dialector
	switch cfg.DB.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DB.SQLitePath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	default:
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			cfg.DB.Host,
			cfg.DB.User,
			cfg.DB.Password,
			cfg.DB.Name,
			cfg.DB.Port,
			cfg.DB.SSLMode,
		)
		dialector = postgres.Open(dsn)
	}

	gormDB, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if cfg.DB.Driver == "sqlite" {
		// SQLite allows a single writer; one connection keeps transactions serial.
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return gormDB, nil
}

// NewLogger builds the application logger: console output in development, JSON otherwise.
func NewLogger(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.Log.Level, err)
	}
	var zc zap.Config
	if cfg.App.Env == "development" {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build(zap.Fields(zap.String("service", "schoolsports")))
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(key string, fallback int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected integer, got '%s'", key, valueStr)
	}
	return value, nil
}
