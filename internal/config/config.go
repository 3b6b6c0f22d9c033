package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv          string
	Port            string
	BaseURL         string // Public base URL used to build short links and QR codes
	DatabaseDriver  string // "postgres" (lib/pq) or "pgx"
	DatabaseURL     string
	DBMaxOpenConns  int
	DBQueryTimeout  time.Duration // Upper bound for the store work of a single request
	MigrateOnStart  bool
	JWTSecret       string // Secret key for JWT token signing
	AccessTokenTTL  time.Duration
	BcryptCost      int
	KeyLength       int // Number of characters in a generated short key
	MaxKeyAttempts  int // Collision retries before giving up on a shorten request
	ShutdownTimeout time.Duration
	EnvFileLoaded   bool // Whether a .env file was found and read
}

// Load reads configuration from an optional .env file and the environment.
func Load() *Config {
	// A missing .env file is fine; the caller logs EnvFileLoaded.
	envFileLoaded := godotenv.Load() == nil

	return &Config{
		EnvFileLoaded:   envFileLoaded,
		AppEnv:          getEnv("APP_ENV", "local"),
		Port:            getEnv("PORT", "8080"),
		BaseURL:         getEnv("BASE_URL", "http://localhost:8080"),
		DatabaseDriver:  getEnv("DATABASE_DRIVER", "postgres"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		DBMaxOpenConns:  getEnvInt("DB_MAX_OPEN_CONNS", 10),
		DBQueryTimeout:  getEnvDuration("DB_QUERY_TIMEOUT", 5*time.Second),
		MigrateOnStart:  getEnvBool("MIGRATE_ON_START", true),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		AccessTokenTTL:  time.Duration(getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 240)) * time.Minute,
		BcryptCost:      getEnvInt("BCRYPT_COST", 10),
		KeyLength:       getEnvInt("KEY_LENGTH", 7),
		MaxKeyAttempts:  getEnvInt("MAX_KEY_ATTEMPTS", 10),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
	}
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET must be set"))
	}
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL must be set"))
	}
	if c.DatabaseDriver != "postgres" && c.DatabaseDriver != "pgx" {
		errs = append(errs, fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver))
	}
	if c.AccessTokenTTL <= 0 {
		errs = append(errs, errors.New("ACCESS_TOKEN_EXPIRE_MINUTES must be positive"))
	}
	if c.MaxKeyAttempts <= 0 {
		errs = append(errs, errors.New("MAX_KEY_ATTEMPTS must be positive"))
	}
	return errors.Join(errs...)
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
