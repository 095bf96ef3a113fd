package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config holds all configuration values from environment.
type Config struct {
	AppPort    string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	RedisHost  string
	RedisPort  string
	JWTSecret  string

	// Search settings
	DefaultRadiusKm float64 // Default radius in kilometers for medal search (default: 5)
	MaxSearchRows   int     // Cap on rows returned by a radius search (default: 1000)
	SearchCacheTTL  time.Duration

	// Moderation thresholds
	MedalReportThreshold int // Distinct reports that invalidate a medal (default: 5)
	UserBanThreshold     int // Cumulative received reports that ban a user (default: 10)

	RequestTimeout time.Duration
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppPort:    os.Getenv("MEDAL_PORT"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		RedisHost:  os.Getenv("REDIS_HOST"),
		RedisPort:  os.Getenv("REDIS_PORT"),
		JWTSecret:  os.Getenv("JWT_SECRET"),

		DefaultRadiusKm:      floatEnv("DEFAULT_RADIUS_KM", 5.0),
		MaxSearchRows:        intEnv("MAX_SEARCH_ROWS", 1000),
		SearchCacheTTL:       durationEnv("SEARCH_CACHE_TTL", 30*time.Second),
		MedalReportThreshold: intEnv("MEDAL_REPORT_THRESHOLD", 5),
		UserBanThreshold:     intEnv("USER_BAN_THRESHOLD", 10),
		RequestTimeout:       durationEnv("REQUEST_TIMEOUT", 5*time.Second),
	}

	// Basic validation for required fields
	if cfg.DBHost == "" || cfg.DBUser == "" || cfg.DBName == "" {
		return nil, fmt.Errorf("database configuration is incomplete")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}

// ConnectDatabase initializes a GORM database connection to PostgreSQL.
// TranslateError maps driver errors onto gorm.ErrDuplicatedKey and friends,
// which the repositories rely on to tell duplicates apart from generic
// failures.
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	return db, nil
}

func floatEnv(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func intEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func durationEnv(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
