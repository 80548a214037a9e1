package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

const (
	defaultPort         = "8080"
	defaultTimezone     = "UTC"
	defaultRateLimit    = "100-M"
	defaultMaxBatchSize = 100
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Zone the date endpoints render in
	DateLocation *time.Location
	// ulule/limiter formatted rate, e.g. "100-M"
	RateLimit          string
	CORSAllowedOrigins []string
	// Empty disables bearer-token auth on /api/v1
	JWTSecret    string
	MaxBatchSize int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("DATE_TIMEZONE", defaultTimezone)
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("MAX_BATCH_SIZE", defaultMaxBatchSize)

	// Environment variables override .env values, which override the defaults above.
	v.AutomaticEnv()

	cfg := &Config{
		Port:         v.GetString("PORT"),
		IsProduction: v.GetBool("IS_PRODUCTION"),
		JWTSecret:    v.GetString("JWT_SECRET"),
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	tz := v.GetString("DATE_TIMEZONE")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
		log.Printf("Warning: Invalid value for DATE_TIMEZONE ('%s'). Defaulting to %s.\n", tz, defaultTimezone)
	}
	cfg.DateLocation = loc

	cfg.RateLimit = v.GetString("RATE_LIMIT")
	if _, err := limiter.NewRateFromFormatted(cfg.RateLimit); err != nil {
		log.Printf("Warning: Invalid value for RATE_LIMIT ('%s'). Defaulting to %s.\n", cfg.RateLimit, defaultRateLimit)
		cfg.RateLimit = defaultRateLimit
	}

	cfg.CORSAllowedOrigins = splitOrigins(v.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.MaxBatchSize = v.GetInt("MAX_BATCH_SIZE")
	if cfg.MaxBatchSize <= 0 {
		log.Printf("Warning: Invalid value for MAX_BATCH_SIZE ('%s'). Defaulting to %d.\n", v.GetString("MAX_BATCH_SIZE"), defaultMaxBatchSize)
		cfg.MaxBatchSize = defaultMaxBatchSize
	}

	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set. /api/v1 is served without authentication.")
	}

	return cfg, nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
