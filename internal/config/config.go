package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Maps    MapsConfig
	Logging LoggingConfig
}

type AppConfig struct {
	Port        string
	Environment string
}

// MapsConfig drives the Google Maps clients. PageTokenDelay is the wait
// before a next_page_token becomes valid on the provider side.
type MapsConfig struct {
	APIKey           string
	BaseURL          string
	HTTPTimeout      time.Duration
	PageTokenDelay   time.Duration
	PageTokenRetries int
	GeocodeCacheTTL  time.Duration
}

type LoggingConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENVIRONMENT", "development")
	v.SetDefault("GOOGLE_MAPS_BASE_URL", "https://maps.googleapis.com/maps/api")
	v.SetDefault("MAPS_HTTP_TIMEOUT", "15s")
	v.SetDefault("MAPS_PAGE_TOKEN_DELAY", "2s")
	v.SetDefault("MAPS_PAGE_TOKEN_RETRIES", 3)
	v.SetDefault("GEOCODE_CACHE_TTL", "24h")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	cfg := &Config{
		App: AppConfig{
			Port:        v.GetString("PORT"),
			Environment: v.GetString("APP_ENVIRONMENT"),
		},
		Maps: MapsConfig{
			APIKey:           v.GetString("GOOGLE_MAPS_API_KEY"),
			BaseURL:          v.GetString("GOOGLE_MAPS_BASE_URL"),
			HTTPTimeout:      v.GetDuration("MAPS_HTTP_TIMEOUT"),
			PageTokenDelay:   v.GetDuration("MAPS_PAGE_TOKEN_DELAY"),
			PageTokenRetries: v.GetInt("MAPS_PAGE_TOKEN_RETRIES"),
			GeocodeCacheTTL:  v.GetDuration("GEOCODE_CACHE_TTL"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Maps.APIKey == "" {
		return fmt.Errorf("GOOGLE_MAPS_API_KEY is required")
	}
	if cfg.Maps.HTTPTimeout <= 0 {
		return fmt.Errorf("MAPS_HTTP_TIMEOUT must be positive")
	}
	if cfg.Maps.PageTokenRetries < 0 {
		return fmt.Errorf("MAPS_PAGE_TOKEN_RETRIES must not be negative")
	}
	return nil
}
