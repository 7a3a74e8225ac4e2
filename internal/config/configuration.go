package config

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	// WebServer Configuration
	WebServerPort int `mapstructure:"WEBSERVER_PORT"`

	// Database Configuration
	DatabaseDSN     string `mapstructure:"DATABASE_DSN" validate:"required"`
	DatabaseRetries int    `mapstructure:"DATABASE_RETRIES"`

	// Upstream catalog
	YouTubeAPIKey string `mapstructure:"YOUTUBE_API_KEY" validate:"required"`

	// Shared secret checked on the cron sync trigger
	CronSecret string `mapstructure:"CRON_SECRET" validate:"required"`

	// Local transcript service
	AIServiceURL string `mapstructure:"AI_SERVICE_URL"`

	// The library is single-user for now; every workflow still takes the
	// caller identity explicitly, and this is what the handlers pass.
	DefaultUserID int32 `mapstructure:"DEFAULT_USER_ID"`
}

// use reflect to bind environment variables based on mapstructure tags
func bindEnv(c Config) {
	val := reflect.ValueOf(c)
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag != "" {
			viper.BindEnv(tag)
		}
	}
}

func LoadConfig(ctx context.Context) (*Config, error) {
	bindEnv(Config{})
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("WEBSERVER_PORT", 3000)
	viper.SetDefault("DATABASE_RETRIES", 10)
	viper.SetDefault("AI_SERVICE_URL", "http://localhost:5001")
	viper.SetDefault("DEFAULT_USER_ID", 1)

	cfg := Config{}
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	slog.Info("Loaded configuration",
		"port", cfg.WebServerPort,
		"database_retries", cfg.DatabaseRetries,
		"ai_service_url", cfg.AIServiceURL,
		"default_user_id", cfg.DefaultUserID)

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
