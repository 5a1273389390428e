package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"ulascansenturk/weather-client/internal/weathercode"
)

const DefaultAboutMessage = "PM Accelerator: From entry-level to VP of Product, we support PM professionals through every stage of their career. Name: Shrey Vishen"

type Config struct {
	ServiceName   string
	ServerAddress string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	BackendURL      string
	StaticDir       string
	FallbackIconURL string
	AboutMessage    string

	SessionTTL             time.Duration
	SessionCleanupInterval time.Duration
	DiscardStaleResponses  bool

	OTelCollectorEndpoint string
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-client")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_TIMEOUT", 175)
	v.SetDefault("BACKEND_URL", "http://localhost:5000")
	v.SetDefault("STATIC_DIR", "static")
	v.SetDefault("FALLBACK_ICON_URL", weathercode.DefaultFallbackIcon)
	v.SetDefault("ABOUT_MESSAGE", DefaultAboutMessage)
	v.SetDefault("SESSION_TTL", 30*time.Minute)
	v.SetDefault("SESSION_CLEANUP_INTERVAL", time.Minute)
	v.SetDefault("DISCARD_STALE_RESPONSES", false)
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:            v.GetString("SERVICE_NAME"),
		ServerAddress:          v.GetString("SERVER_ADDRESS"),
		Env:                    v.GetString("ENV"),
		LogLevel:               v.GetString("LOG_LEVEL"),
		HTTPTimeout:            v.GetInt32("HTTP_TIMEOUT"),
		BackendURL:             v.GetString("BACKEND_URL"),
		StaticDir:              v.GetString("STATIC_DIR"),
		FallbackIconURL:        v.GetString("FALLBACK_ICON_URL"),
		AboutMessage:           v.GetString("ABOUT_MESSAGE"),
		SessionTTL:             v.GetDuration("SESSION_TTL"),
		SessionCleanupInterval: v.GetDuration("SESSION_CLEANUP_INTERVAL"),
		DiscardStaleResponses:  v.GetBool("DISCARD_STALE_RESPONSES"),
		OTelCollectorEndpoint:  v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}

	if config.BackendURL == "" {
		return nil, fmt.Errorf("BACKEND_URL must not be empty")
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}
