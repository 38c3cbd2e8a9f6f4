// Package config contains the configuration of the workshop order service.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the service configuration. The Redis address may be left
// empty to run against the in-memory storage backend.
type Config struct {
	RunAddress      string `env:"RUN_ADDRESS"`
	RedisAddress    string `env:"REDIS_ADDRESS"`
	RedisPassword   string `env:"REDIS_PASSWORD"`
	RedisDB         int    `env:"REDIS_DB"`
	SmsProvider     string `env:"SMS_PROVIDER"`
	TwilioSID       string `env:"TWILIO_ACCOUNT_SID"`
	TwilioToken     string `env:"TWILIO_AUTH_TOKEN"`
	TwilioFrom      string `env:"TWILIO_FROM_NUMBER"`
	DefaultLanguage string `env:"DEFAULT_LANGUAGE"`
}

// Parse reads the configuration from command-line flags and environment
// variables, with the environment taking precedence.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envRunAddress := cfg.RunAddress
	envRedisAddress := cfg.RedisAddress
	envSmsProvider := cfg.SmsProvider
	envDefaultLanguage := cfg.DefaultLanguage

	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "address and port for HTTP server")
	flag.StringVar(&cfg.RedisAddress, "r", "", "redis address (empty for in-memory storage)")
	flag.StringVar(&cfg.SmsProvider, "s", "console", "sms provider (console or twilio)")
	flag.StringVar(&cfg.DefaultLanguage, "l", "en", "default UI language (en or ar)")

	flag.Parse()

	if envRunAddress != "" {
		cfg.RunAddress = envRunAddress
	}
	if envRedisAddress != "" {
		cfg.RedisAddress = envRedisAddress
	}
	if envSmsProvider != "" {
		cfg.SmsProvider = envSmsProvider
	}
	if envDefaultLanguage != "" {
		cfg.DefaultLanguage = envDefaultLanguage
	}

	if cfg.RunAddress == "" {
		cfg.RunAddress = "localhost:8080"
	}
	if cfg.SmsProvider == "" {
		cfg.SmsProvider = "console"
	}
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = "en"
	}

	return cfg, nil
}
