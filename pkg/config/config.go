package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App AppConfig
	JWT JWTConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"GAMEHUB_APP_ENV" required:"true"`
	Port         string `envconfig:"GAMEHUB_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"GAMEHUB_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"GAMEHUB_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type JWTConfig struct {
	Secret            string `envconfig:"GAMEHUB_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"GAMEHUB_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"GAMEHUB_JWT_EXPIRATION_MINUTES" default:"720"`
}

// AccessTokenTTL returns the access token lifetime configured in minutes.
func (j JWTConfig) AccessTokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}
