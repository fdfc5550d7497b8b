package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Secrets are never kept in the TOML file.
type Secrets struct {
	JWTSecret        string `env:"FITPLANNER_JWT_SECRET"`
	AIAPIKey         string `env:"FITPLANNER_AI_API_KEY"`
	AIRelaySecret    string `env:"FITPLANNER_AI_RELAY_SECRET"`
	RedisPassword    string `env:"FITPLANNER_REDIS_PASS"`
	DBPassword       string `env:"FITPLANNER_DB_PASS"`
	ResendAPIKey     string `env:"FITPLANNER_RESEND_API_KEY"`
	IpInfoAPIKey     string `env:"IP_INFO_API_KEY"`
	SentryDSN        string `env:"SENTRY_DSN"`
	HoneycombEnabled bool   `env:"HONEYCOMB_ENABLED, default=false"`
	OtelServiceName  string `env:"OTEL_SERVICE_NAME, default=fitplanner"`
}

// LoadSecrets reads the optional .env files first, then the process environment.
// Variables already set in the environment win over .env values.
func LoadSecrets(ctx context.Context, envFiles ...string) (*Secrets, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file [%s]: %w", f, err)
		}
	}

	return processSecrets(ctx, envconfig.OsLookuper())
}

func processSecrets(ctx context.Context, lookuper envconfig.Lookuper) (*Secrets, error) {
	var s Secrets
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &s,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("process env secrets: %w", err)
	}
	return &s, nil
}

// Missing lists the names of unset secrets the service degrades without.
func (s *Secrets) Missing() []string {
	var missing []string
	if s.JWTSecret == "" {
		missing = append(missing, "FITPLANNER_JWT_SECRET")
	}
	if s.AIAPIKey == "" {
		missing = append(missing, "FITPLANNER_AI_API_KEY")
	}
	if s.ResendAPIKey == "" {
		missing = append(missing, "FITPLANNER_RESEND_API_KEY")
	}
	if s.IpInfoAPIKey == "" {
		missing = append(missing, "IP_INFO_API_KEY")
	}
	return missing
}
