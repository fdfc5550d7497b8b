package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// http
	AllowedOrigins                 []string `toml:"allowed_origins"`
	LoginRateLimitAllowedPerMin    int      `toml:"login_rate_limit_allowed_per_min"`
	GenerateRateLimitAllowedPerMin int      `toml:"generate_rate_limit_allowed_per_min"`
	SessionTTLHours                int      `toml:"session_ttl_hours"`
	// ai plan generation
	AIRelayURL       string `toml:"ai_relay_url"`
	AIBaseURL        string `toml:"ai_base_url"`
	AIModel          string `toml:"ai_model"`
	AITimeoutSeconds int    `toml:"ai_timeout_seconds"`
	// plans
	DefaultTotalWeeks  int    `toml:"default_total_weeks"`
	RenewalCron        string `toml:"renewal_cron"`
	SessionCleanupCron string `toml:"session_cleanup_cron"`
	// progress
	ProgressCacheTTLSeconds int `toml:"progress_cache_ttl_seconds"`
	// store
	CheckoutDelayMillis int `toml:"checkout_delay_millis"`
	// notifications
	EmailFrom  string `toml:"email_from"`
	AppBaseURL string `toml:"app_base_url"`
}

type Toml struct {
	Development *Config
	Production  *Config
	DockerDev   *Config `toml:"dockerdev"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	case "ddev", "dockerdev":
		cfg = t.DockerDev
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("config section for env [%s] missing", env)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode toml config [%s]: %w", path, err)
	}
	return t.Get(env)
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.PrometheusMetricsHost == "" {
		c.PrometheusMetricsHost = "localhost"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
	if c.LoginRateLimitAllowedPerMin <= 0 {
		c.LoginRateLimitAllowedPerMin = 10
	}
	if c.GenerateRateLimitAllowedPerMin <= 0 {
		c.GenerateRateLimitAllowedPerMin = 5
	}
	if c.SessionTTLHours <= 0 {
		c.SessionTTLHours = 24 * 7
	}
	if c.AIBaseURL == "" {
		c.AIBaseURL = "https://api.openai.com/v1"
	}
	if c.AIModel == "" {
		c.AIModel = "gpt-4o-mini"
	}
	if c.AITimeoutSeconds <= 0 {
		c.AITimeoutSeconds = 60
	}
	if c.DefaultTotalWeeks <= 0 {
		c.DefaultTotalWeeks = 12
	}
	if c.RenewalCron == "" {
		c.RenewalCron = "@every 1h"
	}
	if c.SessionCleanupCron == "" {
		c.SessionCleanupCron = "@every 8h"
	}
	if c.ProgressCacheTTLSeconds <= 0 {
		c.ProgressCacheTTLSeconds = 10
	}
	if c.CheckoutDelayMillis <= 0 {
		c.CheckoutDelayMillis = 2000
	}
}
