package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Database DatabaseConfig `yaml:"database"`
	Session  SessionConfig  `yaml:"session"`
}

// ServerConfig holds the portal HTTP server configuration.
type ServerConfig struct {
	Port            int           `yaml:"port"`
	RequestIPHeader string        `yaml:"request_ip_header"`
	RateLimitPerSec float64       `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int           `yaml:"rate_limit_burst"`
	CacheTTLSeconds int           `yaml:"cache_ttl_seconds"`
	CacheTTL        time.Duration `yaml:"-"`
}

// UpstreamConfig holds the remote booking API connection configuration.
type UpstreamConfig struct {
	BaseURL        string            `yaml:"base_url"`
	TimeoutSeconds int               `yaml:"timeout_seconds"`
	Timeout        time.Duration     `yaml:"-"`
	HTTPProxy      string            `yaml:"http_proxy"`
	Headers        map[string]string `yaml:"headers"`
}

// DatabaseConfig holds the session database connection configuration.
type DatabaseConfig struct {
	Driver                 string `yaml:"driver"` // "sqlite" or "postgres"
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// SessionConfig holds browser session cookie and lifetime configuration.
type SessionConfig struct {
	CookieName           string        `yaml:"cookie_name"`
	TTLHours             int           `yaml:"ttl_hours"`
	TTL                  time.Duration `yaml:"-"`
	SweepIntervalSeconds int           `yaml:"sweep_interval_seconds"`
	SweepInterval        time.Duration `yaml:"-"`
	CookieSecure         bool          `yaml:"cookie_secure"`
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 60
	}
	cfg.Server.CacheTTL = time.Duration(cfg.Server.CacheTTLSeconds) * time.Second

	if cfg.Upstream.BaseURL == "" {
		cfg.Upstream.BaseURL = os.Getenv("UPSTREAM_API_URL")
	}
	if cfg.Upstream.TimeoutSeconds <= 0 {
		cfg.Upstream.TimeoutSeconds = 30
	}
	cfg.Upstream.Timeout = time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "portal.db"
	}

	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "portal_session"
	}
	if cfg.Session.TTLHours <= 0 {
		log.Printf("session.ttl_hours is not set or invalid; defaulting to 24")
		cfg.Session.TTLHours = 24
	}
	cfg.Session.TTL = time.Duration(cfg.Session.TTLHours) * time.Hour
	if cfg.Session.SweepIntervalSeconds <= 0 {
		cfg.Session.SweepIntervalSeconds = 600
	}
	cfg.Session.SweepInterval = time.Duration(cfg.Session.SweepIntervalSeconds) * time.Second

	return &cfg, nil
}
