package utils

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ─── Section configs ────────────────────────────────────────────────────

type HTTPConfig struct {
	Port           int `yaml:"port"`
	ReadTimeoutS   int `yaml:"read_timeout_s"`
	WriteTimeoutS  int `yaml:"write_timeout_s"`
	ShutdownGraceS int `yaml:"shutdown_grace_s"`
}

type UpstreamConfig struct {
	BaseURL  string `yaml:"base_url"`
	TokenEnv string `yaml:"token_env"` // env var holding the bearer credential
	TimeoutS int    `yaml:"timeout_s"`
}

type GeolocationConfig struct {
	TimeoutMs int `yaml:"timeout_ms"`
}

// ServerConfig is the top-level structure for server.yaml.
type ServerConfig struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Upstream    UpstreamConfig    `yaml:"upstream"`
	Geolocation GeolocationConfig `yaml:"geolocation"`
}

// UpstreamTimeout returns the upstream fetch timeout as a duration,
// defaulting to 30s.
func (c *ServerConfig) UpstreamTimeout() time.Duration {
	if c.Upstream.TimeoutS <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.Upstream.TimeoutS) * time.Second
}

// LocateTimeout returns the bounded wait for geolocation, defaulting to 5s.
func (c *ServerConfig) LocateTimeout() time.Duration {
	if c.Geolocation.TimeoutMs <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.Geolocation.TimeoutMs) * time.Millisecond
}

// BearerToken resolves the upstream credential from the configured env var.
// The core never stores or refreshes tokens; the caller already holds a
// valid one.
func (c *ServerConfig) BearerToken() string {
	if c.Upstream.TokenEnv == "" {
		return ""
	}
	return os.Getenv(c.Upstream.TokenEnv)
}

// ─── Loader ─────────────────────────────────────────────────────────────

// LoadServerConfig reads and parses server.yaml.
func LoadServerConfig(path string) (*ServerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read server config: %w", err)
	}
	var cfg ServerConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse server config: %w", err)
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8080
	}
	return &cfg, nil
}
