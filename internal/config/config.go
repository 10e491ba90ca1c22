package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port      string `env:"PORT" envDefault:"4000"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	Version   string `env:"SERVICE_VERSION" envDefault:"dev"`
	Providers ProvidersConfig
	Logo      LogoConfig
	Metrics   MetricsConfig

	MaxWorkspaces      int      `env:"MAX_WORKSPACES" envDefault:"256"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	MCPEnabled         bool     `env:"MCP_ENABLED" envDefault:"true"`

	WorkspaceTTL    time.Duration `env:"WORKSPACE_TTL" envDefault:"2h"`
	JanitorInterval time.Duration `env:"JANITOR_INTERVAL" envDefault:"5m"`
}

// ProvidersConfig controls how we talk to the fantasy league hosts.
type ProvidersConfig struct {
	SleeperBaseURL string        `env:"SLEEPER_BASE_URL" envDefault:"https://api.sleeper.app/v1"`
	MFLBaseURL     string        `env:"MFL_BASE_URL" envDefault:"https://api.myfantasyleague.com"`
	ESPNBaseURL    string        `env:"ESPN_BASE_URL" envDefault:"https://lm-api-reads.fantasy.espn.com/apis/v3/games/ffl"`
	Timeout        time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"10s"`
}

// LogoConfig controls the hosted image generator.
type LogoConfig struct {
	BaseURL     string        `env:"LOGO_BASE_URL" envDefault:"https://image.pollinations.ai"`
	Width       int           `env:"LOGO_WIDTH" envDefault:"1024"`
	Height      int           `env:"LOGO_HEIGHT" envDefault:"1024"`
	Verify      bool          `env:"LOGO_VERIFY" envDefault:"false"`
	Concurrency int           `env:"LOGO_CONCURRENCY" envDefault:"4"`
	Timeout     time.Duration `env:"LOGO_TIMEOUT" envDefault:"60s"`
}

// Load reads configuration from environment variables with sensible defaults.
// Non-positive sizes and durations fall back to their defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	c.Providers.Timeout = positiveDuration(c.Providers.Timeout, defaultProviderTimeout)
	c.Logo.Timeout = positiveDuration(c.Logo.Timeout, defaultLogoTimeout)
	c.Logo.Width = positiveInt(c.Logo.Width, defaultLogoSize)
	c.Logo.Height = positiveInt(c.Logo.Height, defaultLogoSize)
	c.Logo.Concurrency = positiveInt(c.Logo.Concurrency, defaultLogoConcurrency)
	c.MaxWorkspaces = positiveInt(c.MaxWorkspaces, defaultMaxWorkspaces)
	c.WorkspaceTTL = positiveDuration(c.WorkspaceTTL, defaultWorkspaceTTL)
	c.JanitorInterval = positiveDuration(c.JanitorInterval, defaultJanitorInterval)
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = defaultServiceName
	}
}
