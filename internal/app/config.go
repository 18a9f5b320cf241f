package app

import (
	"os"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the complete application configuration, loadable from
// environment variables (CATALOGO_ prefix), flags, or YAML config files.
type Config struct {
	Addr string `default:"0.0.0.0:8080" usage:"API server listen address"`
	// DataPath is the bolt database file holding the catalog.
	DataPath string `default:"catalogo.db" usage:"Path to the catalog database file" flag:"data-path"`
	// Ephemeral keeps the catalog in memory only; state is lost on exit.
	Ephemeral  bool   `default:"false" usage:"Keep the catalog in memory instead of on disk"`
	CatalogURL string `default:"" usage:"Public storefront URL embedded in share messages" flag:"catalog-url"`
	Currency   string `default:"S/" usage:"Currency prefix used in rendered amounts"`
	Gemini     GeminiConfig
	RateLimit  RateLimitConfig
	CORS       CORSConfig
	Graceful   GracefulConfig
}

// GeminiConfig configures the description assistant. APIKey is the only
// external credential the application consumes; when empty the assistant
// always answers with its fallback text.
type GeminiConfig struct {
	APIKey  string        `usage:"Gemini API key (CATALOGO_GEMINI_APIKEY or API_KEY)" flag:"gemini-api-key"`
	Model   string        `default:"gemini-2.5-flash" usage:"Text generation model"`
	BaseURL string        `default:"" usage:"Override for the generation API endpoint" flag:"gemini-base-url"`
	Timeout time.Duration `default:"15s" usage:"Generation call timeout"`
}

// RateLimitConfig controls the per-client sliding window rate limiter.
type RateLimitConfig struct {
	Max    int           `default:"100" usage:"Max requests per window"`
	Window time.Duration `default:"1m"  usage:"Rate limit window duration"`
}

// CORSConfig controls Cross-Origin Resource Sharing headers.
type CORSConfig struct {
	Origins          []string `default:"*" usage:"Allowed CORS origins"`
	AllowCredentials bool     `default:"false" usage:"Allow credentials (cookies, auth headers)" flag:"cors-credentials"`
}

// GracefulConfig controls graceful shutdown timing.
type GracefulConfig struct {
	ReadinessDelay  time.Duration `default:"3s"  usage:"Delay after readiness=false before shutdown" flag:"readiness-delay"`
	ShutdownTimeout time.Duration `default:"15s" usage:"Maximum shutdown duration" flag:"shutdown-timeout"`
}

// LoadConfig loads configuration from environment variables, YAML config
// files, and applies platform-specific defaults.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "CATALOGO",
		Files:     []string{"config.yaml", "/etc/catalogo/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.applyPlatformDefaults()
	return &cfg, nil
}

// applyPlatformDefaults maps conventional environment variables (PORT,
// API_KEY) to the CATALOGO_-prefixed configuration.
func (c *Config) applyPlatformDefaults() {
	if c.Gemini.APIKey == "" {
		if v := os.Getenv("API_KEY"); v != "" {
			c.Gemini.APIKey = v
		}
	}
	if port := os.Getenv("PORT"); port != "" && c.Addr == "0.0.0.0:8080" {
		c.Addr = "0.0.0.0:" + port
	}
}
