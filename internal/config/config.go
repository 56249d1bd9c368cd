package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/M0hammad-yasin/portfolio/internal/tracker"
)

// EnvPrefix is the prefix of environment overrides, e.g. PORTFOLIO_ADDR.
const EnvPrefix = "PORTFOLIO_"

// Config is the server configuration, corresponding to portfolio.yml.
type Config struct {
	Addr            string        `koanf:"addr"`
	Mode            string        `koanf:"mode"`
	ContentFile     string        `koanf:"content_file"`
	Watch           bool          `koanf:"watch"`
	ScrollBias      float64       `koanf:"scroll_bias"`
	Fallback        string        `koanf:"fallback"`
	AckTitle        string        `koanf:"ack_title"`
	AckBody         string        `koanf:"ack_body"`
	AckDismiss      time.Duration `koanf:"ack_dismiss"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Addr:            ":8080",
		Mode:            gin.ReleaseMode,
		ScrollBias:      tracker.DefaultBias,
		Fallback:        string(tracker.FallbackClamp),
		AckTitle:        "Message sent!",
		AckBody:         "Thank you for reaching out. I'll get back to you soon.",
		AckDismiss:      4 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variables (PORTFOLIO_*). A missing file is not an error.
// PORT, as set by most hosting platforms, overrides the listen port.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	switch _, err := os.Stat(path); {
	case path == "", errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("config %s: %w", path, err)
	default:
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	envKey := func(s string) string { return strings.ToLower(strings.TrimPrefix(s, EnvPrefix)) }
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config env: %w", err)
	}

	cfg := DefaultConfig()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config decode: %w", err)
	}
	if port, ok := os.LookupEnv("PORT"); ok && port != "" {
		cfg.Addr = ":" + port
	}
	return cfg, nil
}

var validModes = map[string]bool{
	gin.DebugMode:   true,
	gin.ReleaseMode: true,
	gin.TestMode:    true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if !validModes[c.Mode] {
		return fmt.Errorf("invalid mode %q: must be one of debug, release, test", c.Mode)
	}
	if c.ScrollBias < 0 {
		return fmt.Errorf("scroll_bias must be non-negative")
	}
	if _, err := tracker.ParseFallback(c.Fallback); err != nil {
		return err
	}
	if c.AckTitle == "" {
		return fmt.Errorf("ack_title is required")
	}
	if c.AckDismiss <= 0 {
		return fmt.Errorf("ack_dismiss must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be positive")
	}
	if c.Watch && c.ContentFile == "" {
		return fmt.Errorf("watch requires content_file")
	}
	return nil
}

// TrackerOptions returns the section tracker settings.
func (c *Config) TrackerOptions() []tracker.Option {
	fb, err := tracker.ParseFallback(c.Fallback)
	if err != nil {
		fb = tracker.FallbackClamp
	}
	return []tracker.Option{tracker.WithBias(c.ScrollBias), tracker.WithFallback(fb)}
}
