package app

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"hyperlink/internal/link"
)

const (
	// OriginEnv overrides the origin links are built under.
	OriginEnv    = "HYPERLINK_ORIGIN_OVERRIDE"
	LogLevelEnv  = "HYPERLINK_LOG_LEVEL"
	LogFormatEnv = "HYPERLINK_LOG_FORMAT"
)

// ErrInvalidConfig is returned when a resolved Config fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds runtime wiring options for building the app.
type Config struct {
	Origin    string // link origin, e.g. https://hyperlink.org
	LogLevel  string // debug, info, warn or error
	LogFormat string // text or json
}

// fileConfig is the YAML layout of a config file.
type fileConfig struct {
	Origin string `yaml:"origin"`
	Log    struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Origin:    link.DefaultOrigin,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// LoadConfig layers defaults, the YAML file at path (skipped when path is
// empty) and environment overrides, then validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		var parsed fileConfig
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
		merge(&cfg, parsed)
	}
	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func merge(dst *Config, src fileConfig) {
	if src.Origin != "" {
		dst.Origin = src.Origin
	}
	if src.Log.Level != "" {
		dst.LogLevel = src.Log.Level
	}
	if src.Log.Format != "" {
		dst.LogFormat = src.Log.Format
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(OriginEnv)); v != "" {
		cfg.Origin = v
	}
	if v := strings.TrimSpace(os.Getenv(LogLevelEnv)); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv(LogFormatEnv)); v != "" {
		cfg.LogFormat = v
	}
}

// Validate checks the origin and logging options, trimming a trailing slash
// from the origin.
func (c *Config) Validate() error {
	c.Origin = strings.TrimRight(strings.TrimSpace(c.Origin), "/")
	u, err := url.Parse(c.Origin)
	if err != nil {
		return fmt.Errorf("%w: origin %q: %w", ErrInvalidConfig, c.Origin, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: origin %q must use http or https", ErrInvalidConfig, c.Origin)
	}
	if u.Host == "" || u.Path != "" || u.RawQuery != "" || u.Fragment != "" || u.User != nil {
		return fmt.Errorf("%w: origin %q must be scheme and host only", ErrInvalidConfig, c.Origin)
	}

	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, s)
	}
	return lvl, nil
}
