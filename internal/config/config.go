// Package config manages environment variables.
//
// It reads variables from the process environment (and the `.env` file,
// if present), loads them into structured Go types, and validates that
// required values are present so they can be reused across the
// application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for every optional block.
package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	// Side-effect import: if a `.env` file exists, it is loaded into the
	// process env before any config is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix is the prefix every configuration variable must carry.
	EnvPrefix = "CAREERPILOT_"

	// nestingSeparator splits an env key into nested koanf keys.
	//
	//	CAREERPILOT_SERVER__PORT -> server.port
	//	CAREERPILOT_SERVER__CORS_ALLOWED_ORIGINS -> server.cors_allowed_origins
	nestingSeparator = "__"
)

// Config is the root configuration object for the application.
//
// It is built once at startup by LoadConfig and passed by pointer to the
// server setup. Nothing mutates it afterwards.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	AI            AIConfig             `koanf:"ai" validate:"required"`
	Cache         CacheConfig          `koanf:"cache"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are in seconds.
type ServerConfig struct {
	Host               string   `koanf:"host" validate:"required"`
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`
}

// Address returns the host:port pair the HTTP server binds to.
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// AIConfig selects and tunes the analysis collaborator behind the
// career endpoints.
type AIConfig struct {
	// Provider is either "stub" (fixed responses) or "gemini".
	Provider     string        `koanf:"provider" validate:"required,oneof=stub gemini"`
	GeminiAPIKey string        `koanf:"gemini_api_key"`
	Model        string        `koanf:"model" validate:"required"`
	Temperature  float32       `koanf:"temperature" validate:"gte=0,lte=2"`
	Timeout      time.Duration `koanf:"timeout" validate:"min=1s"`
}

// CacheConfig controls the optional Redis cache in front of the analyzer.
type CacheConfig struct {
	Enabled      bool          `koanf:"enabled"`
	RedisAddress string        `koanf:"redis_address"`
	TTL          time.Duration `koanf:"ttl"`
}

// DefaultConfig returns the configuration used when no variable overrides
// a value. It matches the defaults of a local development setup.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{
			Env: "development",
		},
		Server: ServerConfig{
			Host:               "0.0.0.0",
			Port:               "8000",
			ReadTimeout:        30,
			WriteTimeout:       60,
			IdleTimeout:        120,
			CORSAllowedOrigins: []string{"http://localhost:3000"},
		},
		AI: AIConfig{
			Provider:    "stub",
			Model:       "gemini-2.5-flash",
			Temperature: 0.3,
			Timeout:     30 * time.Second,
		},
		Cache: CacheConfig{
			Enabled:      false,
			RedisAddress: "localhost:6379",
			TTL:          24 * time.Hour,
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// LoadConfig loads configuration from environment variables, unmarshals it
// over DefaultConfig, validates it and returns the result.
//
// Behavior summary:
//   - Reads env vars with prefix CAREERPILOT_
//   - Converts "__" into "." so nested struct fields can be addressed
//   - Validates struct tags, then cross-field rules
//   - Forces the observability service name and environment
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, nestingSeparator, ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	// Unmarshal over the defaults: keys absent from the environment leave
	// the default values untouched. Comma-separated values decode into
	// slices.
	mainConfig := DefaultConfig()
	err = k.UnmarshalWithConf("", mainConfig, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			Result:           mainConfig,
			TagName:          "koanf",
			WeaklyTypedInput: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	if err := mainConfig.Validate(); err != nil {
		return nil, err
	}

	return mainConfig, nil
}

// Validate checks struct tags and the rules tags cannot express.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if c.AI.Provider == "gemini" && c.AI.GeminiAPIKey == "" {
		return fmt.Errorf("ai.gemini_api_key is required when ai.provider is gemini")
	}

	if c.Cache.Enabled {
		if c.Cache.RedisAddress == "" {
			return fmt.Errorf("cache.redis_address is required when cache is enabled")
		}
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive when cache is enabled")
		}
	}

	if c.Observability == nil {
		c.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment are not user-configurable: they keep
	// telemetry naming consistent across deployments.
	c.Observability.ServiceName = ServiceName
	c.Observability.Environment = c.Primary.Env

	if err := c.Observability.Validate(); err != nil {
		return fmt.Errorf("invalid observability config: %w", err)
	}

	return nil
}
