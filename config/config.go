// Package config loads the BlinkLean service configuration.
//
// Values come from an optional config.yaml in the working directory (or an
// explicit file), then BLINKLEAN_* environment variables, then defaults.
// Nested keys map to environment names by replacing dots with underscores,
// e.g. engine.near_threshold is BLINKLEAN_ENGINE_NEAR_THRESHOLD.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "BLINKLEAN"

// Config holds the complete application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Engine  EngineConfig  `mapstructure:"engine"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Log     LogConfig     `mapstructure:"log"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port              string        `mapstructure:"port" validate:"required"`
	RateLimit         int           `mapstructure:"rate_limit" validate:"gte=0"`
	RateWindow        time.Duration `mapstructure:"rate_window" validate:"gt=0"`
	CORSOrigins       []string      `mapstructure:"cors_origins"`
	SwaggerUser       string        `mapstructure:"swagger_user"`
	SwaggerPass       string        `mapstructure:"swagger_pass"`
	RequestTimeout    time.Duration `mapstructure:"request_timeout" validate:"gt=0"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
	EnableIdempotency bool          `mapstructure:"enable_idempotency"`
}

// CacheConfig sizes the availability result cache. Size 0 disables it.
type CacheConfig struct {
	Size int           `mapstructure:"size" validate:"gte=0"`
	TTL  time.Duration `mapstructure:"ttl" validate:"gt=0"`
}

// EngineConfig tunes the serviceability and pricing engines.
type EngineConfig struct {
	NearThreshold        float64 `mapstructure:"near_threshold" validate:"gt=0"`
	AddressNearThreshold float64 `mapstructure:"address_near_threshold" validate:"gt=0"`
	FraudThresholdKg     float64 `mapstructure:"fraud_threshold_kg" validate:"gt=0"`
	LargeBasketThreshold int     `mapstructure:"large_basket_threshold" validate:"gt=0"`
	FluctuationMin       float64 `mapstructure:"fluctuation_min" validate:"gt=0"`
	FluctuationMax       float64 `mapstructure:"fluctuation_max" validate:"gtefield=FluctuationMin"`
}

// CatalogConfig locates the zone and rate catalog. An empty path uses the built-in catalog.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// Load reads configuration from ./config.yaml (if present) and the environment.
func Load() (Config, error) {
	return LoadFile("")
}

// LoadFile reads configuration from path, or from ./config.yaml when path is empty.
// A missing default file is not an error; a missing explicit file is.
func LoadFile(path string) (Config, error) {
	v := viper.New()

	// Config file
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	// Environment
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Container platforms inject a bare PORT.
	_ = v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "PORT")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, eris.Wrap(err, "config: unmarshal")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.rate_limit", 100)
	v.SetDefault("server.rate_window", time.Minute)
	v.SetDefault("server.cors_origins", []string{"http://localhost:3000", "http://127.0.0.1:3000"})
	v.SetDefault("server.swagger_user", "")
	v.SetDefault("server.swagger_pass", "")
	v.SetDefault("server.request_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 15*time.Second)
	v.SetDefault("server.enable_idempotency", true)
	v.SetDefault("cache.size", 1000)
	v.SetDefault("cache.ttl", 10*time.Minute)
	v.SetDefault("engine.near_threshold", 0.02)
	v.SetDefault("engine.address_near_threshold", 0.05)
	v.SetDefault("engine.fraud_threshold_kg", 500.0)
	v.SetDefault("engine.large_basket_threshold", 5)
	v.SetDefault("engine.fluctuation_min", 0.95)
	v.SetDefault("engine.fluctuation_max", 1.05)
	v.SetDefault("catalog.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return eris.Wrap(err, "config: invalid")
	}
	return nil
}
