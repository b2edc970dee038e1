// Package config loads process configuration from the environment.
package config

import (
	"log/slog"

	"github.com/caarlos0/env/v11"

	"github.com/lamali292/one-piece-api/internal/errors"
	"github.com/lamali292/one-piece-api/internal/experience"
)

// Store selects the progress backend.
type Store string

// Progress backends.
const (
	StoreMemory Store = "memory"
	StoreRedis  Store = "redis"
	StoreBolt   Store = "bolt"
)

// Policy decides what happens to a category that fails to load.
type Policy string

// Load policies.
const (
	// PolicyStrict fails the whole load.
	PolicyStrict Policy = "strict"
	// PolicyWarn skips the category and records a warning.
	PolicyWarn Policy = "warn"
)

// Config is the process configuration.
type Config struct {
	DataDir   string `env:"DATA_DIR" envDefault:"data"`
	Store     Store  `env:"STORE" envDefault:"memory"`
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	BoltPath  string `env:"BOLT_PATH" envDefault:"progress.db"`
	Policy    Policy `env:"LOAD_POLICY" envDefault:"strict"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`

	XPTime experience.TimeConfig
}

// EnvPrefix is prepended to every variable name.
const EnvPrefix = "OPAPI_"

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	return parse(env.Options{Prefix: EnvPrefix})
}

// LoadFrom reads the configuration from the given variables instead of the
// process environment.
func LoadFrom(environ map[string]string) (*Config, error) {
	return parse(env.Options{Prefix: EnvPrefix, Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate validates the Config.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("data_dir", c.DataDir, vb)
	errors.ValidateEnum("store", string(c.Store), []string{string(StoreMemory), string(StoreRedis), string(StoreBolt)}, vb)
	errors.ValidateEnum("load_policy", string(c.Policy), []string{string(PolicyStrict), string(PolicyWarn)}, vb)

	switch c.Store {
	case StoreRedis:
		errors.ValidateRequired("redis_addr", c.RedisAddr, vb)
	case StoreBolt:
		errors.ValidateRequired("bolt_path", c.BoltPath, vb)
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		vb.InvalidField("log_level", c.LogLevel)
	}

	c.XPTime.ValidateFields(vb)
	return vb.Build()
}

// ParseLogLevel parses debug, info, warn or error.
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, errors.InvalidArgumentf("unknown log level %q", s)
	}
	return level, nil
}

// SlogLevel returns the configured log level, info when invalid.
func (c *Config) SlogLevel() slog.Level {
	level, _ := ParseLogLevel(c.LogLevel)
	return level
}
