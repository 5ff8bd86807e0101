package config

import (
	"slices"
	"time"

	srvErrors "github.com/cordial-dev/cordial/pkg/errors"
)

const (
	ServerModeDev  = "dev"
	ServerModeProd = "prod"

	EnginePostgres = "postgres"
	EngineDuckDB   = "duckdb"

	BootstrapDevelopment = "development"
	BootstrapExisting    = "existing"
)

//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server Database

type Configuration struct {
	Server    Server   `mapstructure:"server" debugmap:"visible"`
	Database  Database `mapstructure:"database" debugmap:"visible"`
	LogFormat string   `mapstructure:"log-format" default:"console" debugmap:"visible"`
	LogLevel  string   `mapstructure:"log-level" default:"info" debugmap:"visible"`
}

type Server struct {
	ServerMode      string        `mapstructure:"mode" default:"dev" debugmap:"visible"`
	HTTPPort        int           `mapstructure:"http-port" default:"8000" debugmap:"visible"`
	AllowedOrigins  []string      `mapstructure:"allowed-origins" default:"[\"*\"]" debugmap:"visible"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown-timeout" default:"10s" debugmap:"visible"`
}

type Database struct {
	Engine         string        `mapstructure:"engine" default:"postgres" debugmap:"visible"`
	Bootstrap      string        `mapstructure:"bootstrap" default:"development" debugmap:"visible"`
	Path           string        `mapstructure:"path" default:":memory:" debugmap:"visible"`
	MaxConnections int           `mapstructure:"max-connections" default:"5" debugmap:"visible"`
	AcquireTimeout time.Duration `mapstructure:"acquire-timeout" default:"3s" debugmap:"visible"`
	ConnectTimeout time.Duration `mapstructure:"connect-timeout" default:"30s" debugmap:"visible"`
}

// NewConfigurationWithDefaults returns a configuration with every field set to its default.
func NewConfigurationWithDefaults() *Configuration {
	return NewConfigurationWithOptionsAndDefaults()
}

func (c *Configuration) Validate() error {
	if !slices.Contains([]string{ServerModeDev, ServerModeProd}, c.Server.ServerMode) {
		return srvErrors.NewInvalidConfigurationError("invalid server mode %q: must be %q or %q", c.Server.ServerMode, ServerModeDev, ServerModeProd)
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return srvErrors.NewInvalidConfigurationError("invalid http port %d", c.Server.HTTPPort)
	}
	if !slices.Contains([]string{EnginePostgres, EngineDuckDB}, c.Database.Engine) {
		return srvErrors.NewInvalidConfigurationError("invalid database engine %q: must be %q or %q", c.Database.Engine, EnginePostgres, EngineDuckDB)
	}
	if !slices.Contains([]string{BootstrapDevelopment, BootstrapExisting}, c.Database.Bootstrap) {
		return srvErrors.NewInvalidConfigurationError("invalid database bootstrap %q: must be %q or %q", c.Database.Bootstrap, BootstrapDevelopment, BootstrapExisting)
	}
	if c.Database.MaxConnections <= 0 {
		return srvErrors.NewInvalidConfigurationError("database max connections must be positive, got %d", c.Database.MaxConnections)
	}
	if c.Database.AcquireTimeout <= 0 {
		return srvErrors.NewInvalidConfigurationError("database acquire timeout must be positive")
	}
	return nil
}
