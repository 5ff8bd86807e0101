package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "CORDIAL"

// RegisterFlags adds one flag per configuration key, named after the key.
func RegisterFlags(fs *pflag.FlagSet) {
	d := NewConfigurationWithDefaults()

	fs.String("server.mode", d.Server.ServerMode, "Server mode: dev or prod")
	fs.Int("server.http-port", d.Server.HTTPPort, "HTTP listen port")
	fs.StringSlice("server.allowed-origins", d.Server.AllowedOrigins, "Origins allowed by CORS")
	fs.Duration("server.shutdown-timeout", d.Server.ShutdownTimeout, "Graceful shutdown timeout")
	fs.String("database.engine", d.Database.Engine, "Database engine: postgres or duckdb")
	fs.String("database.bootstrap", d.Database.Bootstrap, "Bootstrap mode: development (drop and recreate) or existing")
	fs.String("database.path", d.Database.Path, "DuckDB database path")
	fs.Int("database.max-connections", d.Database.MaxConnections, "Maximum pooled connections")
	fs.Duration("database.acquire-timeout", d.Database.AcquireTimeout, "Maximum wait for a pooled connection")
	fs.Duration("database.connect-timeout", d.Database.ConnectTimeout, "Maximum wait for the database server to accept connections")
	fs.String("log-format", d.LogFormat, "Log format: console or json")
	fs.String("log-level", d.LogLevel, "Log level: debug, info, warn or error")
}

// NewViper returns a viper instance bound to fs and to CORDIAL_* environment
// variables, e.g. CORDIAL_SERVER_HTTP_PORT.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	return v, nil
}

// Load reads an optional config file, then decodes v over the defaults and validates the result.
func Load(v *viper.Viper, configFile string) (*Configuration, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := NewConfigurationWithDefaults()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
