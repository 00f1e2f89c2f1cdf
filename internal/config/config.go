// Package config loads the service configuration from the environment.
//
// It reads variables (optionally from a `.env` file), maps them into
// structured Go types, applies defaults and validates required values so
// the process fails fast on bad configuration. The resulting *Config is
// built once in main and passed down explicitly; nothing else in the
// service reads the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads `.env` into the process environment, if present,
	// before LoadConfig reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix is the prefix of generic overrides, e.g.
	// EMPLOYEES_SERVER__READ_TIMEOUT=30 -> server.read_timeout.
	EnvPrefix = "EMPLOYEES_"

	// DefaultDatabasePort is used when DB_PORT is unset.
	DefaultDatabasePort = 5432

	// DefaultSSLMode negotiates TLS when the server offers it.
	DefaultSSLMode = "prefer"

	// DefaultConnectTimeout bounds connection establishment, in seconds.
	DefaultConnectTimeout = 10
)

// envAliases maps the conventional, unprefixed variable names onto koanf keys.
var envAliases = map[string]string{
	"DB_HOST":     "database.host",
	"DB_NAME":     "database.name",
	"DB_USER":     "database.user",
	"DB_PASSWORD": "database.password",
	"DB_PORT":     "database.port",
	"DB_SSLMODE":  "database.ssl_mode",
	"PORT":        "server.port",
	"APP_ENV":     "primary.env",
	"LOG_LEVEL":   "observability.logging.level",
	"LOG_FORMAT":  "observability.logging.format",
}

// Config is the root configuration object.
//
// Observability is a pointer because the whole block is optional; defaults
// are injected when it is absent.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server. Timeouts are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
}

// DatabaseConfig contains the PostgreSQL connection parameters.
//
// There are no pool settings: the service opens one connection per request.
type DatabaseConfig struct {
	Host           string `koanf:"host" validate:"required"`
	Port           int    `koanf:"port" validate:"required,min=1,max=65535"`
	User           string `koanf:"user" validate:"required"`
	Password       string `koanf:"password"`
	Name           string `koanf:"name" validate:"required"`
	SSLMode        string `koanf:"ssl_mode" validate:"oneof=disable allow prefer require verify-ca verify-full"`
	ConnectTimeout int    `koanf:"connect_timeout" validate:"min=1"`
}

// LoadConfig reads the environment, applies defaults and validates the result.
//
// Sources, later ones win:
//   - EMPLOYEES_<SECTION>__<KEY> variables (double underscore nests)
//   - the conventional names in envAliases (DB_HOST, DB_PORT, PORT, ...)
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load prefixed env variables: %w", err)
	}

	// An empty prefix reads the whole environment; the callback blanks every
	// key that is not an alias, which makes koanf skip it.
	err = k.Load(env.Provider("", ".", func(s string) string {
		return envAliases[s]
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	mainConfig.applyDefaults()

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name is fixed; environment always follows primary.env so logs
	// and traces agree with the rest of the process.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

func (c *Config) applyDefaults() {
	if c.Primary.Env == "" {
		c.Primary.Env = "development"
	}

	if c.Server.Port == "" {
		c.Server.Port = "8000"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 30
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if len(c.Server.CORSAllowedOrigins) == 0 {
		c.Server.CORSAllowedOrigins = []string{"*"}
	}

	if c.Database.Port == 0 {
		c.Database.Port = DefaultDatabasePort
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = DefaultSSLMode
	}
	if c.Database.ConnectTimeout == 0 {
		c.Database.ConnectTimeout = DefaultConnectTimeout
	}

	if c.Observability != nil {
		c.Observability.applyDefaults()
	}
}
