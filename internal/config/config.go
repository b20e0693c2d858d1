// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file when
// present), loads them into structured Go types, and validates that required
// values are present so they can be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (cache, dictionary, observability).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process environment before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the prefix DICTIONARY_. After the prefix is removed
	the key is lowercased and every double underscore becomes a "." so that
	nested struct fields can be addressed:

		DICTIONARY_SERVER__PORT          -> server.port
		DICTIONARY_DATABASE__MONGO__URI  -> database.mongo.uri
		DICTIONARY_CACHE__EXPIRATION     -> cache.expiration

	Single underscores are kept, so snake_case field names survive
	(DICTIONARY_SERVER__READ_TIMEOUT -> server.read_timeout).
*/

// EnvPrefix is the prefix every configuration variable must carry.
const EnvPrefix = "DICTIONARY_"

// Supported document stores.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Cache         CacheConfig          `koanf:"cache"`
	Auth          AuthConfig           `koanf:"auth" validate:"required"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Dictionary    DictionaryConfig     `koanf:"dictionary"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
	// RateLimit is the number of requests per second allowed per client IP.
	// Zero disables rate limiting.
	RateLimit float64 `koanf:"rate_limit"`
}

// DatabaseConfig selects the document store and carries the settings of each
// supported driver. Only the block matching Driver has to be filled in.
type DatabaseConfig struct {
	Driver   string         `koanf:"driver" validate:"required,oneof=mongo postgres"`
	Mongo    MongoConfig    `koanf:"mongo"`
	Postgres PostgresConfig `koanf:"postgres"`
}

// MongoConfig contains MongoDB connection parameters.
type MongoConfig struct {
	URI      string `koanf:"uri"`
	Database string `koanf:"database"`
	// Timeout bounds every single repository call.
	Timeout time.Duration `koanf:"timeout"`
}

// PostgresConfig contains PostgreSQL connection parameters and pool tuning.
type PostgresConfig struct {
	Host            string `koanf:"host"`
	Port            int    `koanf:"port"`
	User            string `koanf:"user"`
	Password        string `koanf:"password"`
	Name            string `koanf:"name"`
	SSLMode         string `koanf:"ssl_mode"`
	MaxOpenConns    int    `koanf:"max_open_conns"`
	MaxIdleConns    int    `koanf:"max_idle_conns"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time"`
}

// RedisConfig contains Redis connection details.
// Address is typically "host:port".
type RedisConfig struct {
	Address  string `koanf:"address" validate:"required"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

// CacheConfig controls the search result cache.
type CacheConfig struct {
	// Expiration is the fixed lifetime of every cached search result.
	Expiration time.Duration `koanf:"expiration" validate:"min=1s"`
}

// AuthConfig stores authentication-related secrets.
type AuthConfig struct {
	// SecretKey is the Clerk secret used to verify sessions on write routes.
	SecretKey string `koanf:"secret_key" validate:"required"`
	// MainKey is the privileged API key. Requests presenting it in the
	// X-API-Key header may list the whole dictionary with an empty keyword.
	MainKey string `koanf:"main_key"`
}

// IntegrationConfig holds third-party integration settings.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	// EmailFrom is the sender identity used for outgoing emails.
	EmailFrom string `koanf:"email_from"`
	// EditorEmails receive a notification whenever a word is created.
	EditorEmails []string `koanf:"editor_emails"`
}

// DictionaryConfig points at the bundled JSON dictionary used by the
// headword lookup endpoint.
type DictionaryConfig struct {
	Path string `koanf:"path"`
	// PatternCacheSize bounds the LRU of compiled search patterns.
	PatternCacheSize int `koanf:"pattern_cache_size" validate:"min=1"`
}

// defaults are loaded before the environment so any of them can be overridden.
var defaults = map[string]any{
	"database.driver":               DriverMongo,
	"database.mongo.database":       "dictionary",
	"database.mongo.timeout":        "5s",
	"database.postgres.ssl_mode":    "disable",
	"cache.expiration":              "168h",
	"dictionary.pattern_cache_size": 256,
	"integration.email_from":        "Igbo Dictionary <onboarding@resend.dev>",
}

// listKeys are read from comma separated env values.
var listKeys = map[string]bool{
	"server.cors_allowed_origins":        true,
	"integration.editor_emails":          true,
	"observability.health_checks.checks": true,
}

// envKey maps DICTIONARY_SERVER__READ_TIMEOUT to server.read_timeout.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

func envValue(s, value string) (string, any) {
	key := envKey(s)
	if !listKeys[key] {
		return key, value
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return key, items
}

// LoadConfig loads configuration from environment variables, unmarshals it
// into Config, validates it, applies defaults and returns the result.
//
// Behavior summary:
//   - Loads defaults, then env vars with prefix DICTIONARY_
//   - Unmarshals into Config
//   - Validates struct tags and driver-specific requirements
//   - Sets default observability if missing and forces its service name/env
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("could not load default config: %w", err)
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := mainConfig.Database.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database config: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	mainConfig.Observability.ServiceName = "dictionary-api"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// Validate enforces the settings required by the selected driver.
func (c *DatabaseConfig) Validate() error {
	switch c.Driver {
	case DriverMongo:
		if c.Mongo.URI == "" {
			return fmt.Errorf("database.mongo.uri is required for the mongo driver")
		}
		if c.Mongo.Database == "" {
			return fmt.Errorf("database.mongo.database is required for the mongo driver")
		}
	case DriverPostgres:
		p := c.Postgres
		if p.Host == "" || p.Port == 0 || p.User == "" || p.Name == "" {
			return fmt.Errorf("database.postgres host, port, user and name are required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
	}
	return nil
}
