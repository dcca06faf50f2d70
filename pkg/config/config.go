package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Auth      AuthConfig
	Media     MediaConfig
	Redis     RedisConfig
	Logging   LoggingConfig
	Telemetry TelemetryConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Type string // "postgres" or "sqlite"
	URL  string // postgres DSN, or sqlite file path
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
	Host string
}

// AuthConfig holds the static credential table mapping api keys to user ids
type AuthConfig struct {
	APIKeys map[string]int64
}

// MediaConfig holds media storage configuration
type MediaConfig struct {
	StaticPath string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL     string
	Enabled bool
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string // "json" or "text"
}

// TelemetryConfig holds observability configuration
type TelemetryConfig struct {
	Enabled           bool
	JaegerURL         string
	PrometheusEnabled bool
	ServiceName       string
}

// Load loads configuration from environment variables and config file
func Load() (*Config, error) {
	setDefaults()

	viper.SetEnvPrefix("MICROBLOG")
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.microblog")
	viper.AddConfigPath("/etc/microblog")

	if err := viper.ReadInConfig(); err != nil {
		// Config file not found; this is OK if we have env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Database: DatabaseConfig{
			Type: getString("database_type", "sqlite"),
			URL:  getString("database_url", "microblog.db"),
		},
		Server: ServerConfig{
			Port: getInt("http_server_port", 8080),
			Host: getString("http_server_host", "0.0.0.0"),
		},
		Auth: AuthConfig{
			APIKeys: getAPIKeys("api_keys", map[string]int64{"test": 1, "test2": 2, "test3": 3}),
		},
		Media: MediaConfig{
			StaticPath: getString("static_path", "static"),
		},
		Redis: RedisConfig{
			URL:     getString("redis_url", ""),
			Enabled: getString("redis_url", "") != "",
		},
		Logging: LoggingConfig{
			Level:  getString("log_level", "INFO"),
			Format: getString("log_format", "json"),
		},
		Telemetry: TelemetryConfig{
			Enabled:           getBool("telemetry_enabled", false),
			JaegerURL:         getString("jaeger_url", ""),
			PrometheusEnabled: getBool("prometheus_enabled", false),
			ServiceName:       getString("service_name", "microblog"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("database_type", "sqlite")
	viper.SetDefault("database_url", "microblog.db")
	viper.SetDefault("http_server_port", 8080)
	viper.SetDefault("http_server_host", "0.0.0.0")
	viper.SetDefault("static_path", "static")
	viper.SetDefault("log_level", "INFO")
	viper.SetDefault("log_format", "json")
	viper.SetDefault("telemetry_enabled", false)
	viper.SetDefault("prometheus_enabled", false)
	viper.SetDefault("service_name", "microblog")
}

func getString(key, defaultValue string) string {
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	if val := os.Getenv("MICROBLOG_" + strings.ToUpper(key)); val != "" {
		return val
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	if val := os.Getenv("MICROBLOG_" + strings.ToUpper(key)); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if viper.IsSet(key) {
		return viper.GetBool(key)
	}
	if val := os.Getenv("MICROBLOG_" + strings.ToUpper(key)); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultValue
}

// getAPIKeys reads the credential table either from a config-file map
// (api_keys: {test: 1}) or from an env string "test:1,test2:2".
func getAPIKeys(key string, defaultValue map[string]int64) map[string]int64 {
	if viper.IsSet(key) {
		raw := viper.GetStringMapString(key)
		if len(raw) > 0 {
			if keys := parseAPIKeyMap(raw); len(keys) > 0 {
				return keys
			}
		}
	}
	if val := os.Getenv("MICROBLOG_" + strings.ToUpper(key)); val != "" {
		if keys := ParseAPIKeyList(val); len(keys) > 0 {
			return keys
		}
	}
	return defaultValue
}

func parseAPIKeyMap(raw map[string]string) map[string]int64 {
	keys := make(map[string]int64, len(raw))
	for token, idStr := range raw {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || id <= 0 {
			continue
		}
		keys[token] = id
	}
	return keys
}

// ParseAPIKeyList parses a "token:id,token:id" credential list.
// Malformed entries are skipped.
func ParseAPIKeyList(val string) map[string]int64 {
	keys := make(map[string]int64)
	for _, pair := range strings.Split(val, ",") {
		token, idStr, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || token == "" {
			continue
		}
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || id <= 0 {
			continue
		}
		keys[token] = id
	}
	return keys
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("database_url is required")
	}
	if c.Database.Type != "postgres" && c.Database.Type != "sqlite" {
		return fmt.Errorf("database_type must be postgres or sqlite")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("http_server_port must be between 1 and 65535")
	}
	if len(c.Auth.APIKeys) == 0 {
		return fmt.Errorf("at least one api key is required")
	}
	if c.Media.StaticPath == "" {
		return fmt.Errorf("static_path is required")
	}
	return nil
}
