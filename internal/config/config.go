package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Registry RegistryConfig
	Store    StoreConfig
	Database DatabaseConfig
	Catalog  CatalogConfig
	Logger   LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int

	// PublicBaseURL overrides the request URL when resolving redirects.
	// Set it when running behind a proxy or shared cache.
	PublicBaseURL      string
	CORSAllowedOrigins []string
}

// RegistryConfig configures the third-party model registry client.
// An empty APIKey is allowed at startup; lookups then fail with a
// configuration error.
type RegistryConfig struct {
	URL       string
	APIKey    string
	Timeout   time.Duration
	RateLimit float64
}

// StoreConfig configures the managed store's object storage.
type StoreConfig struct {
	URL             string
	ServiceKey      string
	ImageBucket     string
	PlaceholderPath string
	Timeout         time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// CatalogConfig points at an optional catalog file. Empty means the built-in
// catalog.
type CatalogConfig struct {
	Path string
}

type LoggerConfig struct {
	Level  string
	Format string
}

// Load reads .env files when present, then the environment, then defaults.
func Load() (*Config, error) {
	// Existing environment variables win over .env values.
	for _, f := range []string{".env.local", ".env"} {
		_ = godotenv.Load(f)
	}

	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("PUBLIC_BASE_URL", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("REGISTRY_URL", "https://huggingface.co/api")
	v.SetDefault("REGISTRY_TIMEOUT", "30s")
	v.SetDefault("REGISTRY_RATE_LIMIT", 0)
	v.SetDefault("STORE_URL", "http://localhost:54321")
	v.SetDefault("STORE_IMAGE_BUCKET", "model-images")
	v.SetDefault("STORE_PLACEHOLDER_PATH", "/images/model-placeholder.jpg")
	v.SetDefault("STORE_TIMEOUT", "30s")
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", 5432)
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "postgres")
	v.SetDefault("DATABASE_NAME", "postgres")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	v.SetDefault("DATABASE_MAX_IDLE_CONNS", 2)
	v.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("CATALOG_PATH", "")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()
	_ = v.BindEnv("REGISTRY_API_KEY", "REGISTRY_API_KEY", "HUGGINGFACE_API_KEY")
	_ = v.BindEnv("STORE_SERVICE_KEY", "STORE_SERVICE_KEY", "SUPABASE_SERVICE_ROLE_KEY")

	registryTimeout, err := parseDuration(v, "REGISTRY_TIMEOUT")
	if err != nil {
		return nil, err
	}
	storeTimeout, err := parseDuration(v, "STORE_TIMEOUT")
	if err != nil {
		return nil, err
	}
	connLifetime, err := parseDuration(v, "DATABASE_CONN_MAX_LIFETIME")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:               v.GetString("SERVER_HOST"),
			Port:               v.GetInt("SERVER_PORT"),
			PublicBaseURL:      strings.TrimRight(v.GetString("PUBLIC_BASE_URL"), "/"),
			CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Registry: RegistryConfig{
			URL:       strings.TrimRight(v.GetString("REGISTRY_URL"), "/"),
			APIKey:    v.GetString("REGISTRY_API_KEY"),
			Timeout:   registryTimeout,
			RateLimit: v.GetFloat64("REGISTRY_RATE_LIMIT"),
		},
		Store: StoreConfig{
			URL:             strings.TrimRight(v.GetString("STORE_URL"), "/"),
			ServiceKey:      v.GetString("STORE_SERVICE_KEY"),
			ImageBucket:     v.GetString("STORE_IMAGE_BUCKET"),
			PlaceholderPath: v.GetString("STORE_PLACEHOLDER_PATH"),
			Timeout:         storeTimeout,
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DATABASE_HOST"),
			Port:            v.GetInt("DATABASE_PORT"),
			User:            v.GetString("DATABASE_USER"),
			Password:        v.GetString("DATABASE_PASSWORD"),
			Name:            v.GetString("DATABASE_NAME"),
			SSLMode:         v.GetString("DATABASE_SSLMODE"),
			MaxOpenConns:    v.GetInt("DATABASE_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DATABASE_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connLifetime,
		},
		Catalog: CatalogConfig{
			Path: v.GetString("CATALOG_PATH"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	if cfg.Registry.RateLimit < 0 {
		return nil, fmt.Errorf("REGISTRY_RATE_LIMIT must be >= 0, got %v", cfg.Registry.RateLimit)
	}

	return cfg, nil
}

func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
