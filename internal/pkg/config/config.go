package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// DefaultCatalogURL is the ASU class search endpoint.
const DefaultCatalogURL = "https://eadvs-cscc-catalog-api.apps.asu.edu/catalog-microservices/api/v1/search/classes"

type Config struct {
	Env  string
	Port int

	Catalog   CatalogConfig
	Watch     WatchConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Slack     SlackConfig
	Heartbeat HeartbeatConfig
	Log       LogConfig
	CORS      CORSConfig
}

type CatalogConfig struct {
	BaseURL string
	Token   string
	// Timeout of zero leaves the request unbounded.
	Timeout time.Duration
}

// WatchConfig seeds the watch list on first start.
type WatchConfig struct {
	Term      string
	Classes   []string
	Whitelist []string

	// Reported only; nothing schedules checks or caps notifications.
	CheckIntervalMinutes     int
	MaxNotificationsPerClass int
}

type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

type SlackConfig struct {
	SocketToken string
}

type HeartbeatConfig struct {
	URL      string
	Interval time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from ./.env and the environment.
func Load() (*Config, error) {
	return load(".env")
}

func load(envFile string) (*Config, error) {
	_ = godotenv.Load(envFile)

	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")

	cfg.Catalog = CatalogConfig{
		BaseURL: v.GetString("CATALOG_BASE_URL"),
		Token:   v.GetString("CATALOG_TOKEN"),
		Timeout: parseDuration(v.GetString("CATALOG_TIMEOUT"), 0),
	}

	cfg.Watch = WatchConfig{
		Term:                     v.GetString("TERM_NUMBER"),
		Classes:                  splitAndTrim(v.GetString("CLASS_SEARCH_NAME")),
		Whitelist:                splitAndTrim(v.GetString("WHITELIST")),
		CheckIntervalMinutes:     v.GetInt("CHECK_INTERVAL_MINUTES"),
		MaxNotificationsPerClass: v.GetInt("MAX_NOTIFICATIONS_PER_CLASS"),
	}

	cfg.Mongo = MongoConfig{
		URI:        v.GetString("MONGO_CONNECTION_STRING"),
		Database:   v.GetString("MONGO_DATABASE"),
		Collection: v.GetString("MONGO_COLLECTION"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Cache = CacheConfig{
		Enabled: v.GetBool("ENABLE_CACHE"),
		TTL:     parseDuration(v.GetString("CACHE_TTL"), 2*time.Minute),
	}

	cfg.Slack = SlackConfig{SocketToken: v.GetString("SLACK_SOCKET_TOKEN")}

	cfg.Heartbeat = HeartbeatConfig{
		URL:      v.GetString("HEARTBEAT_URL"),
		Interval: parseDuration(v.GetString("HEARTBEAT_INTERVAL"), 15*time.Minute),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)

	v.SetDefault("CATALOG_BASE_URL", DefaultCatalogURL)
	v.SetDefault("CATALOG_TOKEN", "null")
	v.SetDefault("CATALOG_TIMEOUT", "0s")

	v.SetDefault("TERM_NUMBER", "2257")
	v.SetDefault("CLASS_SEARCH_NAME", "CSE 476")
	v.SetDefault("WHITELIST", "88926")
	v.SetDefault("CHECK_INTERVAL_MINUTES", 8)
	v.SetDefault("MAX_NOTIFICATIONS_PER_CLASS", 6)

	v.SetDefault("MONGO_CONNECTION_STRING", "")
	v.SetDefault("MONGO_DATABASE", "monitor-data")
	v.SetDefault("MONGO_COLLECTION", "classes")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("ENABLE_CACHE", false)
	v.SetDefault("CACHE_TTL", "2m")

	v.SetDefault("SLACK_SOCKET_TOKEN", "")
	v.SetDefault("HEARTBEAT_URL", "")
	v.SetDefault("HEARTBEAT_INTERVAL", "15m")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("ALLOWED_ORIGINS", "")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
