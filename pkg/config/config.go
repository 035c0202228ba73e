package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Storage backend selectors for the credential store.
const (
	StorageBackendFile  = "file"
	StorageBackendRedis = "redis"
)

type Config struct {
	Env string

	API     APIConfig
	Storage StorageConfig
	Redis   RedisConfig
	Log     LogConfig
	Demo    DemoConfig
	Gateway GatewayConfig
}

// APIConfig describes how to reach the school backend.
type APIConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
}

// StorageConfig selects and tunes the local credential store backend.
type StorageConfig struct {
	Backend string
	Dir     string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type LogConfig struct {
	Level  string
	Format string
}

// DemoConfig toggles demo mode: domain clients short-circuit with fixture
// data instead of calling the backend.
type DemoConfig struct {
	Enabled bool
}

// GatewayConfig tunes the local demo gateway server.
type GatewayConfig struct {
	Port          int
	JWTSecret     string
	JWTExpiration time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.API = APIConfig{
		BaseURL:        v.GetString("API_BASE_URL"),
		RequestTimeout: parseDuration(v.GetString("API_REQUEST_TIMEOUT"), 15*time.Second),
	}

	cfg.Storage = StorageConfig{
		Backend: v.GetString("STORAGE_BACKEND"),
		Dir:     v.GetString("STORAGE_DIR"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Demo = DemoConfig{
		Enabled: v.GetBool("DEMO_MODE"),
	}

	cfg.Gateway = GatewayConfig{
		Port:          v.GetInt("GATEWAY_PORT"),
		JWTSecret:     v.GetString("GATEWAY_JWT_SECRET"),
		JWTExpiration: parseDuration(v.GetString("GATEWAY_JWT_EXPIRATION"), 24*time.Hour),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("API_BASE_URL", "http://localhost:8095")
	v.SetDefault("API_REQUEST_TIMEOUT", "15s")

	v.SetDefault("STORAGE_BACKEND", StorageBackendFile)
	v.SetDefault("STORAGE_DIR", "./sessions")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("DEMO_MODE", false)

	v.SetDefault("GATEWAY_PORT", 8095)
	v.SetDefault("GATEWAY_JWT_SECRET", "dev_secret")
	v.SetDefault("GATEWAY_JWT_EXPIRATION", "24h")
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
