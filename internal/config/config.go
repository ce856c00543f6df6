// FilePath: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. AGRISYNTH_SERVER__PORT
const EnvPrefix = "AGRISYNTH"

// Snapshot store backends
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config holds all configuration for the service
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Snapshots  SnapshotConfig   `mapstructure:"snapshots"`
	Generator  GeneratorConfig  `mapstructure:"generator"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Host            string        `mapstructure:"host"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
}

type RedisConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

type SnapshotConfig struct {
	Store           string        `mapstructure:"store"` // memory or redis
	TTL             time.Duration `mapstructure:"ttl"`   // 0 keeps snapshots until deleted
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	MaxSnapshots    int           `mapstructure:"max_snapshots"`
}

type GeneratorConfig struct {
	DefaultSeed uint64       `mapstructure:"default_seed"` // 0 draws a fresh seed per request
	Clamp       bool         `mapstructure:"clamp"`
	MaxCount    int          `mapstructure:"max_count"`
	MaxDays     int          `mapstructure:"max_days"`
	MaxRecords  int          `mapstructure:"max_records"` // upper bound on records produced by one request
	Dataset     DatasetSizes `mapstructure:"dataset"`
}

// DatasetSizes are the collection sizes of a snapshot created without explicit sizes
type DatasetSizes struct {
	Users               int `mapstructure:"users"`
	Farms               int `mapstructure:"farms"`
	SensorDays          int `mapstructure:"sensor_days"`
	PestDetections      int `mapstructure:"pest_detections"`
	Livestock           int `mapstructure:"livestock"`
	LivestockHealthDays int `mapstructure:"livestock_health_days"`
	Products            int `mapstructure:"products"`
	Orders              int `mapstructure:"orders"`
}

type MonitoringConfig struct {
	LogEvents bool `mapstructure:"log_events"`
}

// Load reads .env, ./config/config.yaml and AGRISYNTH_* environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}
	return LoadFrom("./config")
}

// LoadFrom initializes configuration from environment variables and a config
// file in the given directories
func LoadFrom(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))
	v.AutomaticEnv()

	// Set defaults
	setDefaults(v)

	// Load config file if exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("server.cors_origins", []string{"*"})

	// Redis defaults
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "agrisynth:")

	// Snapshot defaults
	v.SetDefault("snapshots.store", StoreMemory)
	v.SetDefault("snapshots.ttl", "24h")
	v.SetDefault("snapshots.cleanup_interval", "5m")
	v.SetDefault("snapshots.max_snapshots", 100)

	// Generator defaults
	v.SetDefault("generator.default_seed", 0)
	v.SetDefault("generator.clamp", true)
	v.SetDefault("generator.max_count", 10000)
	v.SetDefault("generator.max_days", 366)
	v.SetDefault("generator.max_records", 200000)
	v.SetDefault("generator.dataset.users", 50)
	v.SetDefault("generator.dataset.farms", 30)
	v.SetDefault("generator.dataset.sensor_days", 30)
	v.SetDefault("generator.dataset.pest_detections", 20)
	v.SetDefault("generator.dataset.livestock", 40)
	v.SetDefault("generator.dataset.livestock_health_days", 7)
	v.SetDefault("generator.dataset.products", 40)
	v.SetDefault("generator.dataset.orders", 60)

	// Monitoring defaults
	v.SetDefault("monitoring.log_events", true)
}

func validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", config.Server.Port)
	}
	switch config.Snapshots.Store {
	case StoreMemory:
	case StoreRedis:
		if config.Redis.Host == "" {
			return fmt.Errorf("redis host is required for the redis snapshot store")
		}
	default:
		return fmt.Errorf("unknown snapshot store %q", config.Snapshots.Store)
	}
	if config.Snapshots.TTL < 0 {
		return fmt.Errorf("snapshot ttl must not be negative")
	}
	if config.Snapshots.CleanupInterval <= 0 {
		return fmt.Errorf("snapshot cleanup interval must be positive")
	}
	if config.Snapshots.MaxSnapshots <= 0 {
		return fmt.Errorf("max snapshots must be positive")
	}
	if config.Generator.MaxCount <= 0 || config.Generator.MaxDays <= 0 || config.Generator.MaxRecords <= 0 {
		return fmt.Errorf("generator limits must be positive")
	}
	d := config.Generator.Dataset
	for name, n := range map[string]int{
		"users": d.Users, "farms": d.Farms, "sensor_days": d.SensorDays, "pest_detections": d.PestDetections,
		"livestock": d.Livestock, "livestock_health_days": d.LivestockHealthDays, "products": d.Products, "orders": d.Orders,
	} {
		if n < 0 {
			return fmt.Errorf("generator.dataset.%s must not be negative", name)
		}
	}
	return nil
}
