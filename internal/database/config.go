package database

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	HTTPAddr        string        `mapstructure:"http_addr"`
	LogLevel        string        `mapstructure:"log_level"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	StoreDriver   string `mapstructure:"store_driver"`
	MongoURI      string `mapstructure:"mongo_uri"`
	MongoDatabase string `mapstructure:"mongo_database"`

	Host       string `mapstructure:"db_host"`
	Port       string `mapstructure:"db_port"`
	User       string `mapstructure:"db_user"`
	Password   string `mapstructure:"db_password"`
	DBName     string `mapstructure:"db_name"`
	SSLMode    string `mapstructure:"db_sslmode"`
	MaxDBConns int32  `mapstructure:"db_max_conns"`

	RedisURL      string `mapstructure:"redis_url"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
}

var defaults = map[string]any{
	"http_addr":        ":5000",
	"log_level":        "info",
	"shutdown_timeout": "10s",
	"store_driver":     DriverMongo,
	"mongo_uri":        "mongodb://localhost:27017/",
	"mongo_database":   "trend_x_shop",
	"db_host":          "localhost",
	"db_port":          "5432",
	"db_user":          "app_user",
	"db_password":      "postgres_password",
	"db_name":          "trend_x_shop",
	"db_sslmode":       "disable",
	"db_max_conns":     10,
	"redis_url":        "",
	"redis_password":   "",
	"redis_db":         0,
}

// LoadConfig reads an optional .env file, then resolves every key from the
// environment (upper-cased, e.g. MONGO_URI) over the built-in defaults.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	switch cfg.StoreDriver {
	case DriverMongo, DriverPostgres, DriverMemory:
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	return &cfg, nil
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.DBName,
		c.SSLMode,
	)
}
