package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Metrics  MetricsConfig
	Zones    ZonesConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Env                    string
	User                   string
	Password               string
	DBName                 string
	InstanceConnectionName string
	ProxyHost              string
	ProxyPort              int
	SSLMode                string
	PoolSize               int
	MaxOverflow            int
	ConnMaxLifetime        time.Duration
	ConnMaxIdleTime        time.Duration
	ConnectRetries         int
	ConnectRetryDelay      time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	StatsCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

type MetricsConfig struct {
	Addr string
}

type ZonesConfig struct {
	File string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// .env is optional, environment variables always apply
	if err := viper.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	env := viper.GetString("ENV")
	if env != EnvDevelopment {
		env = EnvProduction
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  env,
		},
		Database: DatabaseConfig{
			Env:                    env,
			User:                   viper.GetString("DB_USER"),
			Password:               viper.GetString("DB_PASS"),
			DBName:                 viper.GetString("DB_NAME"),
			InstanceConnectionName: viper.GetString("CLOUDSQL_CONNECTION_NAME"),
			ProxyHost:              viper.GetString("DB_PROXY_HOST"),
			ProxyPort:              viper.GetInt("DB_PROXY_PORT"),
			SSLMode:                viper.GetString("DB_SSLMODE"),
			PoolSize:               viper.GetInt("DB_POOL_SIZE"),
			MaxOverflow:            viper.GetInt("DB_MAX_OVERFLOW"),
			ConnMaxLifetime:        time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime:        time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
			ConnectRetries:         viper.GetInt("DB_CONNECT_RETRIES"),
			ConnectRetryDelay:      time.Duration(viper.GetInt("DB_CONNECT_RETRY_DELAY")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			StatsCacheTTL: time.Duration(viper.GetInt("STATS_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Metrics: MetricsConfig{
			Addr: viper.GetString("METRICS_ADDR"),
		},
		Zones: ZonesConfig{
			File: viper.GetString("ZONES_FILE"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Database.DBName == "" {
		cfg.Database.DBName = "nyctaxi"
	}
	if cfg.Database.ProxyHost == "" {
		cfg.Database.ProxyHost = "cloud-sql-proxy"
	}
	if cfg.Database.ProxyPort == 0 {
		cfg.Database.ProxyPort = 5432
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.PoolSize == 0 {
		cfg.Database.PoolSize = 5
	}
	if cfg.Database.MaxOverflow == 0 {
		cfg.Database.MaxOverflow = 2
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 1800 * time.Second
	}
	if cfg.Database.ConnMaxIdleTime == 0 {
		cfg.Database.ConnMaxIdleTime = 300 * time.Second
	}
	if cfg.Database.ConnectRetries == 0 {
		cfg.Database.ConnectRetries = 5
	}
	if cfg.Database.ConnectRetryDelay == 0 {
		cfg.Database.ConnectRetryDelay = 5 * time.Second
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Cache.StatsCacheTTL == 0 {
		cfg.Cache.StatsCacheTTL = time.Hour
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Metrics.Addr == "" {
		cfg.Metrics.Addr = ":9100"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Database.User == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASS is required")
	}
	if c.Database.Env != EnvDevelopment && c.Database.InstanceConnectionName == "" {
		return fmt.Errorf("CLOUDSQL_CONNECTION_NAME is required outside development")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == EnvDevelopment
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// DSN собирает строку подключения: в development через TCP к Cloud SQL Auth Proxy,
// в production через Unix-сокет, смонтированный коннектором Cloud SQL
func (c *DatabaseConfig) DSN() string {
	if c.Env == EnvDevelopment {
		return fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			c.ProxyHost, c.ProxyPort, c.User, c.Password, c.DBName, c.SSLMode,
		)
	}
	return fmt.Sprintf(
		"host=/cloudsql/%s user=%s password=%s dbname=%s sslmode=disable",
		c.InstanceConnectionName, c.User, c.Password, c.DBName,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
