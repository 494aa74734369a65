package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/litmart/litmart-backend/pkg/logger"
)

// Config is the full application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port int    `yaml:"port"`
	Env  string `yaml:"env"`
}

// DatabaseConfig holds MySQL connection settings
type DatabaseConfig struct {
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	User            string `yaml:"user"`
	Password        string `yaml:"password"`
	Name            string `yaml:"name"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"` // seconds
}

// GetDSN builds the MySQL DSN
func (d DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

// Duration wraps time.Duration so YAML values like "15m" parse
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// JWTConfig holds token settings
type JWTConfig struct {
	Secret    string   `yaml:"secret"`
	ExpiresIn Duration `yaml:"expires_in"`
	RefreshIn Duration `yaml:"refresh_in"`
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowOrigins string `yaml:"allow_origins"`
}

// Load reads the YAML config file and applies environment variable overrides.
// Env vars win over file values so deployments never need file edits for secrets.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{Port: 8080, Env: "local"},
		Database: DatabaseConfig{
			Host:            "127.0.0.1",
			Port:            3306,
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{Host: "127.0.0.1", Port: 6379, PoolSize: 10},
		JWT:   JWTConfig{ExpiresIn: Duration(15 * time.Minute), RefreshIn: Duration(7 * 24 * time.Hour)},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		cfg.Redis.Host = v
	}
	if v := os.Getenv("REDIS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Redis.Port = port
		}
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("CORS_ALLOW_ORIGINS"); v != "" {
		cfg.CORS.AllowOrigins = v
	}
}

// LogResolved logs the effective (non-secret) configuration at startup
func LogResolved(cfg *Config) {
	logger.Info("config: server port=%d env=%s", cfg.Server.Port, cfg.Server.Env)
	logger.Info("config: database host=%s port=%d name=%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)
	logger.Info("config: redis host=%s port=%d db=%d", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
}
