package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DB      DBConfig
	Redis   RedisConfig
	Server  ServerConfig
	Weather WeatherConfig
	Seeder  SeederConfig
}

// DBType represents the favorites storage backend
type DBType string

const (
	DBTypePostgreSQL DBType = "postgres"
	DBTypeMemory     DBType = "memory"
	DBTypeRedis      DBType = "redis"
)

// DBConfig holds database configuration
type DBConfig struct {
	Type     DBType
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN returns the database connection string
func (c DBConfig) DSN() string {
	if c.Type == DBTypeMemory {
		// SQLite in-memory database
		if c.Name != "" && c.Name != "meteo" {
			return fmt.Sprintf("file:%s?mode=memory&cache=shared", c.Name)
		}
		return "file::memory:?cache=shared"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// IsMemory returns true if using in-memory database
func (c DBConfig) IsMemory() bool {
	return c.Type == DBTypeMemory
}

// IsSQL reports whether the backend is reached through database/sql
func (c DBConfig) IsSQL() bool {
	return c.Type == DBTypeMemory || c.Type == DBTypePostgreSQL
}

// RedisConfig holds the Redis backend settings
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// IsDevelopment reports whether the development logger should be used
func (c ServerConfig) IsDevelopment() bool {
	return c.Env == "development"
}

// WeatherConfig holds OpenWeatherMap settings
type WeatherConfig struct {
	APIKey      string
	BaseURL     string
	IconBaseURL string
	Timeout     time.Duration
}

// Validate checks the settings needed to query the provider
func (c WeatherConfig) Validate() error {
	if c.APIKey == "" {
		return errors.New("OPENWEATHER_API_KEY is required")
	}
	if c.BaseURL == "" {
		return errors.New("OPENWEATHER_BASE_URL must not be empty")
	}
	return nil
}

// SeederConfig holds settings for favorites import
type SeederConfig struct {
	File          string
	MinPopulation int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbType := DBType(getEnv("DB_TYPE", "memory"))
	if dbType != DBTypePostgreSQL && dbType != DBTypeMemory && dbType != DBTypeRedis {
		dbType = DBTypeMemory
	}

	config := &Config{
		DB: DBConfig{
			Type:     dbType,
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "meteo"),
			Password: getEnv("DB_PASSWORD", "meteo_password"),
			Name:     getEnv("DB_NAME", "meteo"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Server: ServerConfig{
			Port: getEnv("APP_PORT", "8080"),
			Env:  getEnv("APP_ENV", "production"),
		},
		Weather: WeatherConfig{
			APIKey:      getEnv("OPENWEATHER_API_KEY", ""),
			BaseURL:     getEnv("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5"),
			IconBaseURL: getEnv("OPENWEATHER_ICON_URL", "https://openweathermap.org/img/wn/"),
			Timeout:     time.Duration(getEnvAsInt("OPENWEATHER_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Seeder: SeederConfig{
			File:          getEnv("SEEDER_FILE", "data/favorites.txt"),
			MinPopulation: getEnvAsInt("SEEDER_MIN_POPULATION", 0),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
