package utils

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Features FeatureConfig
}

type AppConfig struct {
	Name           string
	Port           string
	Debug          bool
	LogPath        string
	MetricsEnabled bool
	PageLimit      int
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int32
}

// FeatureConfig toggles behaviour kept for compatibility with older clients.
type FeatureConfig struct {
	// MovieUpdate mounts PATCH /movies/{id}.
	MovieUpdate bool
	// CapacityBadRequest answers a salle capacity update outside the seating
	// range with 400 and a field error instead of 404.
	CapacityBadRequest bool
}

// LoadConfig reads .env from the working directory when present, then lets
// environment variables override it.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "salles-api")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("DEFAULT_PAGE_LIMIT", 20)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("MOVIE_UPDATE_ENABLED", false)
	v.SetDefault("CAPACITY_BAD_REQUEST", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:           v.GetString("APP_NAME"),
			Port:           v.GetString("PORT"),
			Debug:          v.GetBool("DEBUG"),
			LogPath:        v.GetString("LOG_PATH"),
			MetricsEnabled: v.GetBool("METRICS_ENABLED"),
			PageLimit:      v.GetInt("DEFAULT_PAGE_LIMIT"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		Features: FeatureConfig{
			MovieUpdate:          v.GetBool("MOVIE_UPDATE_ENABLED"),
			CapacityBadRequest:   v.GetBool("CAPACITY_BAD_REQUEST"),
		},
	}

	if config.App.PageLimit < 1 {
		return nil, fmt.Errorf("DEFAULT_PAGE_LIMIT must be at least 1, got %d", config.App.PageLimit)
	}
	if config.Database.MaxConns < 1 {
		return nil, fmt.Errorf("DB_MAX_CONNS must be at least 1, got %d", config.Database.MaxConns)
	}

	return config, nil
}
