package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	// ProviderTimeout bounds each outbound lookup. Zero leaves the transport default.
	ProviderTimeout time.Duration

	GeocodeBaseURL   string
	GridPointBaseURL string
	ClientIdentifier string
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "localinfo-service")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("HTTP_TIMEOUT", 30)
	v.SetDefault("PROVIDER_TIMEOUT", 0)
	v.SetDefault("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org/search")
	v.SetDefault("GRID_POINT_BASE_URL", "https://api.weather.gov/points/")
	v.SetDefault("CLIENT_IDENTIFIER", "localinfo-service")

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:      v.GetString("SERVICE_NAME"),
		ServerAddress:    v.GetString("SERVER_ADDRESS"),
		DBName:           v.GetString("DATABASE_NAME"),
		DBPassword:       v.GetString("DATABASE_PASSWORD"),
		DBUser:           v.GetString("DATABASE_USER"),
		DBPort:           v.GetString("DATABASE_PORT"),
		DBHost:           v.GetString("DATABASE_HOST"),
		Env:              v.GetString("ENV"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		HTTPTimeout:      v.GetInt32("HTTP_TIMEOUT"),
		ProviderTimeout:  v.GetDuration("PROVIDER_TIMEOUT"),
		GeocodeBaseURL:   v.GetString("GEOCODE_BASE_URL"),
		GridPointBaseURL: v.GetString("GRID_POINT_BASE_URL"),
		ClientIdentifier: v.GetString("CLIENT_IDENTIFIER"),
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// LookupLogEnabled reports whether a database was configured for the lookup log.
func (c *Config) LookupLogEnabled() bool {
	return c.DBHost != ""
}
