package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	API      APIConfig
	Punch    PunchConfig
	Location LocationConfig
	App      AppConfig
}

// APIConfig holds the EMS backend connection settings.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// PunchConfig holds the attendance punch rules.
type PunchConfig struct {
	RadiusMeters float64
	Timezone     string
}

// LocationConfig selects and parameterizes the location provider.
// Provider is "static" (fixed coordinate, kiosk devices) or "command"
// (external helper emitting a JSON fix).
type LocationConfig struct {
	Provider  string
	Latitude  float64
	Longitude float64
	Command   string
	Timeout   time.Duration
	MaxAge    time.Duration
}

// AppConfig holds application configuration
type AppConfig struct {
	Env       string
	LogLevel  string
	TokenPath string
}

func Load() (*Config, error) {
	// A missing .env file is fine; settings may come from the shell.
	_ = godotenv.Load()

	config := &Config{}

	apiTimeout, err := time.ParseDuration(getEnv("EMS_API_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid EMS_API_TIMEOUT: %w", err)
	}

	config.API = APIConfig{
		BaseURL: getEnv("EMS_API_BASE_URL", ""),
		Timeout: apiTimeout,
	}

	radius, err := strconv.ParseFloat(getEnv("EMS_PUNCH_RADIUS_METERS", "20"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid EMS_PUNCH_RADIUS_METERS: %w", err)
	}

	config.Punch = PunchConfig{
		RadiusMeters: radius,
		Timezone:     getEnv("EMS_TIMEZONE", "Asia/Kolkata"),
	}

	locTimeout, err := time.ParseDuration(getEnv("EMS_LOCATION_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid EMS_LOCATION_TIMEOUT: %w", err)
	}

	locMaxAge, err := time.ParseDuration(getEnv("EMS_LOCATION_MAX_AGE", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid EMS_LOCATION_MAX_AGE: %w", err)
	}

	lat, err := strconv.ParseFloat(getEnv("EMS_LOCATION_LATITUDE", "0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid EMS_LOCATION_LATITUDE: %w", err)
	}

	lng, err := strconv.ParseFloat(getEnv("EMS_LOCATION_LONGITUDE", "0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid EMS_LOCATION_LONGITUDE: %w", err)
	}

	config.Location = LocationConfig{
		Provider:  getEnv("EMS_LOCATION_PROVIDER", "command"),
		Latitude:  lat,
		Longitude: lng,
		Command:   getEnv("EMS_LOCATION_COMMAND", ""),
		Timeout:   locTimeout,
		MaxAge:    locMaxAge,
	}

	config.App = AppConfig{
		Env:       getEnv("APP_ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		TokenPath: getEnv("EMS_TOKEN_PATH", defaultTokenPath()),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("EMS_API_BASE_URL is required")
	}
	if c.Punch.RadiusMeters <= 0 {
		return fmt.Errorf("EMS_PUNCH_RADIUS_METERS must be positive")
	}
	switch c.Location.Provider {
	case "static":
	case "command":
		if c.Location.Command == "" {
			return fmt.Errorf("EMS_LOCATION_COMMAND is required for the command provider")
		}
	default:
		return fmt.Errorf("unsupported EMS_LOCATION_PROVIDER: %s", c.Location.Provider)
	}
	return nil
}

func defaultTokenPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".ems", "session.json")
	}
	return filepath.Join(dir, "ems", "session.json")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
