package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config carries everything the binaries read from the environment.
type Config struct {
	CurrencyAPIKey string
	StocksAPIKey   string
	OperationsFile string
	SettingsFile   string
	ListenAddr     string
}

// FromEnv builds a Config from environment variables with defaults matching
// the development layout. Call godotenv.Load first if a .env file is used.
func FromEnv() *Config {
	return &Config{
		CurrencyAPIKey: os.Getenv("CURRENCY_API_KEY"),
		StocksAPIKey:   os.Getenv("STOCKS_API_KEY"),
		OperationsFile: envOr("OPERATIONS_FILE", "data/operations_excel.xlsx"),
		SettingsFile:   envOr("USER_SETTINGS_FILE", "user_settings.json"),
		ListenAddr:     envOr("LISTEN_ADDR", ":8080"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// UserSettings is the per-user selection of currencies and stocks shown on
// the dashboard.
type UserSettings struct {
	Currencies []string `mapstructure:"user_currencies"`
	Stocks     []string `mapstructure:"user_stocks"`
}

// LoadUserSettings reads the user settings JSON file.
func LoadUserSettings(path string) (*UserSettings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read user settings %s: %w", path, err)
	}

	var settings UserSettings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("parse user settings %s: %w", path, err)
	}
	return &settings, nil
}
