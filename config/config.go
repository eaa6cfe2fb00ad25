package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port    string `mapstructure:"PORT"`
	WebPort string `mapstructure:"WEB_PORT"`

	// Base URL the presentation service uses to reach the data API
	APIURL string `mapstructure:"API_URL"`

	// Google Books volumes API key (optional)
	BooksAPIKey string `mapstructure:"BOOKS_API_KEY"`

	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBSSLMode  string `mapstructure:"DB_SSLMODE"`

	DBMaxOpenConns       int `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns       int `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBConnMaxLifeMinutes int `mapstructure:"DB_CONN_MAX_LIFE_MINUTES"`
}

// GetConfig reads an optional .env file and the process environment.
func GetConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("toml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	setDefaults()
	if err := viper.ReadInConfig(); err != nil {
		// env-only deployments run without a .env file
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("parsing config data: %w", err)
	}
	return &config, nil
}

func setDefaults() {
	viper.SetDefault("PORT", "4500")
	viper.SetDefault("WEB_PORT", "3000")
	viper.SetDefault("API_URL", "http://localhost:4500")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFE_MINUTES", 5)
}

// ValidatePostgres checks the fields the data API cannot run without.
func (c *Config) ValidatePostgres() error {
	if c.DBUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	return nil
}

// PostgresConnectionString assembles a lib/pq connection string.
func (c *Config) PostgresConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}
