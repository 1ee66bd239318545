package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rpggio/stravafeed/internal/strava"
	"gopkg.in/yaml.v3"
)

// Config defines application configuration.
type Config struct {
	Strava    StravaConfig    `yaml:"strava" envconfig:"STRAVA"`
	Client    ClientConfig    `yaml:"client" envconfig:"STRAVAFEED_CLIENT"`
	Server    ServerConfig    `yaml:"server" envconfig:"STRAVAFEED_SERVER"`
	Transport TransportConfig `yaml:"transport" envconfig:"STRAVAFEED_TRANSPORT"`
	Web       WebConfig       `yaml:"web" envconfig:"STRAVAFEED_WEB"`
	Console   ConsoleConfig   `yaml:"console" envconfig:"STRAVAFEED_CONSOLE"`
	History   HistoryConfig   `yaml:"history" envconfig:"STRAVAFEED_HISTORY"`
	Log       LogConfig       `yaml:"log" envconfig:"STRAVAFEED_LOG"`
}

// StravaConfig holds the API credentials (STRAVA_CLIENT_ID and friends).
type StravaConfig struct {
	ClientID     string `yaml:"client_id" split_words:"true"`
	ClientSecret string `yaml:"client_secret" split_words:"true"`
	RefreshToken string `yaml:"refresh_token" split_words:"true"`
}

type ClientConfig struct {
	Timeout time.Duration `yaml:"timeout" validate:"gt=0"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port" validate:"min=1,max=65535"`
}

type TransportConfig struct {
	Mode string `yaml:"mode" validate:"oneof=http stdio"`
}

type WebConfig struct {
	Limit int `yaml:"limit" validate:"min=1,max=200"`
}

type ConsoleConfig struct {
	Limit int `yaml:"limit" validate:"min=1,max=200"`
}

// HistoryConfig enables the fetch history database when Path is set.
type HistoryConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	Path  string `yaml:"path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Client: ClientConfig{
			Timeout: strava.DefaultTimeout,
		},
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 5000,
		},
		Transport: TransportConfig{
			Mode: "http",
		},
		Web: WebConfig{
			Limit: 30,
		},
		Console: ConsoleConfig{
			Limit: 10,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from an optional .env file, an optional YAML file
// and environment variables, in increasing order of precedence.
func Load() (Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return Config{}, err
	}

	cfg := Default()

	if path := os.Getenv("STRAVAFEED_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks value ranges. Credentials are not required here; see Missing.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Credentials converts the Strava section for the API client.
func (c StravaConfig) Credentials() strava.Credentials {
	return strava.Credentials{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		RefreshToken: c.RefreshToken,
	}
}

// Missing lists the credential variables that are empty.
func (c StravaConfig) Missing() []string {
	var missing []string
	if c.ClientID == "" {
		missing = append(missing, "STRAVA_CLIENT_ID")
	}
	if c.ClientSecret == "" {
		missing = append(missing, "STRAVA_CLIENT_SECRET")
	}
	if c.RefreshToken == "" {
		missing = append(missing, "STRAVA_REFRESH_TOKEN")
	}
	return missing
}

// loadDotEnv exports variables from path without overriding the environment.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
