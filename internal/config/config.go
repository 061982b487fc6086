package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Spanner  SpannerConfig  `mapstructure:"spanner"`
	Drive    DriveConfig    `mapstructure:"drive"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	Uploads  UploadsConfig  `mapstructure:"uploads"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SpannerConfig holds the Spanner database coordinates
type SpannerConfig struct {
	Project  string `mapstructure:"project"`
	Instance string `mapstructure:"instance"`
	Database string `mapstructure:"database"`
}

// DSN returns the fully qualified database name.
func (s SpannerConfig) DSN() string {
	return fmt.Sprintf("projects/%s/instances/%s/databases/%s", s.Project, s.Instance, s.Database)
}

// DriveConfig holds the Google Drive upload adapter configuration
type DriveConfig struct {
	CredentialsPath string `mapstructure:"credentials_path"`
	FolderID        string `mapstructure:"folder_id"`
}

// TelegramConfig holds the enquiry notifier configuration. An empty token
// disables notifications.
type TelegramConfig struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   string `mapstructure:"chat_id"`
}

// UploadsConfig holds image upload behavior
type UploadsConfig struct {
	Concurrency int  `mapstructure:"concurrency"`
	Optimize    bool `mapstructure:"optimize"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load loads configuration from YAML file with environment variable overrides
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		// config.yaml is optional: env vars and defaults carry a full config
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)

	viper.SetDefault("spanner.project", "test-project")
	viper.SetDefault("spanner.instance", "dev-instance")
	viper.SetDefault("spanner.database", "catalog-admin-db")

	viper.SetDefault("drive.credentials_path", "")
	viper.SetDefault("drive.folder_id", "")

	viper.SetDefault("telegram.bot_token", "")
	viper.SetDefault("telegram.chat_id", "")

	viper.SetDefault("uploads.concurrency", 4)
	viper.SetDefault("uploads.optimize", true)

	viper.SetDefault("log.level", "info")
}
