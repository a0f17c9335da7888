package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Announcement pipeline specifics
	Database   DatabaseConfig
	OpenAI     OpenAIConfig
	Vision     VisionConfig
	Storage    StorageConfig
	Calendar   CalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// DatabaseConfig configures the SQLite announcement store.
type DatabaseConfig struct {
	Path string
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// VisionConfig configures the Google Vision OCR client.
type VisionConfig struct {
	CredentialsPath string
}

// StorageConfig configures the calendar artifact sink.
// Backend is "gcs" or "local"; LocalDir is used by the local backend.
type StorageConfig struct {
	Backend         string
	Bucket          string
	CredentialsPath string
	LocalDir        string
}

type CalendarConfig struct {
	Timezone  string
	UIDDomain string // domain part of generated event UIDs
	Name      string // calendar display-name prefix, e.g. "JBNU"
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/img2cal/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/img2cal/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Announcement store
	cfg.Database.Path = viper.GetString("database.path")
	if dbPath := viper.GetString("database_path"); dbPath != "" {
		cfg.Database.Path = dbPath
	}

	// OpenAI classifier
	cfg.OpenAI.APIKey = viper.GetString("openai.api_key")
	cfg.OpenAI.BaseURL = viper.GetString("openai.base_url")
	cfg.OpenAI.Model = viper.GetString("openai.model")
	if apiKey := viper.GetString("openai_api_key"); apiKey != "" {
		cfg.OpenAI.APIKey = apiKey
	}

	// Google Vision OCR
	cfg.Vision.CredentialsPath = viper.GetString("vision.credentials_path")
	if visionCreds := viper.GetString("vision_credentials"); visionCreds != "" {
		cfg.Vision.CredentialsPath = visionCreds
	}

	// Artifact storage
	cfg.Storage.Backend = viper.GetString("storage.backend")
	cfg.Storage.Bucket = viper.GetString("storage.bucket")
	cfg.Storage.CredentialsPath = viper.GetString("storage.credentials_path")
	cfg.Storage.LocalDir = viper.GetString("storage.local_dir")
	if cfg.Storage.CredentialsPath == "" {
		// Vision and Storage normally share one service account.
		cfg.Storage.CredentialsPath = cfg.Vision.CredentialsPath
	}

	// Calendar output
	cfg.Calendar.Timezone = viper.GetString("calendar.timezone")
	cfg.Calendar.UIDDomain = viper.GetString("calendar.uid_domain")
	cfg.Calendar.Name = viper.GetString("calendar.name")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 60)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("database.path", "img2cal.db")

	viper.SetDefault("openai.base_url", "https://api.openai.com/v1")
	viper.SetDefault("openai.model", "gpt-4o-mini")

	viper.SetDefault("storage.backend", "local")
	viper.SetDefault("storage.local_dir", "out")

	viper.SetDefault("calendar.timezone", "Asia/Seoul")
	viper.SetDefault("calendar.uid_domain", "jinseok1006.jbnu.ac.kr")
	viper.SetDefault("calendar.name", "JBNU")
}
