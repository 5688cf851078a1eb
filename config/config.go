package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingURL         = errors.New("WP_URL is not set")
	ErrMissingCredentials = errors.New("WP_USER and WP_APP_PASSWORD must both be set")
)

// Config holds all uploader configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig
	Logger      LoggerConfig

	// WordPress REST API
	WordPress WordPressConfig

	// Article source and run behaviour
	Articles ArticlesConfig
	Upload   UploadConfig
}

type EnvironmentConfig struct {
	Name string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type WordPressConfig struct {
	URL               string // Posts endpoint, e.g. https://example.com/wp-json/wp/v2/posts
	User              string
	AppPassword       string
	Timeout           time.Duration // 0 means no client timeout
	RequestsPerSecond float64       // 0 disables pacing
	Burst             int
}

type ArticlesConfig struct {
	Dir string
}

type UploadConfig struct {
	DryRun             bool
	FailOnError        bool // Exit non-zero when any article fails
	StopOnExtractError bool // Abort the run on the first unreadable document
	CategoryCacheSize  int
}

// Load loads configuration using Viper.
// An explicit file set under the "config" key (flag or CONFIG env) replaces the search.
// Values come from config.yaml (searched in ./config, ., /etc/article-uploader/),
// then a .env file in the working directory, then the process environment.
// Environment keys replace "." with "_": wp.url is read from WP_URL.
func Load() (*Config, error) {
	// Existing environment variables win over .env entries.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/article-uploader/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if file := viper.GetString("config"); file != "" {
		viper.SetConfigFile(file)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & logger
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// WordPress
	cfg.WordPress.URL = viper.GetString("wp.url")
	cfg.WordPress.User = viper.GetString("wp.user")
	cfg.WordPress.AppPassword = viper.GetString("wp.app_password")
	cfg.WordPress.Timeout = viper.GetDuration("wp.timeout")
	cfg.WordPress.RequestsPerSecond = viper.GetFloat64("wp.requests_per_second")
	cfg.WordPress.Burst = viper.GetInt("wp.burst")

	// Articles & run behaviour
	cfg.Articles.Dir = viper.GetString("articles.dir")
	cfg.Upload.DryRun = viper.GetBool("upload.dry_run")
	cfg.Upload.FailOnError = viper.GetBool("upload.fail_on_error")
	cfg.Upload.StopOnExtractError = viper.GetBool("upload.stop_on_extract_error")
	cfg.Upload.CategoryCacheSize = viper.GetInt("upload.category_cache_size")

	return cfg, nil
}

// Validate checks the settings a run cannot start without.
// It is called before any article is read or any request is sent.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.WordPress.URL) == "" {
		return ErrMissingURL
	}
	if c.WordPress.User == "" || c.WordPress.AppPassword == "" {
		return ErrMissingCredentials
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("wp.timeout", "0s")
	viper.SetDefault("wp.requests_per_second", 0)
	viper.SetDefault("wp.burst", 1)

	viper.SetDefault("articles.dir", "articles")

	viper.SetDefault("upload.dry_run", false)
	viper.SetDefault("upload.fail_on_error", false)
	viper.SetDefault("upload.stop_on_extract_error", false)
	viper.SetDefault("upload.category_cache_size", 256)
}
