package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string        `mapstructure:"env"`              // current application environment (local, dev, production)
	TelegramAPIToken string        `mapstructure:"-"`                // Telegram API token loaded from environment
	BaseDir          string        `mapstructure:"base_dir"`         // directory relative book paths are resolved against
	PluginDir        string        `mapstructure:"plugin_dir"`       // directory holding the path.json override
	DataDir          string        `mapstructure:"data_dir"`         // default directory with livro_<lang>.json files
	DefaultLanguage  string        `mapstructure:"default_language"` // language for readers without settings
	WatchData        bool          `mapstructure:"watch_data"`       // reload book files when they change
	ListPageSize     int           `mapstructure:"list_page_size"`   // questions per page in selection lists
	SessionTTL       time.Duration `mapstructure:"session_ttl"`      // idle time after which a chat session is dropped
	JanitorInterval  time.Duration `mapstructure:"janitor_interval"` // how often idle sessions are swept
	SQLitePath       string        `mapstructure:"sqlite_path"`      // settings database of the terminal reader
	LogFile          string        `mapstructure:"log_file"`         // log sink of the terminal reader
	DB               DB            `mapstructure:"database"`         // database configuration section
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int32         `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// RequireBot checks the settings only the Telegram bot needs.
func (c *Config) RequireBot() error {
	if c.TelegramAPIToken == "" {
		return fmt.Errorf("%w: TELEGRAM_API_TOKEN", ErrMissingEnvironmentVariables)
	}
	if _, err := c.DB.DSN(); err != nil {
		return fmt.Errorf("%w: DATABASE_URL", err)
	}
	return nil
}

// Load reads configuration from .env, config files and environment variables.
func Load(paths ...string) (*Config, error) {
	// A missing .env file is fine; real environment variables take precedence.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetDefault("env", "local")
	v.SetDefault("base_dir", ".")
	v.SetDefault("plugin_dir", "assets")
	v.SetDefault("data_dir", "assets/data")
	v.SetDefault("default_language", "en")
	v.SetDefault("watch_data", true)
	v.SetDefault("list_page_size", 10)
	v.SetDefault("session_ttl", "24h")
	v.SetDefault("janitor_interval", "10m")
	v.SetDefault("sqlite_path", ".spiritsbook/settings.db")
	v.SetDefault("log_file", ".spiritsbook/reader.log")
	v.SetDefault("database.max_connections", 10)
	v.SetDefault("database.max_conn_lifetime", "30m")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	cfg.DB.URL = v.GetString("database_url")

	if cfg.ListPageSize <= 0 {
		return nil, fmt.Errorf("list_page_size must be positive, got %d", cfg.ListPageSize)
	}

	return &cfg, nil
}
