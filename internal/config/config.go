package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/timmy/mediagallery/internal/domain"
	"github.com/timmy/mediagallery/internal/logger"
)

type Config struct {
	Server   ServerConfig    `mapstructure:"server"`
	Log      logger.Config   `mapstructure:"log"`
	Catalog  CatalogConfig   `mapstructure:"catalog"`
	Database DatabaseConfig  `mapstructure:"database"`
	Storage  StorageConfig   `mapstructure:"storage"`
	Listing  ListingConfig   `mapstructure:"listing"`
	Notify   NotifyConfig    `mapstructure:"notify"`
	Folders  []domain.Folder `mapstructure:"folders"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"`
	PublicURL    string        `mapstructure:"public_url"` // base for notify_download_url
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	CORS         CORSConfig    `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	AllowAllOrigins bool     `mapstructure:"allow_all_origins"`
}

// CatalogConfig selects where the media snapshot is loaded from at startup.
type CatalogConfig struct {
	Provider     string `mapstructure:"provider"` // mock, manifest, database, object
	MockCount    int    `mapstructure:"mock_count"`
	MockSeed     uint64 `mapstructure:"mock_seed"`
	ManifestPath string `mapstructure:"manifest_path"`
	ObjectKey    string `mapstructure:"object_key"`
}

type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // sqlite, postgres
	Path            string        `mapstructure:"path"`
	URL             string        `mapstructure:"url"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

// DSN returns the connection string for the configured driver.
func (c *DatabaseConfig) DSN() string {
	if c.Driver == "postgres" {
		return c.URL
	}
	return c.Path
}

// StorageConfig configures S3-compatible object storage (S3, R2, MinIO).
type StorageConfig struct {
	Type      string `mapstructure:"type"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	UseSSL    bool   `mapstructure:"use_ssl"`
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	PublicURL string `mapstructure:"public_url"`
}

type ListingConfig struct {
	// SettingsKey is the query parameter prefix the gallery UI uses for its
	// settings, e.g. "settings" for settings[query] or "search" for search[query].
	SettingsKey     string  `mapstructure:"settings_key"`
	DefaultPerPage  int     `mapstructure:"default_per_page"`
	MaxPerPage      int     `mapstructure:"max_per_page"`
	SearchThreshold float64 `mapstructure:"search_threshold"`
	Language        string  `mapstructure:"language"`
}

// NotifyConfig configures forwarding of download notifications.
type NotifyConfig struct {
	WebhookURL string        `mapstructure:"webhook_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

func Load(configPath string) (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Bind environment variables explicitly for deployment-specific values
	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.public_url", "PUBLIC_URL")
	v.BindEnv("database.url", "DATABASE_URL")
	v.BindEnv("storage.endpoint", "S3_ENDPOINT")
	v.BindEnv("storage.access_key", "S3_ACCESS_KEY")
	v.BindEnv("storage.secret_key", "S3_SECRET_KEY")
	v.BindEnv("storage.bucket", "S3_BUCKET")
	v.BindEnv("notify.webhook_url", "DOWNLOAD_WEBHOOK_URL")
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")
	v.BindEnv("log.file", "LOG_FILE")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Listing.normalize()
	if cfg.Server.PublicURL == "" {
		cfg.Server.PublicURL = fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	}
	cfg.Server.PublicURL = strings.TrimSuffix(cfg.Server.PublicURL, "/")

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3001)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.cors.allow_all_origins", true)
	v.SetDefault("server.cors.allowed_origins", []string{})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.service_name", "mediagallery")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 7)
	v.SetDefault("log.max_age_days", 30)
	v.SetDefault("log.compress", true)
	v.SetDefault("catalog.provider", "mock")
	v.SetDefault("catalog.mock_count", 2000)
	v.SetDefault("catalog.mock_seed", 1)
	v.SetDefault("catalog.manifest_path", "./data/catalog.jsonl")
	v.SetDefault("catalog.object_key", "catalog/media.jsonl")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "./data/media.db")
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.conn_max_lifetime", time.Hour)
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("storage.use_ssl", true)
	v.SetDefault("storage.bucket", "media")
	v.SetDefault("listing.settings_key", "settings")
	v.SetDefault("listing.default_per_page", 100)
	v.SetDefault("listing.max_per_page", 1000)
	v.SetDefault("listing.search_threshold", 0.25)
	v.SetDefault("listing.language", "en")
	v.SetDefault("notify.timeout", 5*time.Second)
	v.SetDefault("folders", []map[string]string{
		{"id": "shared", "name": "Shared"},
		{"id": "favorite", "name": "Favorites"},
		{"id": "featured", "name": "Featured"},
	})
}

// normalize repairs values that would make the listing endpoint unusable.
func (c *ListingConfig) normalize() {
	if c.SettingsKey == "" {
		c.SettingsKey = "settings"
	}
	if c.MaxPerPage <= 0 {
		c.MaxPerPage = 1000
	}
	if c.DefaultPerPage <= 0 {
		c.DefaultPerPage = 100
	}
	if c.DefaultPerPage > c.MaxPerPage {
		c.DefaultPerPage = c.MaxPerPage
	}
}
