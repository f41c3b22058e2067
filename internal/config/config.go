package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Database   DatabaseConfig   `mapstructure:"database"`
	Anthropic  AnthropicConfig  `mapstructure:"anthropic"`
	Sources    SourcesConfig    `mapstructure:"sources"`
	Scheduler  SchedulerConfig  `mapstructure:"scheduler"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Publishing PublishingConfig `mapstructure:"publishing"`
	Tracker    TrackerConfig    `mapstructure:"tracker"`
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"` // SQLite file path
}

// AnthropicConfig holds Claude API settings for the optional polish pass
type AnthropicConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
}

// SourcesConfig holds all brief source configurations
type SourcesConfig struct {
	RSS    RSSConfig    `mapstructure:"rss"`
	Custom CustomConfig `mapstructure:"custom"`
}

// RSSConfig holds RSS feed settings
type RSSConfig struct {
	Enabled bool      `mapstructure:"enabled"`
	Feeds   []RSSFeed `mapstructure:"feeds"`
}

// RSSFeed represents a single RSS feed
type RSSFeed struct {
	Name string `mapstructure:"name"`
	URL  string `mapstructure:"url"`
}

// CustomConfig holds manually configured brief settings
type CustomConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Briefs  []CustomBrief `mapstructure:"briefs"`
}

// CustomBrief is a manually configured content brief
type CustomBrief struct {
	Topic    string `mapstructure:"topic"`
	Caption  string `mapstructure:"caption"`
	Audience string `mapstructure:"audience"`
}

// SchedulerConfig holds scheduler settings
type SchedulerConfig struct {
	IntakeCron  string `mapstructure:"intake_cron"`
	ProcessCron string `mapstructure:"process_cron"`
}

// RateLimitConfig holds rate limiting settings
type RateLimitConfig struct {
	AnthropicRequestsPerMinute int `mapstructure:"anthropic_requests_per_minute"`
	SheetsRequestsPerMinute    int `mapstructure:"sheets_requests_per_minute"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json or console
	Output string `mapstructure:"output"` // stdout or file path
}

// PublishingConfig holds content generation settings
type PublishingConfig struct {
	DefaultTone      string   `mapstructure:"default_tone"`
	DefaultPlatforms []string `mapstructure:"default_platforms"`
	DefaultAudience  string   `mapstructure:"default_audience"`
	MaxHashtags      int      `mapstructure:"max_hashtags"`
	EmojiDecoration  bool     `mapstructure:"emoji_decoration"`
	AIPolish         bool     `mapstructure:"ai_polish"` // Requires anthropic.api_key
}

// TrackerConfig holds Google Sheets tracker settings
type TrackerConfig struct {
	Enabled            bool   `mapstructure:"enabled"`
	SpreadsheetID      string `mapstructure:"spreadsheet_id"`
	SheetName          string `mapstructure:"sheet_name"`
	CredentialsFile    string `mapstructure:"credentials_file"`
	ServiceAccountJSON string `mapstructure:"service_account_json"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	// Load .env file if present (ignore errors if not found)
	_ = godotenv.Load()
	_ = godotenv.Load(".env.local")

	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in current directory and configs folder
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")

		// Also check user's home directory
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".media-agents"))
		}
	}

	// Environment variables
	v.SetEnvPrefix("MEDIA")
	v.AutomaticEnv()

	// Explicit bindings for nested keys (Viper doesn't auto-bind underscored nested keys)
	v.BindEnv("anthropic.api_key", "MEDIA_ANTHROPIC_API_KEY")
	v.BindEnv("database.dsn", "MEDIA_DATABASE_DSN")
	v.BindEnv("publishing.ai_polish", "MEDIA_PUBLISHING_AI_POLISH")
	v.BindEnv("tracker.enabled", "MEDIA_TRACKER_ENABLED")
	v.BindEnv("tracker.spreadsheet_id", "MEDIA_TRACKER_SPREADSHEET_ID")
	v.BindEnv("tracker.credentials_file", "MEDIA_TRACKER_CREDENTIALS_FILE")
	v.BindEnv("tracker.service_account_json", "MEDIA_TRACKER_SERVICE_ACCOUNT_JSON")

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Database defaults
	v.SetDefault("database.dsn", "./data/media.db")

	// Anthropic defaults
	v.SetDefault("anthropic.model", "claude-sonnet-4-20250514")
	v.SetDefault("anthropic.max_tokens", 1024)
	v.SetDefault("anthropic.temperature", 0.7)

	// Sources defaults
	v.SetDefault("sources.rss.enabled", false)
	v.SetDefault("sources.custom.enabled", true)

	// Scheduler defaults
	v.SetDefault("scheduler.intake_cron", "0 */4 * * *") // Every 4 hours
	v.SetDefault("scheduler.process_cron", "0 7 * * *")  // 7am daily, before posting windows

	// Rate limit defaults
	v.SetDefault("rate_limit.anthropic_requests_per_minute", 10)
	v.SetDefault("rate_limit.sheets_requests_per_minute", 60)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stdout")

	// Publishing defaults
	v.SetDefault("publishing.default_tone", "casual")
	v.SetDefault("publishing.default_platforms", []string{"tiktok", "instagram", "youtube_shorts"})
	v.SetDefault("publishing.default_audience", "קהל ישראלי כללי")
	v.SetDefault("publishing.max_hashtags", 15)
	v.SetDefault("publishing.emoji_decoration", false)
	v.SetDefault("publishing.ai_polish", false)

	// Tracker defaults
	v.SetDefault("tracker.enabled", false)
	v.SetDefault("tracker.sheet_name", "Packages")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Publishing.AIPolish && c.Anthropic.APIKey == "" {
		return fmt.Errorf("anthropic.api_key is required when publishing.ai_polish is enabled")
	}
	if c.Tracker.Enabled && c.Tracker.SpreadsheetID == "" {
		return fmt.Errorf("tracker.spreadsheet_id is required when tracker is enabled")
	}
	return nil
}
