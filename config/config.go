package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Postgres PostgresConfig

	// External collaborators
	OpenAI         OpenAIConfig
	GoogleCalendar GoogleCalendarConfig

	// Historical context
	History HistoryConfig

	// Schedule engine thresholds
	Schedule ScheduleConfig
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

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// DSN returns the lib/pq connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
	Timezone        string
}

type HistoryConfig struct {
	CacheSize int
	CacheTTL  time.Duration
}

// ScheduleConfig surfaces the engine's feasibility and enhancement thresholds.
// The build-time parallel ceiling is a coarse sanity filter on raw extraction
// output; the validation-time ceiling is the stricter operational-risk filter
// applied after historical enhancement.
type ScheduleConfig struct {
	BuildParallelCeilingDays    float64
	ValidateParallelCeilingDays float64
	MinParallelConfidence       float64
	MinHistoricalSuccessRate    float64
	OnTimeFactor                float64
	RecentWindow                int
	GapRecentWindow             int
	GapSafetyFactor             float64
	GapDelayThresholdDays       float64
	SequentialBufferDays        float64
	DeviationWarningDays        float64
	RecentSlowdownFactor        float64
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

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

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.Database = viper.GetString("postgres.database")
	cfg.Postgres.SSLMode = viper.GetString("postgres.ssl_mode")
	if pgPassword := viper.GetString("postgres_password"); pgPassword != "" {
		cfg.Postgres.Password = pgPassword
	}

	// OpenAI
	cfg.OpenAI.APIKey = viper.GetString("openai.api_key")
	cfg.OpenAI.Model = viper.GetString("openai.model")
	cfg.OpenAI.BaseURL = viper.GetString("openai.base_url")
	cfg.OpenAI.Timeout = viper.GetString("openai.timeout")
	if openaiKey := viper.GetString("openai_api_key"); openaiKey != "" {
		cfg.OpenAI.APIKey = openaiKey
	}

	// Google Calendar (optional)
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// History cache
	cfg.History.CacheSize = viper.GetInt("history.cache_size")
	cfg.History.CacheTTL = viper.GetDuration("history.cache_ttl")

	// Schedule thresholds
	cfg.Schedule.BuildParallelCeilingDays = viper.GetFloat64("schedule.build_parallel_ceiling_days")
	cfg.Schedule.ValidateParallelCeilingDays = viper.GetFloat64("schedule.validate_parallel_ceiling_days")
	cfg.Schedule.MinParallelConfidence = viper.GetFloat64("schedule.min_parallel_confidence")
	cfg.Schedule.MinHistoricalSuccessRate = viper.GetFloat64("schedule.min_historical_success_rate")
	cfg.Schedule.OnTimeFactor = viper.GetFloat64("schedule.on_time_factor")
	cfg.Schedule.RecentWindow = viper.GetInt("schedule.recent_window")
	cfg.Schedule.GapRecentWindow = viper.GetInt("schedule.gap_recent_window")
	cfg.Schedule.GapSafetyFactor = viper.GetFloat64("schedule.gap_safety_factor")
	cfg.Schedule.GapDelayThresholdDays = viper.GetFloat64("schedule.gap_delay_threshold_days")
	cfg.Schedule.SequentialBufferDays = viper.GetFloat64("schedule.sequential_buffer_days")
	cfg.Schedule.DeviationWarningDays = viper.GetFloat64("schedule.deviation_warning_days")
	cfg.Schedule.RecentSlowdownFactor = viper.GetFloat64("schedule.recent_slowdown_factor")

	if cfg.OpenAI.Model == "" {
		return nil, fmt.Errorf("openai.model is required")
	}

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

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.database", "site_visits")
	viper.SetDefault("postgres.ssl_mode", "disable")

	viper.SetDefault("openai.model", "gpt-4o")
	viper.SetDefault("openai.base_url", "https://api.openai.com/v1")
	viper.SetDefault("openai.timeout", "60s")

	viper.SetDefault("google_calendar.timezone", "America/Mexico_City")

	viper.SetDefault("history.cache_size", 128)
	viper.SetDefault("history.cache_ttl", 5*time.Minute)

	// Engine thresholds carried over from the original analyzer.
	viper.SetDefault("schedule.build_parallel_ceiling_days", 90)
	viper.SetDefault("schedule.validate_parallel_ceiling_days", 30)
	viper.SetDefault("schedule.min_parallel_confidence", 0.7)
	viper.SetDefault("schedule.min_historical_success_rate", 0.7)
	viper.SetDefault("schedule.on_time_factor", 1.1)
	viper.SetDefault("schedule.recent_window", 5)
	viper.SetDefault("schedule.gap_recent_window", 3)
	viper.SetDefault("schedule.gap_safety_factor", 1.1)
	viper.SetDefault("schedule.gap_delay_threshold_days", 2)
	viper.SetDefault("schedule.sequential_buffer_days", 1)
	viper.SetDefault("schedule.deviation_warning_days", 2)
	viper.SetDefault("schedule.recent_slowdown_factor", 1.1)
}
