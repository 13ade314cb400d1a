package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	AppName    = "Kotoba"
	AppVersion = "1.0.0"
)

// EnvPrefix is prepended to every environment variable, e.g. KOTOBA_SMTP_HOST.
const EnvPrefix = "KOTOBA"

// Default daily summary schedule: 20:00 Tokyo time.
const (
	DefaultSchedule = "0 20 * * *"
	DefaultTimezone = "Asia/Tokyo"
)

type Config struct {
	Addr        string
	DataDir     string
	DBPath      string
	DatabaseURL string // postgres DSN; sqlite at DBPath is used when empty
	StaticDir   string
	LogLevel    string
	LogFormat   string // text, json
	NodeID      int64
	JWTSecret   string

	AI   AIConfig
	SMTP SMTPConfig
	Job  JobConfig
}

// AIConfig selects the chat completion backend shared by the translator and the summary generator.
type AIConfig struct {
	Provider  string
	APIKey    string
	BaseURL   string
	Model     string
	RateLimit int
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	FromName string
}

// JobConfig describes the single-tenant daily summary job.
type JobConfig struct {
	Enabled  bool
	UserID   string
	Email    string // falls back to the stored user email when empty
	Schedule string // standard 5-field cron expression
	Timezone string
}

// Location resolves the job timezone.
func (j JobConfig) Location() (*time.Location, error) {
	tz := j.Timezone
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", tz, err)
	}
	return loc, nil
}

// Load reads configuration from the environment, an optional .env file and an
// optional config.yaml, in that order of precedence.
func Load() (Config, error) {
	// A missing .env is the normal production case.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	if path := os.Getenv(EnvPrefix + "_CONFIG"); path != "" {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindLegacyEnv(v)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	dataDir := v.GetString("data_dir")
	dbPath := v.GetString("db_path")
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "kotoba.db")
	}
	staticDir := v.GetString("static_dir")
	if staticDir == "" {
		staticDir = detectStaticDir()
	}

	cfg := Config{
		Addr:        v.GetString("addr"),
		DataDir:     filepath.Clean(dataDir),
		DBPath:      filepath.Clean(dbPath),
		DatabaseURL: v.GetString("database_url"),
		StaticDir:   filepath.Clean(staticDir),
		LogLevel:    v.GetString("log.level"),
		LogFormat:   v.GetString("log.format"),
		NodeID:      v.GetInt64("node_id"),
		JWTSecret:   v.GetString("jwt_secret"),
		AI: AIConfig{
			Provider:  v.GetString("ai.provider"),
			APIKey:    v.GetString("ai.api_key"),
			BaseURL:   v.GetString("ai.base_url"),
			Model:     v.GetString("ai.model"),
			RateLimit: v.GetInt("ai.rate_limit"),
		},
		SMTP: SMTPConfig{
			Host:     v.GetString("smtp.host"),
			Port:     v.GetInt("smtp.port"),
			Username: v.GetString("smtp.username"),
			Password: v.GetString("smtp.password"),
			FromName: v.GetString("smtp.from_name"),
		},
		Job: JobConfig{
			Enabled:  v.GetBool("job.enabled"),
			UserID:   v.GetString("job.user_id"),
			Email:    v.GetString("job.email"),
			Schedule: v.GetString("job.schedule"),
			Timezone: v.GetString("job.timezone"),
		},
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":8080")
	v.SetDefault("data_dir", "./data")
	v.SetDefault("db_path", "")
	v.SetDefault("database_url", "")
	v.SetDefault("static_dir", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("node_id", 1)
	v.SetDefault("jwt_secret", "")

	v.SetDefault("ai.provider", "compatible")
	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.base_url", "https://api.deepseek.com")
	v.SetDefault("ai.model", "deepseek-chat")
	v.SetDefault("ai.rate_limit", 5)

	v.SetDefault("smtp.host", "smtp.gmail.com")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.username", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.from_name", "Japanese Learning Journey")

	v.SetDefault("job.enabled", true)
	v.SetDefault("job.user_id", "")
	v.SetDefault("job.email", "")
	v.SetDefault("job.schedule", DefaultSchedule)
	v.SetDefault("job.timezone", DefaultTimezone)
}

// bindLegacyEnv keeps the variable names used by earlier deployments working.
func bindLegacyEnv(v *viper.Viper) {
	_ = v.BindEnv("ai.api_key", EnvPrefix+"_AI_API_KEY", "AI_INTEGRATIONS_OPENAI_API_KEY")
	_ = v.BindEnv("ai.base_url", EnvPrefix+"_AI_BASE_URL", "AI_INTEGRATIONS_OPENAI_BASE_URL")
	_ = v.BindEnv("smtp.host", EnvPrefix+"_SMTP_HOST", "EMAIL_HOST")
	_ = v.BindEnv("smtp.port", EnvPrefix+"_SMTP_PORT", "EMAIL_PORT")
	_ = v.BindEnv("smtp.username", EnvPrefix+"_SMTP_USERNAME", "EMAIL_USER")
	_ = v.BindEnv("smtp.password", EnvPrefix+"_SMTP_PASSWORD", "EMAIL_PASS")
	_ = v.BindEnv("database_url", EnvPrefix+"_DATABASE_URL", "DATABASE_URL")
	_ = v.BindEnv("addr", EnvPrefix+"_ADDR")
}

func detectStaticDir() string {
	candidates := []string{
		"./frontend/dist",
		"../frontend/dist",
	}
	for _, candidate := range candidates {
		indexPath := filepath.Join(candidate, "index.html")
		if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return "./frontend/dist"
}
