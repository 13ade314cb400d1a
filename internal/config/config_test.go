package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"kotoba/backend/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, filepath.Join("data", "kotoba.db"), cfg.DBPath)
	require.Empty(t, cfg.DatabaseURL)
	require.Equal(t, config.DefaultSchedule, cfg.Job.Schedule)
	require.Equal(t, config.DefaultTimezone, cfg.Job.Timezone)
	require.True(t, cfg.Job.Enabled)
	require.Equal(t, 587, cfg.SMTP.Port)
	require.Equal(t, "deepseek-chat", cfg.AI.Model)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("KOTOBA_JOB_SCHEDULE", "0 21 * * *")
	t.Setenv("KOTOBA_JOB_USER_ID", "pra40109")
	t.Setenv("KOTOBA_JOB_ENABLED", "false")
	t.Setenv("KOTOBA_LOG_LEVEL", "debug")
	t.Setenv("KOTOBA_AI_RATE_LIMIT", "2")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "0 21 * * *", cfg.Job.Schedule)
	require.Equal(t, "pra40109", cfg.Job.UserID)
	require.False(t, cfg.Job.Enabled)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 2, cfg.AI.RateLimit)
}

func TestLoad_LegacyEnvNames(t *testing.T) {
	t.Setenv("EMAIL_HOST", "mail.example.com")
	t.Setenv("EMAIL_PORT", "2525")
	t.Setenv("AI_INTEGRATIONS_OPENAI_API_KEY", "sk-legacy")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "mail.example.com", cfg.SMTP.Host)
	require.Equal(t, 2525, cfg.SMTP.Port)
	require.Equal(t, "sk-legacy", cfg.AI.APIKey)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kotoba.yaml")
	require.NoError(t, os.WriteFile(path, []byte("job:\n  timezone: Europe/Paris\nsmtp:\n  from_name: Tester\n"), 0o644))
	t.Setenv("KOTOBA_CONFIG", path)

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "Europe/Paris", cfg.Job.Timezone)
	require.Equal(t, "Tester", cfg.SMTP.FromName)
}

func TestJobConfig_Location(t *testing.T) {
	loc, err := config.JobConfig{}.Location()
	require.NoError(t, err)
	require.Equal(t, "Asia/Tokyo", loc.String())

	_, err = config.JobConfig{Timezone: "Mars/Olympus"}.Location()
	require.Error(t, err)
}
